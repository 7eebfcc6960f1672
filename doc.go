// Package gfx is a hardware-independent 2D rasterization and text engine
// for pixel-addressable displays.
//
// # Overview
//
// gfx converts geometric primitives (points, lines, rectangles, circles,
// triangles, bitmaps, glyphs) into a minimal sequence of pixel writes
// dispatched through a driver capability interface. A concrete display
// driver only has to implement the lowest-level operation, setting a single
// pixel, and everything else is synthesized in software.
// Drivers that can accelerate lines, rectangle fills, or full-screen fills
// declare the matching optional interface and are delegated to directly.
//
// # Quick Start
//
//	import (
//	    "github.com/pixelgfx/gfx"
//	    "github.com/pixelgfx/gfx/framebuffer"
//	)
//
//	fb := framebuffer.New(240, 135)
//	d := gfx.NewDisplay(fb, 240, 135)
//
//	d.FillScreen(gfx.Black)
//	d.DrawCircle(120, 67, 40, gfx.Red)
//	d.SetCursor(10, 10)
//	fmt.Fprintf(d, "hello %d", 42)
//
//	fb.SavePNG("out.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Display, Driver and the optional capability interfaces,
//     Color, Font
//   - Rasterizers: Bresenham lines, midpoint circles, scanline triangles
//   - Collaborators: framebuffer (in-memory RGB565 driver), fontgen
//     (font.Face conversion)
//
// The engine owns no pixel memory. Every drawing call resolves to the
// cheapest capability the driver declared, and multi-pixel software paths
// are bracketed by StartWrite/EndWrite so a driver may hold a bus
// transaction open for the burst.
//
// gfx is single-threaded: one Display is manipulated by one logical caller
// at a time, and callers sharing a Display across goroutines must serialize
// access externally.
package gfx
