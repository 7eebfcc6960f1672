package gfx

// Driver is the minimal surface a display must provide: setting one pixel.
// Everything else the engine needs is synthesized from it.
//
// A driver may additionally implement any of the optional capability
// interfaces below. Capabilities are resolved once, when the Display is
// built; a declared capability is delegated to unconditionally, even where
// a software path would also work. Drivers are trusted to honor each
// operation's documented semantics.
//
// The Write* capabilities are the caller-bracketed variants: they are only
// invoked between StartWrite and EndWrite, so a driver that buffers a bus
// transaction can implement them without re-acquiring the bus per call.
// The Draw*/Fill* capabilities are self-contained and must bracket (or not
// need) the transport themselves.
type Driver interface {
	// DrawPixel sets the pixel at (x, y) to the given color token.
	// Out-of-range coordinates must be ignored by the driver.
	DrawPixel(x, y int16, c Color)
}

// Batcher scopes a burst of pixel writes, typically a bus transaction
// (e.g. holding a chip-select line). The engine brackets every multi-pixel
// software-synthesized operation with exactly one StartWrite/EndWrite pair;
// inner calls made by the same logical operation do not add their own.
type Batcher interface {
	StartWrite()
	EndWrite()
}

// PixelWriter is the bracketed pixel write. Absent, the engine falls back
// to Driver.DrawPixel.
type PixelWriter interface {
	WritePixel(x, y int16, c Color)
}

// VLineWriter is the bracketed fast vertical line.
type VLineWriter interface {
	WriteFastVLine(x, y, h int16, c Color)
}

// HLineWriter is the bracketed fast horizontal line.
type HLineWriter interface {
	WriteFastHLine(x, y, w int16, c Color)
}

// LineWriter is the bracketed arbitrary line.
type LineWriter interface {
	WriteLine(x0, y0, x1, y1 int16, c Color)
}

// RectWriter is the bracketed filled rectangle.
type RectWriter interface {
	WriteFillRect(x, y, w, h int16, c Color)
}

// VLineDrawer is a self-contained accelerated vertical line.
type VLineDrawer interface {
	DrawFastVLine(x, y, h int16, c Color)
}

// HLineDrawer is a self-contained accelerated horizontal line.
type HLineDrawer interface {
	DrawFastHLine(x, y, w int16, c Color)
}

// LineDrawer is a self-contained accelerated arbitrary line.
type LineDrawer interface {
	DrawLine(x0, y0, x1, y1 int16, c Color)
}

// RectFiller is a self-contained accelerated rectangle fill.
type RectFiller interface {
	FillRect(x, y, w, h int16, c Color)
}

// ScreenFiller is a self-contained accelerated full-screen fill.
type ScreenFiller interface {
	FillScreen(c Color)
}

// RotationNotifier is told when the logical rotation changes so the driver
// can remap coordinates or reprogram the panel's address mode.
type RotationNotifier interface {
	SetRotation(r Rotation)
}

// Inverter toggles display inversion, ideally via a panel command.
type Inverter interface {
	InvertDisplay(on bool)
}
