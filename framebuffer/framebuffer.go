// Package framebuffer provides an in-memory RGB565 display driver for the
// gfx engine, useful for tests, golden images and headless rendering.
package framebuffer

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/pixelgfx/gfx"
)

// Device is an in-memory framebuffer implementing gfx.Driver plus the
// batch, rectangle-fill, screen-fill, rotation and invert capabilities.
//
// The pixel store is kept in the panel's native orientation; logical
// coordinates arriving from the engine are remapped per the current
// rotation, the way a panel driver reprograms its address window.
type Device struct {
	width, height int16 // native panel extents
	pix           []gfx.Color
	rotation      gfx.Rotation
	inverted      bool
	batchDepth    int
}

// Compile-time capability declarations.
var (
	_ gfx.Driver           = (*Device)(nil)
	_ gfx.Batcher          = (*Device)(nil)
	_ gfx.RectFiller       = (*Device)(nil)
	_ gfx.ScreenFiller     = (*Device)(nil)
	_ gfx.RotationNotifier = (*Device)(nil)
	_ gfx.Inverter         = (*Device)(nil)
)

// New creates a framebuffer with the given native extents, cleared to zero.
func New(w, h int16) *Device {
	return &Device{
		width:  w,
		height: h,
		pix:    make([]gfx.Color, int(w)*int(h)),
	}
}

// Width returns the native panel width.
func (d *Device) Width() int16 { return d.width }

// Height returns the native panel height.
func (d *Device) Height() int16 { return d.height }

// transform maps logical coordinates to native panel coordinates under the
// current rotation.
func (d *Device) transform(x, y int16) (int16, int16) {
	switch d.rotation {
	case gfx.Rotation90:
		return d.width - 1 - y, x
	case gfx.Rotation180:
		return d.width - 1 - x, d.height - 1 - y
	case gfx.Rotation270:
		return y, d.height - 1 - x
	default:
		return x, y
	}
}

// DrawPixel sets one logical pixel. Out-of-range coordinates are ignored.
func (d *Device) DrawPixel(x, y int16, c gfx.Color) {
	x, y = d.transform(x, y)
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.pix[int(y)*int(d.width)+int(x)] = c
}

// StartWrite opens a batch bracket. Brackets nest; the depth is tracked so
// tests can assert pairing.
func (d *Device) StartWrite() { d.batchDepth++ }

// EndWrite closes the innermost batch bracket.
func (d *Device) EndWrite() { d.batchDepth-- }

// BatchDepth reports the current bracket nesting depth; zero means idle.
func (d *Device) BatchDepth() int { return d.batchDepth }

// FillRect fills a logical rectangle.
func (d *Device) FillRect(x, y, w, h int16, c gfx.Color) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			d.DrawPixel(i, j, c)
		}
	}
}

// FillScreen fills the whole panel regardless of rotation.
func (d *Device) FillScreen(c gfx.Color) {
	for i := range d.pix {
		d.pix[i] = c
	}
}

// SetRotation records the logical rotation used to remap coordinates.
func (d *Device) SetRotation(r gfx.Rotation) { d.rotation = r }

// InvertDisplay toggles output inversion. The pixel store is unchanged;
// readback applies the inversion, as a panel would on scan-out.
func (d *Device) InvertDisplay(on bool) { d.inverted = on }

// Pixel returns the logical pixel at (x, y) with inversion applied.
// Out-of-range reads return zero.
func (d *Device) Pixel(x, y int16) gfx.Color {
	x, y = d.transform(x, y)
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return 0
	}
	c := d.pix[int(y)*int(d.width)+int(x)]
	if d.inverted {
		c = ^c
	}
	return c
}

// ToImage expands the framebuffer into an 8-bit NRGBA image in native
// orientation, replicating high bits so full-scale 5/6-bit components map
// to 255.
func (d *Device) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(d.width), int(d.height)))
	for y := 0; y < int(d.height); y++ {
		for x := 0; x < int(d.width); x++ {
			c := d.pix[y*int(d.width)+x]
			if d.inverted {
				c = ^c
			}
			r, g, b := c.RGB()
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}

// SavePNG writes the framebuffer contents to a PNG file.
func (d *Device) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("framebuffer: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, d.ToImage()); err != nil {
		return fmt.Errorf("framebuffer: encode png: %w", err)
	}
	return nil
}
