package gfx

import "image/color"

// Color is an opaque 16-bit color token. The engine never decodes it; the
// value is forwarded verbatim to the driver. By convention it is 5-6-5 RGB,
// and the helpers in this file follow that convention, but a driver for an
// 8-bit grayscale or monochrome panel is free to interpret the token any
// way it likes.
type Color uint16

// Common RGB565 colors.
const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Blue    Color = 0x001F
	Yellow  Color = Red | Green
	Cyan    Color = Green | Blue
	Magenta Color = Red | Blue
)

// RGB565 packs 8-bit red, green and blue components into a 5-6-5 token.
func RGB565(r, g, b uint8) Color {
	return Color(r&0xF8)<<8 | Color(g&0xFC)<<3 | Color(b)>>3
}

// FromColor converts a standard color.Color to a 5-6-5 token.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGBA implements the color.Color interface, expanding the 5-6-5 token with
// high-bit replication so that full-scale components map to full-scale
// 8-bit values.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xFFFF
}

// RGB unpacks the token into 8-bit components with high-bit replication.
func (c Color) RGB() (r, g, b uint8) {
	r = uint8(c>>11) << 3
	r |= r >> 5
	g = uint8(c>>5&0x3F) << 2
	g |= g >> 6
	b = uint8(c&0x1F) << 3
	b |= b >> 5
	return r, g, b
}
