package gfx

import (
	"io"

	"golang.org/x/text/encoding/charmap"
)

// Display is an io.Writer and io.ByteWriter over the text pipeline, so
// fmt.Fprintf prints straight to the screen.
var (
	_ io.Writer     = (*Display)(nil)
	_ io.ByteWriter = (*Display)(nil)
)

// SetCursor moves the text cursor to (x, y). With the built-in font this
// is the top-left of the next character cell; with a custom font it is the
// baseline origin.
func (d *Display) SetCursor(x, y int16) {
	d.cursorX = x
	d.cursorY = y
}

// CursorX returns the cursor's X position.
func (d *Display) CursorX() int16 { return d.cursorX }

// CursorY returns the cursor's Y position.
func (d *Display) CursorY() int16 { return d.cursorY }

// SetTextColor sets the text color with a transparent background: glyph
// background pixels are left untouched.
func (d *Display) SetTextColor(c Color) {
	// Setting both to the same value means transparent background.
	d.textColor = c
	d.textBG = c
}

// SetTextColorBG sets the text color and an opaque background color. The
// background is only honored by the built-in font; custom-font glyphs can
// overlap, so erase-by-background is unsafe there (clear a TextBounds
// rectangle instead).
func (d *Display) SetTextColorBG(c, bg Color) {
	d.textColor = c
	d.textBG = bg
}

// SetTextSize sets a uniform text magnification. 1 is the native 6x8 cell,
// 2 is 12x16, and so on. Values below 1 are clamped to 1.
func (d *Display) SetTextSize(s int16) {
	d.SetTextSizeXY(s, s)
}

// SetTextSizeXY sets independent X and Y text magnification.
func (d *Display) SetTextSizeXY(sx, sy int16) {
	if sx < 1 {
		sx = 1
	}
	if sy < 1 {
		sy = 1
	}
	d.sizeX = sx
	d.sizeY = sy
}

// SetTextWrap controls wrapping at the right edge of the display.
func (d *Display) SetTextWrap(wrap bool) { d.wrap = wrap }

// SetCP437 selects the corrected CP437 charset for the built-in font.
// The original glyph table skipped one slot at code 176, and by default
// codes >= 176 are remapped one position up to match text authored
// against that legacy behavior. Enable CP437 for correctly indexed data.
func (d *Display) SetCP437(on bool) { d.cp437 = on }

// DrawChar draws a single character at an explicit position, bypassing the
// cursor state machine entirely: no wrap, no newline handling, no cursor
// advance. With a custom font the caller must pre-filter characters the
// way WriteByte does; out-of-range codes index the glyph table blindly.
//
// With the built-in font a bg different from c paints the whole 6x8 cell
// (including the spacing column) in bg; bg == c leaves background pixels
// untouched.
func (d *Display) DrawChar(x, y int16, ch byte, c, bg Color, sizeX, sizeY int16) {
	if d.font == nil { // Built-in font
		if x >= d.width || // Clip right
			y >= d.height || // Clip bottom
			x+6*sizeX-1 < 0 || // Clip left
			y+8*sizeY-1 < 0 { // Clip top
			return
		}

		if !d.cp437 && ch >= 176 {
			ch++ // Handle legacy charset behavior
		}

		d.startWrite()
		for i := int16(0); i < 5; i++ { // Char bitmap = 5 columns
			line := classicFont[int(ch)*5+int(i)]
			for j := int16(0); j < 8; j, line = j+1, line>>1 {
				if line&1 != 0 {
					if sizeX == 1 && sizeY == 1 {
						d.writePixel(x+i, y+j, c)
					} else {
						d.writeFillRect(x+i*sizeX, y+j*sizeY, sizeX, sizeY, c)
					}
				} else if bg != c {
					if sizeX == 1 && sizeY == 1 {
						d.writePixel(x+i, y+j, bg)
					} else {
						d.writeFillRect(x+i*sizeX, y+j*sizeY, sizeX, sizeY, bg)
					}
				}
			}
		}
		if bg != c { // If opaque, draw the spacing column too
			if sizeX == 1 && sizeY == 1 {
				d.writeFastVLine(x+5, y, 8, bg)
			} else {
				d.writeFillRect(x+5*sizeX, y, sizeX, 8*sizeY, bg)
			}
		}
		d.endWrite()
		return
	}

	// Custom font. The character is assumed previously filtered by
	// WriteByte; there is no background color option here since
	// proportional glyphs of varying size may overlap.
	g := d.font.glyph(ch)
	bo := int(g.BitmapOffset)
	w := int16(g.Width)
	h := int16(g.Height)
	xo := int16(g.XOffset)
	yo := int16(g.YOffset)

	var bits byte
	var bit uint8
	var xo16, yo16 int16
	if sizeX > 1 || sizeY > 1 {
		xo16 = xo
		yo16 = yo
	}

	d.startWrite()
	for yy := int16(0); yy < h; yy++ {
		for xx := int16(0); xx < w; xx++ {
			if bit&7 == 0 {
				bits = d.font.Bitmap[bo]
				bo++
			}
			bit++
			if bits&0x80 != 0 {
				if sizeX == 1 && sizeY == 1 {
					d.writePixel(x+xo+xx, y+yo+yy, c)
				} else {
					d.writeFillRect(x+(xo16+xx)*sizeX, y+(yo16+yy)*sizeY, sizeX, sizeY, c)
				}
			}
			bits <<= 1
		}
	}
	d.endWrite()
}

// WriteByte consumes one byte of text at the cursor: '\n' resets X and
// advances Y one line, '\r' is swallowed, anything else optionally wraps,
// draws, and advances the cursor. The error is always nil; the signature
// satisfies io.ByteWriter.
func (d *Display) WriteByte(ch byte) error {
	if d.font == nil { // Built-in font
		switch {
		case ch == '\n':
			d.cursorX = 0
			d.cursorY += d.sizeY * 8
		case ch != '\r':
			if d.wrap && d.cursorX+d.sizeX*6 > d.width { // Off right?
				d.cursorX = 0
				d.cursorY += d.sizeY * 8
			}
			d.DrawChar(d.cursorX, d.cursorY, ch, d.textColor, d.textBG, d.sizeX, d.sizeY)
			d.cursorX += d.sizeX * 6
		}
		return nil
	}

	// Custom font
	switch {
	case ch == '\n':
		d.cursorX = 0
		d.cursorY += d.sizeY * int16(d.font.YAdvance)
	case ch != '\r':
		if ch < d.font.First || ch > d.font.Last {
			return nil // Non-printable: no draw, no advance
		}
		g := d.font.glyph(ch)
		w := int16(g.Width)
		h := int16(g.Height)
		if w > 0 && h > 0 { // Is there an associated bitmap?
			xo := int16(g.XOffset)
			if d.wrap && d.cursorX+d.sizeX*(xo+w) > d.width {
				d.cursorX = 0
				d.cursorY += d.sizeY * int16(d.font.YAdvance)
			}
			d.DrawChar(d.cursorX, d.cursorY, ch, d.textColor, d.textBG, d.sizeX, d.sizeY)
		}
		d.cursorX += int16(g.XAdvance) * d.sizeX
	}
	return nil
}

// Write feeds every byte of p through WriteByte. It never fails; the
// signature satisfies io.Writer so fmt.Fprintf works on a Display.
func (d *Display) Write(p []byte) (int, error) {
	for _, ch := range p {
		d.WriteByte(ch)
	}
	return len(p), nil
}

// WriteString prints a Go string, mapping each rune to its CP437 byte.
// Runes with no CP437 equivalent are printed as '?'. For plain ASCII this
// is the identity mapping; for box-drawing and accented characters it
// reaches the extended half of the built-in font (most useful with CP437
// mode enabled, see SetCP437).
func (d *Display) WriteString(s string) (int, error) {
	for _, r := range s {
		b, ok := charmap.CodePage437.EncodeRune(r)
		if !ok {
			b = '?'
		}
		d.WriteByte(b)
	}
	return len(s), nil
}
