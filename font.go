package gfx

// Glyph holds one character's position within a Font's shared bitmap blob
// plus its placement metrics. Offsets are relative to the text baseline.
type Glyph struct {
	BitmapOffset uint16 // index into Font.Bitmap
	Width        uint8  // bitmap width in pixels
	Height       uint8  // bitmap height in pixels
	XAdvance     uint8  // cursor advance after drawing
	XOffset      int8   // left bearing from the cursor position
	YOffset      int8   // top bearing from the baseline (negative is up)
}

// Font is a variable-metric bitmap font descriptor. The glyph bitmap blob
// is packed 1 bit per pixel, MSB-first, row-major per glyph, contiguous
// across glyphs at the stated offsets.
//
// Glyphs cover the contiguous code range [First, Last]; Glyphs[i] describes
// code First+i. Characters outside the range are non-printable: they draw
// nothing and advance nothing.
type Font struct {
	Bitmap   []byte
	Glyphs   []Glyph
	First    byte
	Last     byte
	YAdvance uint8 // newline distance in pixels
}

// glyph returns the descriptor for an in-range character code.
func (f *Font) glyph(c byte) *Glyph {
	return &f.Glyphs[c-f.First]
}

// SetFont selects the font used by Write and TextBounds. Passing nil
// selects the built-in 6x8 font.
//
// The built-in font anchors characters at their top-left corner while
// custom fonts anchor on the baseline, so switching between the two modes
// shifts the cursor Y by 6 pixels to keep text visually in place. Setting
// a custom font and then reverting to nil restores the cursor exactly.
func (d *Display) SetFont(f *Font) {
	if f != nil {
		if d.font == nil {
			// Switching from classic to custom font behavior:
			// move the cursor down onto the baseline.
			d.cursorY += 6
		}
	} else if d.font != nil {
		// Switching from custom to classic font behavior:
		// move the cursor up to the top-left of the cell.
		d.cursorY -= 6
	}
	d.font = f
}
