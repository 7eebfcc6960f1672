package gfx

// charBounds replays WriteByte's per-character advance and wrap logic for
// one byte without drawing anything. The virtual cursor (*x, *y) and the
// running bounding-box accumulators are updated in place.
func (d *Display) charBounds(ch byte, x, y, minX, minY, maxX, maxY *int16) {
	if d.font != nil { // Custom font
		if ch == '\n' {
			*x = 0
			*y += d.sizeY * int16(d.font.YAdvance)
			return
		}
		if ch == '\r' {
			return
		}
		if ch < d.font.First || ch > d.font.Last {
			return
		}
		g := d.font.glyph(ch)
		gw := int16(g.Width)
		gh := int16(g.Height)
		xa := int16(g.XAdvance)
		xo := int16(g.XOffset)
		yo := int16(g.YOffset)

		if d.wrap && *x+(xo+gw)*d.sizeX > d.width {
			*x = 0
			*y += d.sizeY * int16(d.font.YAdvance)
		}

		x1 := *x + xo*d.sizeX
		y1 := *y + yo*d.sizeY
		x2 := x1 + gw*d.sizeX - 1
		y2 := y1 + gh*d.sizeY - 1
		if x1 < *minX {
			*minX = x1
		}
		if y1 < *minY {
			*minY = y1
		}
		if x2 > *maxX {
			*maxX = x2
		}
		if y2 > *maxY {
			*maxY = y2
		}
		*x += xa * d.sizeX
		return
	}

	// Built-in font
	if ch == '\n' {
		*x = 0
		*y += d.sizeY * 8
		// min/max unchanged; that waits for the next normal character
		return
	}
	if ch == '\r' {
		return
	}
	if d.wrap && *x+d.sizeX*6 > d.width { // Off right?
		*x = 0
		*y += d.sizeY * 8
	}
	x2 := *x + d.sizeX*6 - 1 // Lower-right pixel of the cell
	y2 := *y + d.sizeY*8 - 1
	if x2 > *maxX {
		*maxX = x2
	}
	if y2 > *maxY {
		*maxY = y2
	}
	if *x < *minX {
		*minX = *x
	}
	if *y < *minY {
		*minY = *y
	}
	*x += d.sizeX * 6
}

// TextBounds computes the bounding box the string would occupy if printed
// with the current font, size and wrap settings starting at cursor (x, y).
// It returns the box's top-left corner and extents.
//
// A string with no printable characters (empty, or newlines/returns only)
// yields a zero-size box anchored at the input cursor.
func (d *Display) TextBounds(s string, x, y int16) (bx, by int16, bw, bh uint16) {
	bx = x
	by = y

	minX := d.width
	minY := d.height
	maxX := int16(-1)
	maxY := int16(-1)

	for i := 0; i < len(s); i++ {
		d.charBounds(s[i], &x, &y, &minX, &minY, &maxX, &maxY)
	}

	if maxX >= minX {
		bx = minX
		bw = uint16(maxX - minX + 1)
	}
	if maxY >= minY {
		by = minY
		bh = uint16(maxY - minY + 1)
	}
	return bx, by, bw, bh
}
