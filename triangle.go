package gfx

// DrawTriangle draws a triangle outline as three lines.
func (d *Display) DrawTriangle(x0, y0, x1, y1, x2, y2 int16, c Color) {
	d.DrawLine(x0, y0, x1, y1, c)
	d.DrawLine(x1, y1, x2, y2, c)
	d.DrawLine(x2, y2, x0, y0, c)
}

// FillTriangle fills a triangle with horizontal spans, interpolating the
// two edge crossings per scanline incrementally instead of dividing from
// scratch each row.
func (d *Display) FillTriangle(x0, y0, x1, y1, x2, y2 int16, c Color) {
	var a, b, y, last int16

	// Sort coordinates by Y order (y2 >= y1 >= y0).
	if y0 > y1 {
		y0, y1 = y1, y0
		x0, x1 = x1, x0
	}
	if y1 > y2 {
		y2, y1 = y1, y2
		x2, x1 = x1, x2
	}
	if y0 > y1 {
		y0, y1 = y1, y0
		x0, x1 = x1, x0
	}

	d.startWrite()

	if y0 == y2 { // Handle awkward all-on-same-line case as its own thing
		a = x0
		b = x0
		if x1 < a {
			a = x1
		} else if x1 > b {
			b = x1
		}
		if x2 < a {
			a = x2
		} else if x2 > b {
			b = x2
		}
		d.writeFastHLine(a, y0, b-a+1, c)
		d.endWrite()
		return
	}

	dx01 := int32(x1 - x0)
	dy01 := int32(y1 - y0)
	dx02 := int32(x2 - x0)
	dy02 := int32(y2 - y0)
	dx12 := int32(x2 - x1)
	dy12 := int32(y2 - y1)
	var sa, sb int32

	// For the upper part of the triangle, find scanline crossings for
	// segments 0-1 and 0-2. If y1=y2 (flat-bottomed triangle), the
	// scanline y1 is included here (and the second loop is skipped,
	// avoiding a /0 there); otherwise scanline y1 is skipped here and
	// handled in the second loop, which also avoids a /0 here if y0=y1.
	if y1 == y2 {
		last = y1 // Include y1 scanline
	} else {
		last = y1 - 1 // Skip it
	}

	for y = y0; y <= last; y++ {
		a = x0 + int16(sa/dy01)
		b = x0 + int16(sb/dy02)
		sa += dx01
		sb += dx02
		// longhand:
		// a = x0 + (x1-x0) * (y-y0) / (y1-y0)
		// b = x0 + (x2-x0) * (y-y0) / (y2-y0)
		if a > b {
			a, b = b, a
		}
		d.writeFastHLine(a, y, b-a+1, c)
	}

	// For the lower part of the triangle, find scanline crossings for
	// segments 0-2 and 1-2. This loop is skipped if y1=y2.
	sa = dx12 * int32(y-y1)
	sb = dx02 * int32(y-y0)
	for ; y <= y2; y++ {
		a = x1 + int16(sa/dy12)
		b = x0 + int16(sb/dy02)
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		d.writeFastHLine(a, y, b-a+1, c)
	}

	d.endWrite()
}
