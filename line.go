package gfx

// writeLine rasterizes an arbitrary line with Bresenham's algorithm,
// normalizing so the major axis increases monotonically before walking.
// Must be called between startWrite and endWrite unless the driver
// declared LineWriter.
func (d *Display) writeLine(x0, y0, x1, y1 int16, c Color) {
	if d.wline != nil {
		d.wline.WriteLine(x0, y0, x1, y1, c)
		return
	}

	steep := abs16(y1-y0) > abs16(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs16(y1 - y0)
	err := dx / 2
	ystep := int16(-1)
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			d.writePixel(y0, x0, c)
		} else {
			d.writePixel(x0, y0, c)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// writeFastVLine is the bracketed vertical line used inside compound
// operations; the caller owns the batch bracket.
func (d *Display) writeFastVLine(x, y, h int16, c Color) {
	if d.wvline != nil {
		d.wvline.WriteFastVLine(x, y, h, c)
		return
	}
	// Could be just writeLine(x, y, x, y+h-1, c), but a driver may have a
	// self-contained accelerated vertical line worth delegating to.
	d.DrawFastVLine(x, y, h, c)
}

// writeFastHLine is the bracketed horizontal line counterpart.
func (d *Display) writeFastHLine(x, y, w int16, c Color) {
	if d.whline != nil {
		d.whline.WriteFastHLine(x, y, w, c)
		return
	}
	d.DrawFastHLine(x, y, w, c)
}

// DrawFastVLine draws a perfectly vertical line of height h starting at
// the top-most coordinate (x, y).
func (d *Display) DrawFastVLine(x, y, h int16, c Color) {
	if d.dvline != nil {
		d.dvline.DrawFastVLine(x, y, h, c)
		return
	}
	d.startWrite()
	d.writeLine(x, y, x, y+h-1, c)
	d.endWrite()
}

// DrawFastHLine draws a perfectly horizontal line of width w starting at
// the left-most coordinate (x, y).
func (d *Display) DrawFastHLine(x, y, w int16, c Color) {
	if d.dhline != nil {
		d.dhline.DrawFastHLine(x, y, w, c)
		return
	}
	d.startWrite()
	d.writeLine(x, y, x+w-1, y, c)
	d.endWrite()
}

// DrawLine draws a line between two points. Purely horizontal or vertical
// lines are short-circuited to the fast line paths.
func (d *Display) DrawLine(x0, y0, x1, y1 int16, c Color) {
	if d.dline != nil {
		d.dline.DrawLine(x0, y0, x1, y1, c)
		return
	}
	switch {
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		d.DrawFastVLine(x0, y0, y1-y0+1, c)
	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		d.DrawFastHLine(x0, y0, x1-x0+1, c)
	default:
		d.startWrite()
		d.writeLine(x0, y0, x1, y1, c)
		d.endWrite()
	}
}
