package gfx

// DrawCircle draws a circle outline using the midpoint algorithm, mirroring
// one computed octant into all eight. The four axis-aligned extremal points
// are emitted before the loop.
func (d *Display) DrawCircle(x0, y0, r int16, c Color) {
	f := 1 - r
	ddFx := int16(1)
	ddFy := -2 * r
	x := int16(0)
	y := r

	d.startWrite()
	d.writePixel(x0, y0+r, c)
	d.writePixel(x0, y0-r, c)
	d.writePixel(x0+r, y0, c)
	d.writePixel(x0-r, y0, c)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		d.writePixel(x0+x, y0+y, c)
		d.writePixel(x0-x, y0+y, c)
		d.writePixel(x0+x, y0-y, c)
		d.writePixel(x0-x, y0-y, c)
		d.writePixel(x0+y, y0+x, c)
		d.writePixel(x0-y, y0+x, c)
		d.writePixel(x0+y, y0-x, c)
		d.writePixel(x0-y, y0-x, c)
	}
	d.endWrite()
}

// drawCircleHelper draws up to four quarter-circle arcs selected by the
// corner mask; used by DrawRoundRect. The caller owns the batch bracket.
// Mask bits: 1 upper-left, 2 upper-right, 4 lower-right, 8 lower-left.
func (d *Display) drawCircleHelper(x0, y0, r int16, corners uint8, c Color) {
	f := 1 - r
	ddFx := int16(1)
	ddFy := -2 * r
	x := int16(0)
	y := r

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		if corners&0x4 != 0 {
			d.writePixel(x0+x, y0+y, c)
			d.writePixel(x0+y, y0+x, c)
		}
		if corners&0x2 != 0 {
			d.writePixel(x0+x, y0-y, c)
			d.writePixel(x0+y, y0-x, c)
		}
		if corners&0x8 != 0 {
			d.writePixel(x0-y, y0+x, c)
			d.writePixel(x0-x, y0+y, c)
		}
		if corners&0x1 != 0 {
			d.writePixel(x0-y, y0-x, c)
			d.writePixel(x0-x, y0-y, c)
		}
	}
}

// FillCircle fills a circle: the center column plus two mirrored filled
// half-circles.
func (d *Display) FillCircle(x0, y0, r int16, c Color) {
	d.startWrite()
	d.writeFastVLine(x0, y0-r, 2*r+1, c)
	d.fillCircleHelper(x0, y0, r, 3, 0, c)
	d.endWrite()
}

// fillCircleHelper fills half-circles as vertical spans per mirrored
// x-column; used by FillCircle and FillRoundRect. Mask bit 1 selects the
// right half, bit 2 the left half. delta extends each span, which is how
// the rounded-rect corners meet the center rectangle without overlap.
// The caller owns the batch bracket.
func (d *Display) fillCircleHelper(x0, y0, r int16, corners uint8, delta int16, c Color) {
	f := 1 - r
	ddFx := int16(1)
	ddFy := -2 * r
	x := int16(0)
	y := r
	px := x
	py := y

	delta++ // Avoid some +1's in the loop

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		// These checks avoid double-drawing certain lines, important for
		// drivers with an INVERT drawing mode.
		if x < y+1 {
			if corners&1 != 0 {
				d.writeFastVLine(x0+x, y0-y, 2*y+delta, c)
			}
			if corners&2 != 0 {
				d.writeFastVLine(x0-x, y0-y, 2*y+delta, c)
			}
		}
		if y != py {
			if corners&1 != 0 {
				d.writeFastVLine(x0+py, y0-px, 2*px+delta, c)
			}
			if corners&2 != 0 {
				d.writeFastVLine(x0-py, y0-px, 2*px+delta, c)
			}
			py = y
		}
		px = x
	}
}
