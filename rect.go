package gfx

// writeFillRect is the bracketed filled rectangle used inside compound
// operations; the caller owns the batch bracket.
func (d *Display) writeFillRect(x, y, w, h int16, c Color) {
	if d.wrect != nil {
		d.wrect.WriteFillRect(x, y, w, h, c)
		return
	}
	d.FillRect(x, y, w, h, c)
}

// DrawRect draws a rectangle outline with its top-left corner at (x, y).
func (d *Display) DrawRect(x, y, w, h int16, c Color) {
	d.startWrite()
	d.writeFastHLine(x, y, w, c)
	d.writeFastHLine(x, y+h-1, w, c)
	d.writeFastVLine(x, y, h, c)
	d.writeFastVLine(x+w-1, y, h, c)
	d.endWrite()
}

// FillRect fills a rectangle with one color.
func (d *Display) FillRect(x, y, w, h int16, c Color) {
	if d.drect != nil {
		d.drect.FillRect(x, y, w, h, c)
		return
	}
	d.startWrite()
	for i := x; i < x+w; i++ {
		d.writeFastVLine(i, y, h, c)
	}
	d.endWrite()
}

// FillScreen fills the whole logical display area with one color.
func (d *Display) FillScreen(c Color) {
	if d.dfill != nil {
		d.dfill.FillScreen(c)
		return
	}
	d.FillRect(0, 0, d.width, d.height, c)
}

// DrawRoundRect draws a rounded-corner rectangle outline. A radius larger
// than half the shorter side is clamped.
func (d *Display) DrawRoundRect(x, y, w, h, r int16, c Color) {
	maxRadius := min(w, h) / 2 // 1/2 minor axis
	if r > maxRadius {
		r = maxRadius
	}
	d.startWrite()
	d.writeFastHLine(x+r, y, w-2*r, c)     // Top
	d.writeFastHLine(x+r, y+h-1, w-2*r, c) // Bottom
	d.writeFastVLine(x, y+r, h-2*r, c)     // Left
	d.writeFastVLine(x+w-1, y+r, h-2*r, c) // Right
	// Four corner arcs; the mask-to-corner assignment is load-bearing and
	// locked by golden tests.
	d.drawCircleHelper(x+r, y+r, r, 1, c)
	d.drawCircleHelper(x+w-r-1, y+r, r, 2, c)
	d.drawCircleHelper(x+w-r-1, y+h-r-1, r, 4, c)
	d.drawCircleHelper(x+r, y+h-r-1, r, 8, c)
	d.endWrite()
}

// FillRoundRect fills a rounded-corner rectangle. A radius larger than
// half the shorter side is clamped.
func (d *Display) FillRoundRect(x, y, w, h, r int16, c Color) {
	maxRadius := min(w, h) / 2 // 1/2 minor axis
	if r > maxRadius {
		r = maxRadius
	}
	d.startWrite()
	d.writeFillRect(x+r, y, w-2*r, h, c)
	// Two filled quarter-circle passes, each covering two adjacent corners.
	d.fillCircleHelper(x+w-r-1, y+r, r, 1, h-2*r-1, c)
	d.fillCircleHelper(x+r, y+r, r, 2, h-2*r-1, c)
	d.endWrite()
}
