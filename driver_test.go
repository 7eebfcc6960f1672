package gfx

// Recording drivers shared by the package tests. Each variant declares a
// different capability set so dispatch can be asserted per slot.

type testPixel struct{ x, y int16 }

// pixelDriver implements only the mandatory DrawPixel. It records the last
// color and the paint count per coordinate, so tests can assert exact pixel
// sets and exact-once painting.
type pixelDriver struct {
	pixels map[testPixel]Color
	counts map[testPixel]int
}

func newPixelDriver() *pixelDriver {
	return &pixelDriver{
		pixels: make(map[testPixel]Color),
		counts: make(map[testPixel]int),
	}
}

func (p *pixelDriver) DrawPixel(x, y int16, c Color) {
	pt := testPixel{x, y}
	p.pixels[pt] = c
	p.counts[pt]++
}

func (p *pixelDriver) has(x, y int16) bool {
	_, ok := p.pixels[testPixel{x, y}]
	return ok
}

func (p *pixelDriver) equal(o *pixelDriver) bool {
	if len(p.pixels) != len(o.pixels) {
		return false
	}
	for pt, c := range p.pixels {
		if oc, ok := o.pixels[pt]; !ok || oc != c {
			return false
		}
	}
	return true
}

// maxPaintCount returns the highest paint count over all touched pixels.
func (p *pixelDriver) maxPaintCount() int {
	m := 0
	for _, n := range p.counts {
		if n > m {
			m = n
		}
	}
	return m
}

// batchDriver adds StartWrite/EndWrite tracking on top of pixelDriver.
type batchDriver struct {
	pixelDriver
	depth    int
	maxDepth int
	starts   int
	ends     int
}

func newBatchDriver() *batchDriver {
	return &batchDriver{pixelDriver: *newPixelDriver()}
}

func (b *batchDriver) StartWrite() {
	b.starts++
	b.depth++
	if b.depth > b.maxDepth {
		b.maxDepth = b.depth
	}
}

func (b *batchDriver) EndWrite() {
	b.ends++
	b.depth--
}

// accelDriver declares every self-contained accelerated operation and logs
// the calls without rasterizing, so delegation can be observed directly.
type accelDriver struct {
	pixels    int
	vlines    int
	hlines    int
	lines     int
	rects     int
	fills     []Color
	rotations []Rotation
	inverts   []bool
}

func (a *accelDriver) DrawPixel(x, y int16, c Color)            { a.pixels++ }
func (a *accelDriver) DrawFastVLine(x, y, h int16, c Color)     { a.vlines++ }
func (a *accelDriver) DrawFastHLine(x, y, w int16, c Color)     { a.hlines++ }
func (a *accelDriver) DrawLine(x0, y0, x1, y1 int16, c Color)   { a.lines++ }
func (a *accelDriver) FillRect(x, y, w, h int16, c Color)       { a.rects++ }
func (a *accelDriver) FillScreen(c Color)                       { a.fills = append(a.fills, c) }
func (a *accelDriver) SetRotation(r Rotation)                   { a.rotations = append(a.rotations, r) }
func (a *accelDriver) InvertDisplay(on bool)                    { a.inverts = append(a.inverts, on) }

// writeDriver declares the bracketed Write* capabilities, rasterizing them
// into the embedded pixel map while counting calls per slot.
type writeDriver struct {
	pixelDriver
	writePixels int
	writeVLines int
	writeHLines int
	writeLines  int
	writeRects  int
}

func newWriteDriver() *writeDriver {
	return &writeDriver{pixelDriver: *newPixelDriver()}
}

func (w *writeDriver) WritePixel(x, y int16, c Color) {
	w.writePixels++
	w.pixelDriver.DrawPixel(x, y, c)
}

func (w *writeDriver) WriteFastVLine(x, y, h int16, c Color) {
	w.writeVLines++
	for k := int16(0); k < h; k++ {
		w.pixelDriver.DrawPixel(x, y+k, c)
	}
}

func (w *writeDriver) WriteFastHLine(x, y, wd int16, c Color) {
	w.writeHLines++
	for k := int16(0); k < wd; k++ {
		w.pixelDriver.DrawPixel(x+k, y, c)
	}
}

func (w *writeDriver) WriteLine(x0, y0, x1, y1 int16, c Color) {
	w.writeLines++
}

func (w *writeDriver) WriteFillRect(x, y, wd, h int16, c Color) {
	w.writeRects++
	for j := int16(0); j < h; j++ {
		for i := int16(0); i < wd; i++ {
			w.pixelDriver.DrawPixel(x+i, y+j, c)
		}
	}
}

// Capability sets resolved at NewDisplay.
var (
	_ Driver           = (*pixelDriver)(nil)
	_ Driver           = (*batchDriver)(nil)
	_ Batcher          = (*batchDriver)(nil)
	_ Driver           = (*accelDriver)(nil)
	_ VLineDrawer      = (*accelDriver)(nil)
	_ HLineDrawer      = (*accelDriver)(nil)
	_ LineDrawer       = (*accelDriver)(nil)
	_ RectFiller       = (*accelDriver)(nil)
	_ ScreenFiller     = (*accelDriver)(nil)
	_ RotationNotifier = (*accelDriver)(nil)
	_ Inverter         = (*accelDriver)(nil)
	_ PixelWriter      = (*writeDriver)(nil)
	_ VLineWriter      = (*writeDriver)(nil)
	_ HLineWriter      = (*writeDriver)(nil)
	_ LineWriter       = (*writeDriver)(nil)
	_ RectWriter       = (*writeDriver)(nil)
)
