package gfx

import "testing"

func TestDrawRectOutline(t *testing.T) {
	drv := newPixelDriver()
	d := NewDisplay(drv, 64, 64)

	d.DrawRect(1, 1, 4, 3, White)

	for x := int16(1); x <= 4; x++ {
		if !drv.has(x, 1) || !drv.has(x, 3) {
			t.Errorf("missing top/bottom edge pixel at x=%d", x)
		}
	}
	for y := int16(1); y <= 3; y++ {
		if !drv.has(1, y) || !drv.has(4, y) {
			t.Errorf("missing left/right edge pixel at y=%d", y)
		}
	}
	if drv.has(2, 2) || drv.has(3, 2) {
		t.Error("interior pixels must stay untouched")
	}
	if len(drv.pixels) != 10 {
		t.Errorf("painted %d pixels, want 10", len(drv.pixels))
	}
}

func TestFillRectCoverage(t *testing.T) {
	drv := newPixelDriver()
	d := NewDisplay(drv, 64, 64)

	d.FillRect(2, 3, 5, 4, Red)

	if len(drv.pixels) != 20 {
		t.Fatalf("painted %d pixels, want 20", len(drv.pixels))
	}
	for y := int16(3); y < 7; y++ {
		for x := int16(2); x < 7; x++ {
			if drv.pixels[testPixel{x, y}] != Red {
				t.Errorf("pixel (%d,%d) not filled", x, y)
			}
		}
	}
	if drv.maxPaintCount() != 1 {
		t.Errorf("max paint count = %d, want 1", drv.maxPaintCount())
	}
}

func TestFillScreenFallback(t *testing.T) {
	drv := newPixelDriver()
	d := NewDisplay(drv, 8, 6)

	d.FillScreen(Blue)

	if len(drv.pixels) != 48 {
		t.Errorf("painted %d pixels, want 48", len(drv.pixels))
	}
}

func TestFillScreenCoversRotatedExtents(t *testing.T) {
	drv := newPixelDriver()
	d := NewDisplay(drv, 8, 6, WithRotation(Rotation90))

	d.FillScreen(Blue)

	// Logical extents are 6x8 after rotation; the fallback fills those.
	if len(drv.pixels) != 48 {
		t.Fatalf("painted %d pixels, want 48", len(drv.pixels))
	}
	if !drv.has(5, 7) || drv.has(6, 0) || drv.has(0, 8) {
		t.Error("fill does not match the 6x8 logical extents")
	}
}

func roundRectPixels(x, y, w, h, r int16) *pixelDriver {
	drv := newPixelDriver()
	d := NewDisplay(drv, 64, 64)
	d.DrawRoundRect(x, y, w, h, r, White)
	return drv
}

func TestDrawRoundRectZeroRadius(t *testing.T) {
	round := roundRectPixels(3, 3, 10, 7, 0)

	drv := newPixelDriver()
	d := NewDisplay(drv, 64, 64)
	d.DrawRect(3, 3, 10, 7, White)

	if !round.equal(drv) {
		t.Error("radius 0 rounded rect should equal the plain rect outline")
	}
}

func TestDrawRoundRectRadiusClamp(t *testing.T) {
	// Height 8 clamps the radius to 4; larger requests are identical.
	clamped := roundRectPixels(2, 2, 20, 8, 10)
	exact := roundRectPixels(2, 2, 20, 8, 4)

	if !clamped.equal(exact) {
		t.Error("oversized radius not clamped to half the minor axis")
	}
}

func TestDrawRoundRectCornerGeometry(t *testing.T) {
	drv := roundRectPixels(0, 0, 20, 20, 5)

	// Square corners must be cut: the extreme corner pixels stay clear.
	for _, pt := range []testPixel{{0, 0}, {19, 0}, {0, 19}, {19, 19}} {
		if drv.has(pt.x, pt.y) {
			t.Errorf("corner pixel (%d,%d) should be rounded away", pt.x, pt.y)
		}
	}
	// Edge midpoints are on the outline.
	for _, pt := range []testPixel{{10, 0}, {10, 19}, {0, 10}, {19, 10}} {
		if !drv.has(pt.x, pt.y) {
			t.Errorf("edge pixel (%d,%d) missing", pt.x, pt.y)
		}
	}
	// The outline is symmetric under horizontal and vertical mirroring.
	for pt := range drv.pixels {
		if !drv.has(19-pt.x, pt.y) {
			t.Errorf("no horizontal mirror for (%d,%d)", pt.x, pt.y)
		}
		if !drv.has(pt.x, 19-pt.y) {
			t.Errorf("no vertical mirror for (%d,%d)", pt.x, pt.y)
		}
	}
}

func TestFillRoundRectPaintsOnce(t *testing.T) {
	tests := []struct {
		w, h, r int16
	}{
		{20, 12, 2},
		{20, 12, 3},
		{16, 16, 5},
		{9, 9, 4},
	}
	for _, tt := range tests {
		drv := newPixelDriver()
		d := NewDisplay(drv, 64, 64)
		d.FillRoundRect(2, 2, tt.w, tt.h, tt.r, Red)

		if n := drv.maxPaintCount(); n != 1 {
			t.Errorf("FillRoundRect(%dx%d r=%d): max paint count = %d, want 1",
				tt.w, tt.h, tt.r, n)
		}
	}
}

func TestFillRoundRectContainsCenterAndCutsCorners(t *testing.T) {
	drv := newPixelDriver()
	d := NewDisplay(drv, 64, 64)
	d.FillRoundRect(0, 0, 20, 14, 4, Red)

	for y := int16(0); y < 14; y++ {
		for x := int16(4); x < 16; x++ {
			if !drv.has(x, y) {
				t.Errorf("center pixel (%d,%d) missing", x, y)
			}
		}
	}
	for _, pt := range []testPixel{{0, 0}, {19, 0}, {0, 13}, {19, 13}} {
		if drv.has(pt.x, pt.y) {
			t.Errorf("corner pixel (%d,%d) should be rounded away", pt.x, pt.y)
		}
	}
}
