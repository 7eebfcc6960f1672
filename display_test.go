package gfx

import "testing"

func TestNewDisplayDefaults(t *testing.T) {
	d := NewDisplay(newPixelDriver(), 240, 135)

	if d.Width() != 240 || d.Height() != 135 {
		t.Errorf("extents = %dx%d, want 240x135", d.Width(), d.Height())
	}
	if d.Rotation() != Rotation0 {
		t.Errorf("Rotation() = %d, want 0", d.Rotation())
	}
	if d.CursorX() != 0 || d.CursorY() != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", d.CursorX(), d.CursorY())
	}
	if d.sizeX != 1 || d.sizeY != 1 {
		t.Errorf("text size = %dx%d, want 1x1", d.sizeX, d.sizeY)
	}
	if d.textColor != White || d.textBG != White {
		t.Error("default text colors should be White with transparent background")
	}
	if !d.wrap {
		t.Error("wrap should default to true")
	}
	if d.font != nil {
		t.Error("font should default to the built-in font (nil)")
	}
}

func TestSetRotation(t *testing.T) {
	d := NewDisplay(newPixelDriver(), 240, 135)

	tests := []struct {
		r    Rotation
		w, h int16
	}{
		{Rotation0, 240, 135},
		{Rotation90, 135, 240},
		{Rotation180, 240, 135},
		{Rotation270, 135, 240},
	}
	for _, tt := range tests {
		d.SetRotation(tt.r)
		if d.Width() != tt.w || d.Height() != tt.h {
			t.Errorf("rotation %d: extents = %dx%d, want %dx%d",
				tt.r, d.Width(), d.Height(), tt.w, tt.h)
		}
		if d.Rotation() != tt.r {
			t.Errorf("Rotation() = %d, want %d", d.Rotation(), tt.r)
		}
	}
}

func TestSetRotationMasksToFour(t *testing.T) {
	d := NewDisplay(newPixelDriver(), 240, 135)

	d.SetRotation(Rotation(5))
	if d.Rotation() != Rotation90 {
		t.Errorf("Rotation() = %d, want %d", d.Rotation(), Rotation90)
	}
	if d.Width() != 135 || d.Height() != 240 {
		t.Errorf("extents = %dx%d, want 135x240", d.Width(), d.Height())
	}
}

func TestSetRotationNotifiesDriver(t *testing.T) {
	drv := &accelDriver{}
	d := NewDisplay(drv, 100, 80)

	d.SetRotation(Rotation180)
	d.SetRotation(Rotation270)

	want := []Rotation{Rotation180, Rotation270}
	if len(drv.rotations) != len(want) {
		t.Fatalf("driver saw %d rotation calls, want %d", len(drv.rotations), len(want))
	}
	for i, r := range want {
		if drv.rotations[i] != r {
			t.Errorf("rotation call %d = %d, want %d", i, drv.rotations[i], r)
		}
	}
}

func TestInvertDisplayForwarding(t *testing.T) {
	drv := &accelDriver{}
	d := NewDisplay(drv, 100, 80)

	d.InvertDisplay(true)
	d.InvertDisplay(false)

	if len(drv.inverts) != 2 || !drv.inverts[0] || drv.inverts[1] {
		t.Errorf("driver saw inverts %v, want [true false]", drv.inverts)
	}

	// Drivers without the capability simply ignore it.
	NewDisplay(newPixelDriver(), 100, 80).InvertDisplay(true)
}

func TestAcceleratedDelegation(t *testing.T) {
	tests := []struct {
		name string
		draw func(d *Display)
		want func(t *testing.T, drv *accelDriver)
	}{
		{
			name: "FillRect",
			draw: func(d *Display) { d.FillRect(1, 2, 10, 5, Red) },
			want: func(t *testing.T, drv *accelDriver) {
				if drv.rects != 1 {
					t.Errorf("FillRect calls = %d, want 1", drv.rects)
				}
			},
		},
		{
			name: "FillScreen",
			draw: func(d *Display) { d.FillScreen(Blue) },
			want: func(t *testing.T, drv *accelDriver) {
				if len(drv.fills) != 1 || drv.fills[0] != Blue {
					t.Errorf("FillScreen calls = %v, want [Blue]", drv.fills)
				}
				if drv.rects != 0 {
					t.Error("FillScreen must not fall back to FillRect when declared")
				}
			},
		},
		{
			name: "DrawLine",
			draw: func(d *Display) { d.DrawLine(0, 0, 9, 7, Green) },
			want: func(t *testing.T, drv *accelDriver) {
				if drv.lines != 1 {
					t.Errorf("DrawLine calls = %d, want 1", drv.lines)
				}
			},
		},
		{
			name: "DrawFastVLine",
			draw: func(d *Display) { d.DrawFastVLine(3, 1, 6, White) },
			want: func(t *testing.T, drv *accelDriver) {
				if drv.vlines != 1 {
					t.Errorf("DrawFastVLine calls = %d, want 1", drv.vlines)
				}
			},
		},
		{
			name: "DrawFastHLine",
			draw: func(d *Display) { d.DrawFastHLine(3, 1, 6, White) },
			want: func(t *testing.T, drv *accelDriver) {
				if drv.hlines != 1 {
					t.Errorf("DrawFastHLine calls = %d, want 1", drv.hlines)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drv := &accelDriver{}
			d := NewDisplay(drv, 100, 80)
			tt.draw(d)
			tt.want(t, drv)
			if drv.pixels != 0 {
				t.Errorf("delegated op rasterized %d raw pixels, want 0", drv.pixels)
			}
		})
	}
}

func TestWriteSlotDelegation(t *testing.T) {
	t.Run("FillRect uses WriteFastVLine columns", func(t *testing.T) {
		drv := newWriteDriver()
		d := NewDisplay(drv, 100, 80)
		d.FillRect(2, 3, 4, 5, Red)
		if drv.writeVLines != 4 {
			t.Errorf("WriteFastVLine calls = %d, want 4", drv.writeVLines)
		}
		if len(drv.pixels) != 20 {
			t.Errorf("painted %d pixels, want 20", len(drv.pixels))
		}
	})

	t.Run("DrawRect uses fast edges", func(t *testing.T) {
		drv := newWriteDriver()
		d := NewDisplay(drv, 100, 80)
		d.DrawRect(1, 1, 6, 4, Red)
		if drv.writeHLines != 2 || drv.writeVLines != 2 {
			t.Errorf("edge calls = %dH/%dV, want 2H/2V", drv.writeHLines, drv.writeVLines)
		}
	})

	t.Run("diagonal line uses WriteLine", func(t *testing.T) {
		drv := newWriteDriver()
		d := NewDisplay(drv, 100, 80)
		d.DrawLine(0, 0, 9, 7, Red)
		if drv.writeLines != 1 {
			t.Errorf("WriteLine calls = %d, want 1", drv.writeLines)
		}
	})

	t.Run("circle pixels use WritePixel", func(t *testing.T) {
		drv := newWriteDriver()
		d := NewDisplay(drv, 100, 80)
		d.DrawCircle(20, 20, 5, Red)
		if drv.writePixels == 0 {
			t.Error("DrawCircle should write pixels through WritePixel")
		}
	})

	t.Run("DrawPixel stays on the raw slot", func(t *testing.T) {
		drv := newWriteDriver()
		d := NewDisplay(drv, 100, 80)
		d.DrawPixel(1, 1, Red)
		if drv.writePixels != 0 {
			t.Error("DrawPixel must use the mandatory operation, not WritePixel")
		}
		if !drv.has(1, 1) {
			t.Error("pixel not painted")
		}
	})
}

func TestBatchBracketsBalanced(t *testing.T) {
	ops := []struct {
		name string
		draw func(d *Display)
	}{
		{"DrawLine", func(d *Display) { d.DrawLine(0, 0, 9, 7, Red) }},
		{"DrawRect", func(d *Display) { d.DrawRect(1, 1, 8, 6, Red) }},
		{"FillRect", func(d *Display) { d.FillRect(1, 1, 8, 6, Red) }},
		{"DrawCircle", func(d *Display) { d.DrawCircle(20, 20, 7, Red) }},
		{"FillCircle", func(d *Display) { d.FillCircle(20, 20, 7, Red) }},
		{"DrawRoundRect", func(d *Display) { d.DrawRoundRect(2, 2, 20, 12, 4, Red) }},
		{"FillRoundRect", func(d *Display) { d.FillRoundRect(2, 2, 20, 12, 4, Red) }},
		{"FillTriangle", func(d *Display) { d.FillTriangle(5, 5, 25, 8, 12, 30, Red) }},
		{"FillTriangleDegenerate", func(d *Display) { d.FillTriangle(5, 5, 15, 5, 10, 5, Red) }},
		{"DrawChar", func(d *Display) { d.DrawChar(0, 0, 'A', Red, Black, 1, 1) }},
		{"DrawBitmap", func(d *Display) { d.DrawBitmap(0, 0, []byte{0xF0}, 4, 1, Red) }},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			drv := newBatchDriver()
			d := NewDisplay(drv, 64, 48)
			op.draw(d)
			if drv.depth != 0 {
				t.Errorf("bracket depth after op = %d, want 0", drv.depth)
			}
			if drv.starts != drv.ends {
				t.Errorf("StartWrite/EndWrite = %d/%d, want balanced", drv.starts, drv.ends)
			}
			if drv.starts == 0 {
				t.Error("multi-pixel op never opened a batch bracket")
			}
		})
	}
}

func TestDrawPixelUnbatched(t *testing.T) {
	drv := newBatchDriver()
	d := NewDisplay(drv, 64, 48)
	d.DrawPixel(3, 4, Red)
	if drv.starts != 0 {
		t.Error("single DrawPixel must not open a batch bracket")
	}
	if !drv.has(3, 4) {
		t.Error("pixel not painted")
	}
}
