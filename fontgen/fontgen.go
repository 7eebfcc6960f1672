// Package fontgen converts golang.org/x/image font faces into gfx bitmap
// font descriptors, so any face the x/image ecosystem can load (basicfont,
// opentype, ...) is usable on a pixel display.
package fontgen

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/pixelgfx/gfx"
)

// FromFace rasterizes the characters [first, last] of a font.Face into a
// gfx.Font. Each glyph is thresholded at 50% coverage and packed 1 bit per
// pixel, MSB-first, row-major, starting on a byte boundary. Glyph metrics
// are taken relative to the baseline dot, matching the engine's custom
// font convention; the line advance comes from the face's metrics.
//
// Characters the face cannot render become zero-size glyphs that advance
// nothing, which the engine treats as non-printable.
func FromFace(face font.Face, first, last byte) (*gfx.Font, error) {
	if first > last {
		return nil, fmt.Errorf("fontgen: invalid character range %d..%d", first, last)
	}

	out := &gfx.Font{
		First:    first,
		Last:     last,
		YAdvance: uint8(face.Metrics().Height.Ceil()),
	}

	rendered := 0
	for code := int(first); code <= int(last); code++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, rune(code))
		if !ok {
			out.Glyphs = append(out.Glyphs, gfx.Glyph{
				BitmapOffset: uint16(len(out.Bitmap)),
			})
			continue
		}

		w := dr.Dx()
		h := dr.Dy()
		if w > 255 || h > 255 ||
			dr.Min.X < -128 || dr.Min.X > 127 ||
			dr.Min.Y < -128 || dr.Min.Y > 127 {
			return nil, fmt.Errorf("fontgen: glyph %q exceeds descriptor metrics (%dx%d at %v)",
				rune(code), w, h, dr.Min)
		}

		g := gfx.Glyph{
			BitmapOffset: uint16(len(out.Bitmap)),
			Width:        uint8(w),
			Height:       uint8(h),
			XAdvance:     uint8(advance.Ceil()),
			XOffset:      int8(dr.Min.X),
			YOffset:      int8(dr.Min.Y),
		}

		var cur byte
		var nbits uint
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
				cur <<= 1
				if a >= 0x8000 {
					cur |= 1
				}
				nbits++
				if nbits == 8 {
					out.Bitmap = append(out.Bitmap, cur)
					cur = 0
					nbits = 0
				}
			}
		}
		if nbits > 0 {
			out.Bitmap = append(out.Bitmap, cur<<(8-nbits))
		}

		out.Glyphs = append(out.Glyphs, g)
		if w > 0 && h > 0 {
			rendered++
		}
	}

	if rendered == 0 {
		return nil, fmt.Errorf("fontgen: face renders no glyphs in range %d..%d", first, last)
	}
	return out, nil
}
