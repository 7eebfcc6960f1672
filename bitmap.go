package gfx

import "image"

// DrawBitmap draws a packed 1-bit bitmap with its top-left corner at
// (x, y), set bits in the foreground color and unset bits transparent.
// Source bits are MSB-first, 8 pixels per byte, each row padded to a
// whole byte.
func (d *Display) DrawBitmap(x, y int16, bitmap []byte, w, h int16, c Color) {
	byteWidth := (w + 7) / 8 // Bitmap scanline pad = whole byte
	var b byte

	d.startWrite()
	for j := int16(0); j < h; j, y = j+1, y+1 {
		for i := int16(0); i < w; i++ {
			if i&7 != 0 {
				b <<= 1
			} else {
				b = bitmap[j*byteWidth+i/8]
			}
			if b&0x80 != 0 {
				d.writePixel(x+i, y, c)
			}
		}
	}
	d.endWrite()
}

// DrawBitmapBG draws a packed 1-bit bitmap like DrawBitmap but paints
// unset bits in the background color instead of leaving them alone.
func (d *Display) DrawBitmapBG(x, y int16, bitmap []byte, w, h int16, c, bg Color) {
	byteWidth := (w + 7) / 8
	var b byte

	d.startWrite()
	for j := int16(0); j < h; j, y = j+1, y+1 {
		for i := int16(0); i < w; i++ {
			if i&7 != 0 {
				b <<= 1
			} else {
				b = bitmap[j*byteWidth+i/8]
			}
			if b&0x80 != 0 {
				d.writePixel(x+i, y, c)
			} else {
				d.writePixel(x+i, y, bg)
			}
		}
	}
	d.endWrite()
}

// DrawGrayscaleBitmap draws an 8-bit bitmap, one byte per pixel. The raw
// byte value is forwarded as the color token with no scaling; the driver
// must accept it as its native format, otherwise the caller pre-converts.
func (d *Display) DrawGrayscaleBitmap(x, y int16, bitmap []byte, w, h int16) {
	d.startWrite()
	for j := int16(0); j < h; j, y = j+1, y+1 {
		for i := int16(0); i < w; i++ {
			d.writePixel(x+i, y, Color(bitmap[j*w+i]))
		}
	}
	d.endWrite()
}

// DrawRGBBitmap draws a 16-bit RGB565 bitmap, one element per pixel, with
// no conversion.
func (d *Display) DrawRGBBitmap(x, y int16, bitmap []Color, w, h int16) {
	d.startWrite()
	for j := int16(0); j < h; j, y = j+1, y+1 {
		for i := int16(0); i < w; i++ {
			d.writePixel(x+i, y, bitmap[j*w+i])
		}
	}
	d.endWrite()
}

// DrawImage blits any image.Image with its top-left corner at (x, y),
// converting each pixel to an RGB565 token.
func (d *Display) DrawImage(x, y int16, img image.Image) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	d.startWrite()
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			c := FromColor(img.At(bounds.Min.X+i, bounds.Min.Y+j))
			d.writePixel(x+int16(i), y+int16(j), c)
		}
	}
	d.endWrite()
}
