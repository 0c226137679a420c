package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// ToNRGBA renders img as an opaque 8-bit image.
//
// Each of the first three components is rescaled to the 0-255 range as
// trunc(v / (MaxValue/255)). An image with MaxValue 0 renders black.
// Returns ErrUnsupportedImageType for images with fewer than three components.
func ToNRGBA(img *Image) (*image.NRGBA, error) {
	if err := img.RequireRGB(); err != nil {
		return nil, err
	}

	out := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			i := out.PixOffset(x, y)
			out.Pix[i+0] = img.to8Bit(img.get(x, y, 0))
			out.Pix[i+1] = img.to8Bit(img.get(x, y, 1))
			out.Pix[i+2] = img.to8Bit(img.get(x, y, 2))
			out.Pix[i+3] = 0xff
		}
	}
	return out, nil
}

// FromImage converts any decoded image into a three-component Image with a
// ceiling of 255. Alpha is discarded.
func FromImage(src image.Image) *Image {
	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()

	img := NewBlank(b.Dx(), b.Dy(), 3, 255)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := nrgba.PixOffset(x, y)
			img.put(x, y, 0, int(nrgba.Pix[i+0]))
			img.put(x, y, 1, int(nrgba.Pix[i+1]))
			img.put(x, y, 2, int(nrgba.Pix[i+2]))
		}
	}
	return img
}

func (m *Image) to8Bit(v int) uint8 {
	if m.maxValue == 0 {
		return 0
	}
	scaled := int(float64(v) / (float64(m.maxValue) / 255.0))
	if scaled > 255 {
		scaled = 255
	}
	return uint8(scaled)
}
