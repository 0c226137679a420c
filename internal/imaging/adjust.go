package imaging

// FlipHorizontal mirrors img left to right in place. Column x is swapped
// with column width-1-x; for odd widths the centre column stays put. All
// components of a pixel move together.
func FlipHorizontal(img *Image) error {
	if err := img.RequireRGB(); err != nil {
		return err
	}

	tmp := make([]int, img.components)
	for x := 0; x < img.width/2; x++ {
		for y := 0; y < img.height; y++ {
			img.swap(x, y, img.width-1-x, y, tmp)
		}
	}
	return nil
}

// FlipVertical mirrors img top to bottom in place.
func FlipVertical(img *Image) error {
	if err := img.RequireRGB(); err != nil {
		return err
	}

	tmp := make([]int, img.components)
	for x := 0; x < img.width; x++ {
		for y := 0; y < img.height/2; y++ {
			img.swap(x, y, x, img.height-1-y, tmp)
		}
	}
	return nil
}

// swap exchanges two pixels through the one-pixel buffer tmp.
func (m *Image) swap(x1, y1, x2, y2 int, tmp []int) {
	a := m.offset(x1, y1, 0)
	b := m.offset(x2, y2, 0)
	copy(tmp, m.pix[a:a+m.components])
	copy(m.pix[a:a+m.components], m.pix[b:b+m.components])
	copy(m.pix[b:b+m.components], tmp)
}

// Brighten adds delta to the first three components of every pixel,
// clamping each result to [0, MaxValue]. A negative delta darkens.
func Brighten(img *Image, delta int) error {
	if err := img.RequireRGB(); err != nil {
		return err
	}

	for x := 0; x < img.width; x++ {
		for y := 0; y < img.height; y++ {
			for c := 0; c < 3; c++ {
				img.put(x, y, c, img.get(x, y, c)+delta)
			}
		}
	}
	return nil
}
