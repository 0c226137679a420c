package imaging

import "fmt"

// Kernel is a convolution kernel indexed [kx][ky]. Both dimensions must be
// odd so the kernel has a centre cell.
type Kernel [][]float64

// BlurKernel returns a 3x3 Gaussian-like blur whose weights sum to 1.
func BlurKernel() Kernel {
	return Kernel{
		{1 / 16.0, 1 / 8.0, 1 / 16.0},
		{1 / 8.0, 1 / 4.0, 1 / 8.0},
		{1 / 16.0, 1 / 8.0, 1 / 16.0},
	}
}

// SharpenKernel returns a 5x5 sharpen kernel with centre weight 1.
func SharpenKernel() Kernel {
	return Kernel{
		{-1 / 8.0, -1 / 8.0, -1 / 8.0, -1 / 8.0, -1 / 8.0},
		{-1 / 8.0, 1 / 4.0, 1 / 4.0, 1 / 4.0, -1 / 8.0},
		{-1 / 8.0, 1 / 4.0, 1.0, 1 / 4.0, -1 / 8.0},
		{-1 / 8.0, 1 / 4.0, 1 / 4.0, 1 / 4.0, -1 / 8.0},
		{-1 / 8.0, -1 / 8.0, -1 / 8.0, -1 / 8.0, -1 / 8.0},
	}
}

// Validate reports ErrInvalidKernel unless k is non-empty, rectangular and
// odd along both axes.
func (k Kernel) Validate() error {
	if len(k) == 0 || len(k[0]) == 0 {
		return fmt.Errorf("empty kernel: %w", ErrInvalidKernel)
	}
	if len(k)%2 == 0 || len(k[0])%2 == 0 {
		return fmt.Errorf("kernel is %dx%d, both dimensions must be odd: %w", len(k), len(k[0]), ErrInvalidKernel)
	}
	for i, col := range k {
		if len(col) != len(k[0]) {
			return fmt.Errorf("kernel column %d has length %d, want %d: %w", i, len(col), len(k[0]), ErrInvalidKernel)
		}
	}
	return nil
}

// Convolve filters the first three components of img with k in place.
//
// The kernel is centred on each output pixel and every cell whose source
// coordinate falls inside the image contributes kernel[kx][ky] times the
// source value; cells outside the image are skipped, with no padding or
// reflection. The sum is truncated toward zero and clamped to
// [0, MaxValue]. Sums are always taken over an untouched copy of the input,
// so pixels written earlier in the pass never feed later ones.
//
// Returns ErrInvalidKernel or ErrUnsupportedImageType before any mutation.
func Convolve(img *Image, k Kernel) error {
	if err := k.Validate(); err != nil {
		return err
	}
	if err := img.RequireRGB(); err != nil {
		return err
	}

	src := img.Copy()
	halfX, halfY := len(k)/2, len(k[0])/2

	for x := 0; x < img.width; x++ {
		for y := 0; y < img.height; y++ {
			for c := 0; c < 3; c++ {
				var sum float64
				for kx := range k {
					sx := x + kx - halfX
					if sx < 0 || sx >= src.width {
						continue
					}
					for ky, w := range k[kx] {
						sy := y + ky - halfY
						if sy < 0 || sy >= src.height {
							continue
						}
						sum += w * float64(src.get(sx, sy, c))
					}
				}
				img.put(x, y, c, int(sum))
			}
		}
	}
	return nil
}
