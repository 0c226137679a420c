package imaging

// Matrix is a 3x3 linear color transform. Row i produces output channel i
// from the source (r, g, b).
type Matrix [3][3]float64

// Predefined color transforms.
var (
	// RedMatrix copies the red channel into all three channels.
	RedMatrix = Matrix{{1, 0, 0}, {1, 0, 0}, {1, 0, 0}}

	// GreenMatrix copies the green channel into all three channels.
	GreenMatrix = Matrix{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}}

	// BlueMatrix copies the blue channel into all three channels.
	BlueMatrix = Matrix{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}

	// LumaMatrix produces Rec. 709 luma greyscale.
	LumaMatrix = Matrix{
		{0.2126, 0.7152, 0.0722},
		{0.2126, 0.7152, 0.0722},
		{0.2126, 0.7152, 0.0722},
	}

	// IntensityMatrix produces the average of the three channels.
	IntensityMatrix = Matrix{
		{1 / 3.0, 1 / 3.0, 1 / 3.0},
		{1 / 3.0, 1 / 3.0, 1 / 3.0},
		{1 / 3.0, 1 / 3.0, 1 / 3.0},
	}

	// SepiaMatrix applies a sepia tone.
	SepiaMatrix = Matrix{
		{0.393, 0.769, 0.189},
		{0.349, 0.686, 0.168},
		{0.272, 0.534, 0.131},
	}
)

// Transform applies m to every pixel of img in place.
//
// Each output channel is the dot product of a matrix row with the source
// (r, g, b), truncated toward zero and then clamped to [0, MaxValue]. All
// three outputs are computed from the same source snapshot. Components past
// the third are left unchanged.
//
// Returns ErrUnsupportedImageType, without touching img, if img has fewer
// than three components.
func Transform(img *Image, m Matrix) error {
	if err := img.RequireRGB(); err != nil {
		return err
	}

	for x := 0; x < img.width; x++ {
		for y := 0; y < img.height; y++ {
			r := float64(img.get(x, y, 0))
			g := float64(img.get(x, y, 1))
			b := float64(img.get(x, y, 2))
			for c := 0; c < 3; c++ {
				row := m[c]
				img.put(x, y, c, int(row[0]*r+row[1]*g+row[2]*b))
			}
		}
	}
	return nil
}

// VisualizeValue sets all three channels of every pixel to max(r, g, b).
func VisualizeValue(img *Image) error {
	if err := img.RequireRGB(); err != nil {
		return err
	}

	for x := 0; x < img.width; x++ {
		for y := 0; y < img.height; y++ {
			v := max(img.get(x, y, 0), img.get(x, y, 1), img.get(x, y, 2))
			img.put(x, y, 0, v)
			img.put(x, y, 1, v)
			img.put(x, y, 2, v)
		}
	}
	return nil
}
