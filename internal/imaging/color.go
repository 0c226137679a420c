package imaging

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult describes one pixel in several representations.
//
// Components holds the raw stored values on the image's own scale; the other
// fields use the 8-bit rendering produced by ToNRGBA.
type ColorResult struct {
	X          int      `json:"x"`
	Y          int      `json:"y"`
	Components []int    `json:"components"`
	MaxValue   int      `json:"max_value"`
	Hex        string   `json:"hex"` // "#RRGGBB"
	RGB        RGBColor `json:"rgb"`
	HSL        HSLColor `json:"hsl"`
}

// SampleColor reports the pixel at (x, y).
//
// Returns ErrOutOfRange for coordinates outside the image and
// ErrUnsupportedImageType for images with fewer than three components.
func SampleColor(img *Image, x, y int) (*ColorResult, error) {
	if err := img.RequireRGB(); err != nil {
		return nil, err
	}
	if !img.inBounds(x, y, 0) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside %dx%d image: %w", x, y, img.width, img.height, ErrOutOfRange)
	}

	i := img.offset(x, y, 0)
	comps := append([]int(nil), img.pix[i:i+img.components]...)
	r8, g8, b8 := img.to8Bit(comps[0]), img.to8Bit(comps[1]), img.to8Bit(comps[2])

	c := colorful.Color{R: float64(r8) / 255.0, G: float64(g8) / 255.0, B: float64(b8) / 255.0}
	h, s, l := c.Hsl()

	return &ColorResult{
		X:          x,
		Y:          y,
		Components: comps,
		MaxValue:   img.maxValue,
		Hex:        strings.ToUpper(c.Hex()),
		RGB:        RGBColor{R: r8, G: g8, B: b8},
		HSL:        HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}, nil
}

// LabeledPoint is a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColorResult pairs a sample with the label it was requested under.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains samples in request order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples every point, failing on the first bad one
// without returning partial results.
func SampleColorsMulti(img *Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{Label: p.Label, Color: *color})
	}

	return &MultiColorResult{Samples: results}, nil
}
