package imaging

import (
	"fmt"
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// defaultGridColor is used when a grid color cannot be parsed.
var defaultGridColor = color.NRGBA{255, 0, 0, 255}

// drawGrid draws lines every spacing pixels, optionally labelled with their
// coordinates.
func drawGrid(img *image.NRGBA, spacing int, showCoordinates bool, lineColor color.NRGBA) {
	b := img.Bounds()
	for x := spacing; x < b.Dx(); x += spacing {
		for y := 0; y < b.Dy(); y++ {
			img.Set(x, y, lineColor)
		}
	}
	for y := spacing; y < b.Dy(); y += spacing {
		for x := 0; x < b.Dx(); x++ {
			img.Set(x, y, lineColor)
		}
	}

	if !showCoordinates {
		return
	}
	fg := color.NRGBA{255, 255, 255, 255}
	bg := color.NRGBA{0, 0, 0, 255}
	for y := spacing; y < b.Dy(); y += spacing {
		for x := spacing; x < b.Dx(); x += spacing {
			drawLabel(img, x+2, y+2, fmt.Sprintf("%d,%d", x, y), fg, bg)
		}
	}
}

// parseGridColor parses "#RRGGBB".
func parseGridColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("grid color %q: %w", hex, ErrInvalidArgument)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// drawLabel draws a simple text label at the given position
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	// Simple 3x5 pixel font for digits and comma
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
	}

	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	// Draw background
	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			px, py := x+dx, y+dy
			if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
				img.Set(px, py, bg)
			}
		}
	}

	// Draw text
	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					px, py := cx+col, y+row
					if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
						img.Set(px, py, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
