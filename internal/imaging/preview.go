package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"
)

// PreviewOptions controls how an image is rendered for display.
type PreviewOptions struct {
	// Scale resizes the rendering; values <= 0 or 1 keep the original size.
	Scale float64

	// GridSpacing draws a coordinate grid every GridSpacing pixels of the
	// original image when positive.
	GridSpacing int

	// ShowCoordinates labels grid intersections.
	ShowCoordinates bool

	// GridColor is "#RRGGBB"; invalid or empty values fall back to red.
	GridColor string
}

// PreviewResult contains a rendered image encoded as base64 PNG.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	GridSpacing int    `json:"grid_spacing,omitempty"`
}

// Preview renders img as an 8-bit PNG for display.
func Preview(img *Image, opts PreviewOptions) (*PreviewResult, error) {
	rendered, err := ToNRGBA(img)
	if err != nil {
		return nil, err
	}

	if opts.GridSpacing > 0 {
		gridColor, err := parseGridColor(opts.GridColor)
		if err != nil {
			gridColor = defaultGridColor
		}
		drawGrid(rendered, opts.GridSpacing, opts.ShowCoordinates, gridColor)
	}

	if opts.Scale > 0 && opts.Scale != 1.0 {
		newWidth := max(1, int(float64(img.width)*opts.Scale))
		newHeight := max(1, int(float64(img.height)*opts.Scale))
		rendered = imaging.Resize(rendered, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rendered); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       rendered.Bounds().Dx(),
		Height:      rendered.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		GridSpacing: opts.GridSpacing,
	}, nil
}
