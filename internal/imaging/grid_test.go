package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func decodePreview(t *testing.T, result *PreviewResult) image.Image {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	return img
}

func rgb8(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestPreview(t *testing.T) {
	img := newUniformImage(t, 40, 30, 255, 128)

	result, err := Preview(img, PreviewOptions{Scale: 1})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if result.Width != 40 || result.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	decoded := decodePreview(t, result)
	if r, g, b := rgb8(decoded.At(20, 15)); r != 128 || g != 128 || b != 128 {
		t.Errorf("pixel: got (%d,%d,%d), want (128,128,128)", r, g, b)
	}
}

func TestPreview_Scale(t *testing.T) {
	img := newUniformImage(t, 40, 30, 255, 200)

	result, err := Preview(img, PreviewOptions{Scale: 0.5})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if result.Width != 20 || result.Height != 15 {
		t.Errorf("dimensions: got %dx%d, want 20x15", result.Width, result.Height)
	}
}

func TestPreview_GridLines(t *testing.T) {
	img := newUniformImage(t, 100, 100, 255, 0)

	result, err := Preview(img, PreviewOptions{GridSpacing: 25, GridColor: "#00FF00"})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if result.GridSpacing != 25 {
		t.Errorf("GridSpacing: got %d, want 25", result.GridSpacing)
	}

	decoded := decodePreview(t, result)
	if r, g, b := rgb8(decoded.At(25, 50)); r != 0 || g != 255 || b != 0 {
		t.Errorf("grid line at (25,50): got (%d,%d,%d), want (0,255,0)", r, g, b)
	}
	if r, g, b := rgb8(decoded.At(15, 15)); r != 0 || g != 0 || b != 0 {
		t.Errorf("background at (15,15): got (%d,%d,%d), want (0,0,0)", r, g, b)
	}
}

func TestPreview_BadGridColorFallsBack(t *testing.T) {
	img := newUniformImage(t, 50, 50, 255, 0)

	result, err := Preview(img, PreviewOptions{GridSpacing: 10, GridColor: "not-a-color"})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	decoded := decodePreview(t, result)
	if r, g, b := rgb8(decoded.At(10, 5)); r != 255 || g != 0 || b != 0 {
		t.Errorf("grid line: got (%d,%d,%d), want default red", r, g, b)
	}
}

func TestPreview_Coordinates(t *testing.T) {
	img := newUniformImage(t, 100, 100, 255, 0)

	result, err := Preview(img, PreviewOptions{GridSpacing: 50, ShowCoordinates: true, GridColor: "#FF0000"})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	decoded := decodePreview(t, result)

	// The label for "50,50" starts at (52,52); its first glyph row is "111".
	if r, g, b := rgb8(decoded.At(52, 52)); r != 255 || g != 255 || b != 255 {
		t.Errorf("label pixel: got (%d,%d,%d), want white", r, g, b)
	}
}

func TestParseGridColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FF0000", color.NRGBA{255, 0, 0, 255}, false},
		{"#00ff80", color.NRGBA{0, 255, 128, 255}, false},
		{"#FFFFFF", color.NRGBA{255, 255, 255, 255}, false},
		{"", color.NRGBA{}, true},
		{"#GGGGGG", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseGridColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error: got %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
