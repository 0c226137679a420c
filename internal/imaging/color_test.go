package imaging

import (
	"errors"
	"testing"
)

func TestSampleColor(t *testing.T) {
	img, _ := New([][][]int{{{255, 128, 64}}}, 255, 3)

	result, err := SampleColor(img, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}
	if len(result.Components) != 3 || result.Components[1] != 128 {
		t.Errorf("Components: got %v, want [255 128 64]", result.Components)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		rgb     []int
		wantHex string
		wantHue int
		wantL   int
	}{
		{"pure red", []int{255, 0, 0}, "#FF0000", 0, 50},
		{"pure green", []int{0, 255, 0}, "#00FF00", 120, 50},
		{"pure blue", []int{0, 0, 255}, "#0000FF", 240, 50},
		{"white", []int{255, 255, 255}, "#FFFFFF", 0, 100},
		{"black", []int{0, 0, 0}, "#000000", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, _ := New([][][]int{{tt.rgb}}, 255, 3)
			result, err := SampleColor(img, 0, 0)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL.H != tt.wantHue {
				t.Errorf("Hue: got %d, want %d", result.HSL.H, tt.wantHue)
			}
			if result.HSL.L != tt.wantL {
				t.Errorf("Lightness: got %d, want %d", result.HSL.L, tt.wantL)
			}
		})
	}
}

func TestSampleColor_ScaledCeiling(t *testing.T) {
	img, _ := New([][][]int{{{510, 0, 510}}}, 510, 3)
	result, err := SampleColor(img, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Hex != "#FF00FF" {
		t.Errorf("Hex: got %s, want #FF00FF", result.Hex)
	}
	if result.MaxValue != 510 {
		t.Errorf("MaxValue: got %d, want 510", result.MaxValue)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := newUniformImage(t, 10, 10, 255, 0)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 5},
		{"negative y", 5, -1},
		{"x too large", 10, 5},
		{"y too large", 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("got %v, want ErrOutOfRange", err)
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img, _ := New([][][]int{
		{{255, 0, 0}},
		{{0, 0, 255}},
	}, 255, 3)

	result, err := SampleColorsMulti(img, []LabeledPoint{
		{X: 1, Y: 0, Label: "right"},
		{X: 0, Y: 0},
	})
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}
	if len(result.Samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(result.Samples))
	}
	if result.Samples[0].Label != "right" || result.Samples[0].Color.Hex != "#0000FF" {
		t.Errorf("first sample: got %+v", result.Samples[0])
	}
	if result.Samples[1].Color.Hex != "#FF0000" {
		t.Errorf("second sample: got %s, want #FF0000", result.Samples[1].Color.Hex)
	}

	if _, err := SampleColorsMulti(img, []LabeledPoint{{X: 0, Y: 0}, {X: 5, Y: 5}}); err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
}
