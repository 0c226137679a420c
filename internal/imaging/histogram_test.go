package imaging

import "testing"

func TestHistogram_Totals(t *testing.T) {
	shapes := []struct {
		width, height, maxValue int
	}{
		{1, 1, 255},
		{5, 4, 255},
		{13, 7, 15},
		{3, 9, 1000},
		{2, 2, 0},
	}

	for _, sh := range shapes {
		img := newSeededImage(t, sh.width, sh.height, 3, sh.maxValue)
		h, err := Histogram(img)
		if err != nil {
			t.Fatalf("Histogram failed: %v", err)
		}

		for name, bins := range map[string][]int{
			"red": h.Red, "green": h.Green, "blue": h.Blue, "intensity": h.Intensity,
		} {
			if len(bins) != sh.maxValue+1 {
				t.Errorf("%dx%d max %d %s: %d bins, want %d", sh.width, sh.height, sh.maxValue, name, len(bins), sh.maxValue+1)
			}
			total := 0
			for _, n := range bins {
				total += n
			}
			if total != sh.width*sh.height {
				t.Errorf("%dx%d max %d %s: total %d, want %d", sh.width, sh.height, sh.maxValue, name, total, sh.width*sh.height)
			}
		}
	}
}

func TestHistogram_Bins(t *testing.T) {
	img, _ := New([][][]int{
		{{0, 1, 2}, {3, 3, 3}},
		{{0, 0, 1}, {3, 2, 3}},
	}, 3, 3)

	h, err := Histogram(img)
	if err != nil {
		t.Fatalf("Histogram failed: %v", err)
	}

	check := func(name string, got, want []int) {
		t.Helper()
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: got %v, want %v", name, got, want)
				return
			}
		}
	}
	check("red", h.Red, []int{2, 0, 0, 2})
	check("green", h.Green, []int{1, 1, 1, 1})
	check("blue", h.Blue, []int{0, 1, 1, 2})
	// intensities: 1, 3, 0, 2 (8/3 truncates to 2)
	check("intensity", h.Intensity, []int{1, 1, 1, 1})
}
