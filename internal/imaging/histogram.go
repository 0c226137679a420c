package imaging

// HistogramResult holds per-value frequency counts of an image.
//
// Each slice has MaxValue()+1 bins and sums to width*height.
type HistogramResult struct {
	Red       []int `json:"red"`
	Green     []int `json:"green"`
	Blue      []int `json:"blue"`
	Intensity []int `json:"intensity"` // bins of trunc((r+g+b)/3)
}

// Histogram counts the values of the first three components and of the
// average intensity of every pixel.
func Histogram(img *Image) (*HistogramResult, error) {
	if err := img.RequireRGB(); err != nil {
		return nil, err
	}

	bins := img.maxValue + 1
	h := &HistogramResult{
		Red:       make([]int, bins),
		Green:     make([]int, bins),
		Blue:      make([]int, bins),
		Intensity: make([]int, bins),
	}
	for x := 0; x < img.width; x++ {
		for y := 0; y < img.height; y++ {
			r, g, b := img.get(x, y, 0), img.get(x, y, 1), img.get(x, y, 2)
			h.Red[r]++
			h.Green[g]++
			h.Blue[b]++
			h.Intensity[(r+g+b)/3]++
		}
	}
	return h, nil
}
