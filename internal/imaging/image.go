package imaging

import "fmt"

// Image is a pixel buffer with a fixed shape and mutable component values.
//
// Components are addressed as (x, y, c) with (0,0) at the top-left corner.
// Every stored value lies in [0, MaxValue()]; writes outside that range are
// clamped rather than rejected.
//
// An Image is not safe for concurrent mutation.
type Image struct {
	width      int
	height     int
	components int
	maxValue   int
	pix        []int
}

// New builds an Image from a buffer indexed [x][y][c].
//
// The buffer must be non-empty and rectangular, every innermost slice must
// hold exactly components values, and every value must lie in [0, maxValue].
// The buffer is copied; the caller keeps ownership of pixels.
func New(pixels [][][]int, maxValue, components int) (*Image, error) {
	if len(pixels) == 0 || len(pixels[0]) == 0 {
		return nil, fmt.Errorf("empty pixel buffer: %w", ErrInvalidArgument)
	}
	if components < 1 {
		return nil, fmt.Errorf("component count %d: %w", components, ErrInvalidArgument)
	}
	if maxValue < 0 {
		return nil, fmt.Errorf("max value %d: %w", maxValue, ErrInvalidArgument)
	}

	img := NewBlank(len(pixels), len(pixels[0]), components, maxValue)
	for x, col := range pixels {
		if len(col) != img.height {
			return nil, fmt.Errorf("column %d has height %d, want %d: %w", x, len(col), img.height, ErrInvalidArgument)
		}
		for y, px := range col {
			if len(px) != components {
				return nil, fmt.Errorf("pixel (%d,%d) has %d components, want %d: %w",
					x, y, len(px), components, ErrInvalidArgument)
			}
			for c, v := range px {
				if v < 0 || v > maxValue {
					return nil, fmt.Errorf("component (%d,%d,%d)=%d outside [0,%d]: %w",
						x, y, c, v, maxValue, ErrInvalidArgument)
				}
				img.pix[img.offset(x, y, c)] = v
			}
		}
	}
	return img, nil
}

// NewBlank returns a zero-filled image. It panics if width, height or
// components is not positive, mirroring make for negative lengths.
func NewBlank(width, height, components, maxValue int) *Image {
	if width <= 0 || height <= 0 || components <= 0 {
		panic(fmt.Sprintf("imaging: invalid image shape %dx%dx%d", width, height, components))
	}
	return &Image{
		width:      width,
		height:     height,
		components: components,
		maxValue:   maxValue,
		pix:        make([]int, width*height*components),
	}
}

// Width returns the number of columns.
func (m *Image) Width() int { return m.width }

// Height returns the number of rows.
func (m *Image) Height() int { return m.height }

// Components returns the number of components per pixel.
func (m *Image) Components() int { return m.components }

// MaxValue returns the inclusive ceiling shared by every component.
func (m *Image) MaxValue() int { return m.maxValue }

// Copy returns a deep duplicate sharing no storage with m.
func (m *Image) Copy() *Image {
	out := *m
	out.pix = make([]int, len(m.pix))
	copy(out.pix, m.pix)
	return &out
}

// At returns the value of component c at (x, y).
func (m *Image) At(x, y, c int) (int, error) {
	if !m.inBounds(x, y, c) {
		return 0, fmt.Errorf("component (%d,%d,%d) of %dx%dx%d image: %w",
			x, y, c, m.width, m.height, m.components, ErrOutOfRange)
	}
	return m.pix[m.offset(x, y, c)], nil
}

// Set stores v, clamped into [0, MaxValue()], as component c at (x, y).
func (m *Image) Set(x, y, c, v int) error {
	if !m.inBounds(x, y, c) {
		return fmt.Errorf("component (%d,%d,%d) of %dx%dx%d image: %w",
			x, y, c, m.width, m.height, m.components, ErrOutOfRange)
	}
	m.pix[m.offset(x, y, c)] = m.clamp(v)
	return nil
}

// Pixels returns a copy of the buffer indexed [x][y][c].
func (m *Image) Pixels() [][][]int {
	out := make([][][]int, m.width)
	for x := range out {
		out[x] = make([][]int, m.height)
		for y := range out[x] {
			i := m.offset(x, y, 0)
			out[x][y] = append([]int(nil), m.pix[i:i+m.components]...)
		}
	}
	return out
}

// Equal reports whether both images have the same shape and values.
func (m *Image) Equal(o *Image) bool {
	if m.width != o.width || m.height != o.height ||
		m.components != o.components || m.maxValue != o.maxValue {
		return false
	}
	for i, v := range m.pix {
		if o.pix[i] != v {
			return false
		}
	}
	return true
}

// RequireRGB returns ErrUnsupportedImageType unless the image carries at
// least three components.
func (m *Image) RequireRGB() error {
	if m.components < 3 {
		return fmt.Errorf("image has %d components, need at least 3: %w", m.components, ErrUnsupportedImageType)
	}
	return nil
}

func (m *Image) inBounds(x, y, c int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height && c >= 0 && c < m.components
}

func (m *Image) offset(x, y, c int) int {
	return (x*m.height+y)*m.components + c
}

// get and put skip bounds checks for the engine's inner loops.
func (m *Image) get(x, y, c int) int { return m.pix[m.offset(x, y, c)] }

func (m *Image) put(x, y, c, v int) { m.pix[m.offset(x, y, c)] = m.clamp(v) }

func (m *Image) clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > m.maxValue {
		return m.maxValue
	}
	return v
}
