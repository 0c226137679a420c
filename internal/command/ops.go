package command

import (
	"fmt"

	"github.com/ironsheep/imgproc/internal/imaging"
)

// TransformKind selects a predefined color matrix. The zero value is
// unselected and rejected by Apply.
type TransformKind int

const (
	_ TransformKind = iota
	TransformRed
	TransformGreen
	TransformBlue
	TransformLuma
	TransformIntensity
	TransformSepia
)

var transformMatrices = map[TransformKind]imaging.Matrix{
	TransformRed:       imaging.RedMatrix,
	TransformGreen:     imaging.GreenMatrix,
	TransformBlue:      imaging.BlueMatrix,
	TransformLuma:      imaging.LumaMatrix,
	TransformIntensity: imaging.IntensityMatrix,
	TransformSepia:     imaging.SepiaMatrix,
}

func (k TransformKind) String() string {
	switch k {
	case TransformRed:
		return "red"
	case TransformGreen:
		return "green"
	case TransformBlue:
		return "blue"
	case TransformLuma:
		return "luma"
	case TransformIntensity:
		return "intensity"
	case TransformSepia:
		return "sepia"
	}
	return fmt.Sprintf("TransformKind(%d)", int(k))
}

// Transform applies a predefined color matrix.
type Transform struct {
	Keys
	Kind TransformKind
}

// NewTransform returns a Transform from src to dst.
func NewTransform(kind TransformKind, src, dst string) *Transform {
	return &Transform{Keys: Keys{Source: src, Dest: dst}, Kind: kind}
}

// Apply implements Command.
func (t *Transform) Apply(store *imaging.Store) (*imaging.Image, error) {
	m, ok := transformMatrices[t.Kind]
	check := func(img *imaging.Image) error {
		if !ok {
			return fmt.Errorf("transformation %v: %w", t.Kind, imaging.ErrInvalidArgument)
		}
		return img.RequireRGB()
	}
	return t.run(store, check, func(img *imaging.Image) error {
		return imaging.Transform(img, m)
	})
}

// VisualizeValue is the only supported Visualize mode.
const VisualizeValue = "value"

// Visualize replaces every channel with a combination of the pixel's
// channels that is not expressible as a matrix.
type Visualize struct {
	Keys
	Mode string
}

// NewVisualize returns a Visualize from src to dst, rejecting unsupported
// modes with ErrInvalidArgument.
func NewVisualize(mode, src, dst string) (*Visualize, error) {
	if mode != VisualizeValue {
		return nil, fmt.Errorf("visualization %q: %w", mode, imaging.ErrInvalidArgument)
	}
	return &Visualize{Keys: Keys{Source: src, Dest: dst}, Mode: mode}, nil
}

// Apply implements Command.
func (v *Visualize) Apply(store *imaging.Store) (*imaging.Image, error) {
	check := func(img *imaging.Image) error {
		if v.Mode != VisualizeValue {
			return fmt.Errorf("visualization %q: %w", v.Mode, imaging.ErrInvalidArgument)
		}
		return img.RequireRGB()
	}
	return v.run(store, check, imaging.VisualizeValue)
}

// FilterKind selects a predefined convolution kernel.
type FilterKind int

const (
	_ FilterKind = iota
	FilterBlur
	FilterSharpen
)

func (k FilterKind) String() string {
	switch k {
	case FilterBlur:
		return "blur"
	case FilterSharpen:
		return "sharpen"
	}
	return fmt.Sprintf("FilterKind(%d)", int(k))
}

// Kernel returns a fresh copy of the kernel for k.
func (k FilterKind) Kernel() (imaging.Kernel, error) {
	switch k {
	case FilterBlur:
		return imaging.BlurKernel(), nil
	case FilterSharpen:
		return imaging.SharpenKernel(), nil
	}
	return nil, fmt.Errorf("filter %v: %w", k, imaging.ErrInvalidArgument)
}

// Filter convolves an image with a predefined kernel.
type Filter struct {
	Keys
	Kind FilterKind
}

// NewFilter returns a Filter from src to dst.
func NewFilter(kind FilterKind, src, dst string) *Filter {
	return &Filter{Keys: Keys{Source: src, Dest: dst}, Kind: kind}
}

// Apply implements Command.
func (f *Filter) Apply(store *imaging.Store) (*imaging.Image, error) {
	k, kerr := f.Kind.Kernel()
	check := func(img *imaging.Image) error {
		if kerr != nil {
			return kerr
		}
		if err := k.Validate(); err != nil {
			return err
		}
		return img.RequireRGB()
	}
	return f.run(store, check, func(img *imaging.Image) error {
		return imaging.Convolve(img, k)
	})
}

// Axis selects the direction of a Flip.
type Axis int

const (
	_ Axis = iota
	Horizontal
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Flip mirrors an image along one axis.
type Flip struct {
	Keys
	Axis Axis
}

// NewFlip returns a Flip from src to dst.
func NewFlip(axis Axis, src, dst string) *Flip {
	return &Flip{Keys: Keys{Source: src, Dest: dst}, Axis: axis}
}

// Apply implements Command.
func (f *Flip) Apply(store *imaging.Store) (*imaging.Image, error) {
	var flip func(*imaging.Image) error
	switch f.Axis {
	case Horizontal:
		flip = imaging.FlipHorizontal
	case Vertical:
		flip = imaging.FlipVertical
	}
	check := func(img *imaging.Image) error {
		if flip == nil {
			return fmt.Errorf("flip axis %v: %w", f.Axis, imaging.ErrInvalidArgument)
		}
		return img.RequireRGB()
	}
	return f.run(store, check, flip)
}

// Brightness shifts the first three components by a fixed amount.
type Brightness struct {
	Keys
	Amount int  // non-negative magnitude
	Darken bool // subtract Amount instead of adding it
}

// NewBrightness returns a Brightness from src to dst. A negative amount
// fails with ErrInvalidArgument.
func NewBrightness(amount int, darken bool, src, dst string) (*Brightness, error) {
	if amount < 0 {
		return nil, fmt.Errorf("brightness change %d is negative: %w", amount, imaging.ErrInvalidArgument)
	}
	return &Brightness{Keys: Keys{Source: src, Dest: dst}, Amount: amount, Darken: darken}, nil
}

// Apply implements Command.
func (b *Brightness) Apply(store *imaging.Store) (*imaging.Image, error) {
	delta := b.Amount
	if b.Darken {
		delta = -delta
	}
	check := func(img *imaging.Image) error {
		if b.Amount < 0 {
			return fmt.Errorf("brightness change %d is negative: %w", b.Amount, imaging.ErrInvalidArgument)
		}
		return img.RequireRGB()
	}
	return b.run(store, check, func(img *imaging.Image) error {
		return imaging.Brighten(img, delta)
	})
}
