package command

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/ironsheep/imgproc/internal/imaging"
)

var (
	// ErrUnknownCommand is returned by Build for names outside the catalog.
	ErrUnknownCommand = errors.New("invalid command")

	// ErrMissingArgument is returned by Build when too few arguments are
	// supplied or an integer argument does not parse.
	ErrMissingArgument = errors.New("inputs are invalid")
)

// entry describes how to build one named operation from positional
// arguments.
type entry struct {
	usage string
	arity int
	build func(args []string) (Command, error)
}

func keyed(f func(src, dst string) Command) entry {
	return entry{
		usage: "<source-key> <dest-key>",
		arity: 2,
		build: func(a []string) (Command, error) { return f(a[0], a[1]), nil },
	}
}

func transform(kind TransformKind) entry {
	return keyed(func(src, dst string) Command { return NewTransform(kind, src, dst) })
}

func brightness(darken bool) entry {
	return entry{
		usage: "<amount> <source-key> <dest-key>",
		arity: 3,
		build: func(a []string) (Command, error) {
			amount, err := strconv.Atoi(a[0])
			if err != nil {
				return nil, fmt.Errorf("amount %q is not an integer: %w: %w", a[0], ErrMissingArgument, imaging.ErrInvalidArgument)
			}
			return NewBrightness(amount, darken, a[1], a[2])
		},
	}
}

var catalog = map[string]entry{
	"red-component":       transform(TransformRed),
	"green-component":     transform(TransformGreen),
	"blue-component":      transform(TransformBlue),
	"intensity-component": transform(TransformIntensity),
	"luma-component":      transform(TransformLuma),
	"greyscale":           transform(TransformLuma),
	"sepia":               transform(TransformSepia),
	"value-component": {
		usage: "<source-key> <dest-key>",
		arity: 2,
		build: func(a []string) (Command, error) { return NewVisualize(VisualizeValue, a[0], a[1]) },
	},
	"horizontal-flip": keyed(func(src, dst string) Command { return NewFlip(Horizontal, src, dst) }),
	"vertical-flip":   keyed(func(src, dst string) Command { return NewFlip(Vertical, src, dst) }),
	"blur":            keyed(func(src, dst string) Command { return NewFilter(FilterBlur, src, dst) }),
	"sharpen":         keyed(func(src, dst string) Command { return NewFilter(FilterSharpen, src, dst) }),
	"brighten":        brightness(false),
	"darken":          brightness(true),
	"load": {
		usage: "<path> <dest-key>",
		arity: 2,
		build: func(a []string) (Command, error) { return NewLoad(a[0], a[1]), nil },
	},
	"save": {
		usage: "<path> <source-key>",
		arity: 2,
		build: func(a []string) (Command, error) { return NewSave(a[0], a[1]), nil },
	},
}

// Build constructs the named operation from positional arguments.
//
// Extra arguments are ignored. Unknown names fail with ErrUnknownCommand,
// short argument lists with ErrMissingArgument, and bad parameters with
// ErrInvalidArgument. An amount that is not an integer matches both
// ErrMissingArgument and ErrInvalidArgument.
func Build(name string, args []string) (Command, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}
	if len(args) < e.arity {
		return nil, fmt.Errorf("%s %s: %w", name, e.usage, ErrMissingArgument)
	}
	return e.build(args[:e.arity])
}

// Arity returns the number of positional arguments name takes.
func Arity(name string) (int, bool) {
	e, ok := catalog[name]
	return e.arity, ok
}

// Usage returns the argument synopsis of name.
func Usage(name string) (string, bool) {
	e, ok := catalog[name]
	return e.usage, ok
}

// Names lists every operation name in ascending order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
