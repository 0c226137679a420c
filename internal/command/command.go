package command

import (
	"fmt"

	"github.com/ironsheep/imgproc/internal/imaging"
)

// Command is one keyed operation against a store.
type Command interface {
	// Apply runs the operation and returns the resulting image.
	Apply(store *imaging.Store) (*imaging.Image, error)

	// Destination returns the key (or path, for Save) the result is
	// written to.
	Destination() string
}

// Keys holds the source and destination of a pixel operation.
type Keys struct {
	Source string
	Dest   string
}

// Destination returns the destination key.
func (k Keys) Destination() string { return k.Dest }

// run performs the copy, validate, place, mutate sequence shared by every
// pixel operation. check must report every failure mutate could; mutate is
// then expected to succeed.
func (k Keys) run(store *imaging.Store, check, mutate func(*imaging.Image) error) (*imaging.Image, error) {
	src, err := store.Get(k.Source)
	if err != nil {
		return nil, err
	}
	img := src.Copy()

	if err := check(img); err != nil {
		return nil, err
	}

	prev, prevErr := store.Get(k.Dest)
	store.Set(img, k.Dest)
	if err := mutate(img); err != nil {
		// check should have caught this; put back whatever the
		// destination held instead of exposing a half-written image.
		if prevErr == nil {
			store.Set(prev, k.Dest)
		} else {
			store.Remove(k.Dest)
		}
		return nil, fmt.Errorf("applying to %q: %w", k.Dest, err)
	}
	return img, nil
}

var (
	_ Command = (*Transform)(nil)
	_ Command = (*Visualize)(nil)
	_ Command = (*Filter)(nil)
	_ Command = (*Flip)(nil)
	_ Command = (*Brightness)(nil)
	_ Command = (*Load)(nil)
	_ Command = (*Save)(nil)
)
