package command

import (
	"github.com/ironsheep/imgproc/internal/codec"
	"github.com/ironsheep/imgproc/internal/imaging"
)

// Load reads a file and stores the image under Key.
type Load struct {
	Path string
	Key  string
}

// NewLoad returns a Load of path into key.
func NewLoad(path, key string) *Load {
	return &Load{Path: path, Key: key}
}

// Destination returns the key the image is stored under.
func (l *Load) Destination() string { return l.Key }

// Apply implements Command. The store is only modified on success.
func (l *Load) Apply(store *imaging.Store) (*imaging.Image, error) {
	c, err := codec.ForPath(l.Path)
	if err != nil {
		return nil, err
	}
	img, err := c.Read(l.Path)
	if err != nil {
		return nil, err
	}
	store.Set(img, l.Key)
	return img, nil
}

// Save writes the image stored under Key to Path.
type Save struct {
	Path string
	Key  string
}

// NewSave returns a Save of key to path.
func NewSave(path, key string) *Save {
	return &Save{Path: path, Key: key}
}

// Destination returns the file path written to.
func (s *Save) Destination() string { return s.Path }

// Apply implements Command. It returns the saved image and never modifies
// the store.
func (s *Save) Apply(store *imaging.Store) (*imaging.Image, error) {
	c, err := codec.ForPath(s.Path)
	if err != nil {
		return nil, err
	}
	img, err := store.Get(s.Key)
	if err != nil {
		return nil, err
	}
	if err := c.Write(img, s.Path); err != nil {
		return nil, err
	}
	return img, nil
}
