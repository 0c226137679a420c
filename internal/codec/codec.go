package codec

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/imgproc/internal/imaging"
)

// Codec converts between an on-disk file and an Image.
type Codec interface {
	Read(path string) (*imaging.Image, error)
	Write(img *imaging.Image, path string) error
}

// known maps lower-case extensions to their codec.
var known = map[string]Codec{
	".ppm":  PPM{},
	".png":  Raster{encoder: imgio.PNGEncoder()},
	".jpg":  Raster{encoder: imgio.JPEGEncoder(95)},
	".jpeg": Raster{encoder: imgio.JPEGEncoder(95)},
	".bmp":  Raster{encoder: imgio.BMPEncoder()},
	".gif":  Raster{},
	".tif":  Raster{},
	".tiff": Raster{},
	".webp": Raster{},
}

// ForPath returns the codec registered for the extension of path.
//
// Matching is case-insensitive. A path without an extension fails with
// ErrMissingExtension and an unregistered one with ErrUnsupportedFileType;
// no I/O is attempted in either case.
func ForPath(path string) (Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" || ext == "." {
		return nil, fmt.Errorf("%q: %w", path, imaging.ErrMissingExtension)
	}
	c, ok := known[ext]
	if !ok {
		return nil, fmt.Errorf("%q: %w", ext, imaging.ErrUnsupportedFileType)
	}
	return c, nil
}

// Extensions lists every registered extension in ascending order.
func Extensions() []string {
	exts := make([]string, 0, len(known))
	for ext := range known {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Read loads the image at path with the codec selected by its extension.
func Read(path string) (*imaging.Image, error) {
	c, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	return c.Read(path)
}

// Write saves img to path with the codec selected by its extension.
func Write(img *imaging.Image, path string) error {
	c, err := ForPath(path)
	if err != nil {
		return err
	}
	return c.Write(img, path)
}
