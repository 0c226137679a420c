package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	imgmodel "github.com/ironsheep/imgproc/internal/imaging"
)

// Raster handles the compressed raster formats. Decoded images are
// normalised to three components with a ceiling of 255. A Raster without an
// encoder is read-only.
type Raster struct {
	encoder imgio.Encoder
}

// Read decodes the file at path, applying any EXIF orientation.
func (Raster) Read(path string) (*imgmodel.Image, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, imgmodel.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, imgmodel.ErrInvalidFormat, err)
	}
	return imgmodel.FromImage(src), nil
}

// Write encodes img to path, rescaling components to 8 bits. Nothing is
// written unless encoding succeeds.
func (r Raster) Write(img *imgmodel.Image, path string) error {
	if r.encoder == nil {
		return fmt.Errorf("%s is read-only: %w", path, imgmodel.ErrUnsupportedFileType)
	}

	rendered, err := imgmodel.ToNRGBA(img)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.encoder(&buf, rendered); err != nil {
		return fmt.Errorf("%s: %w: %v", path, imgmodel.ErrWriteFailure, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%s: %w: %v", path, imgmodel.ErrWriteFailure, err)
	}
	return nil
}
