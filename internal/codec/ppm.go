package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/imgproc/internal/imaging"
)

// PPM reads and writes the plain-text P3 format: the magic "P3", width,
// height and component ceiling, then r g b triples in row-major order.
// Lines starting with '#' are comments.
type PPM struct{}

// Read parses the file at path.
func (PPM) Read(path string) (*imaging.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, imaging.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, err := DecodePPM(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// MaxPPMValue is the largest component ceiling the plain format allows.
const MaxPPMValue = 65535

// DecodePPM parses a P3 stream.
//
// The header must declare a ceiling of at most MaxPPMValue and the raster
// must hold exactly width*height*3 values; anything else fails with
// ErrInvalidFormat.
func DecodePPM(r io.Reader) (*imaging.Image, error) {
	var body bytes.Buffer
	lines := bufio.NewScanner(r)
	// Writers may put a whole raster on one line
	lines.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for lines.Scan() {
		line := lines.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("reading ppm: %w: %v", imaging.ErrInvalidFormat, err)
	}

	tokens := strings.Fields(body.String())
	if len(tokens) == 0 || tokens[0] != "P3" {
		return nil, fmt.Errorf("plain ppm must begin with P3: %w", imaging.ErrInvalidFormat)
	}
	if len(tokens) < 4 {
		return nil, fmt.Errorf("ppm header is incomplete: %w", imaging.ErrInvalidFormat)
	}

	header := [3]int{}
	for i, what := range []string{"width", "height", "max value"} {
		v, err := strconv.Atoi(tokens[1+i])
		if err != nil {
			return nil, fmt.Errorf("%s %q is not an integer: %w", what, tokens[1+i], imaging.ErrInvalidFormat)
		}
		header[i] = v
	}
	width, height, maxValue := header[0], header[1], header[2]
	if width <= 0 || height <= 0 || maxValue < 0 || maxValue > MaxPPMValue {
		return nil, fmt.Errorf("bad header %dx%d max %d: %w", width, height, maxValue, imaging.ErrInvalidFormat)
	}

	// The raster is checked against the header before anything is
	// allocated from it.
	raster := tokens[4:]
	if width > len(raster)/3 || height > len(raster)/3/width || width*height*3 != len(raster) {
		return nil, fmt.Errorf("header declares %dx%d pixels, file holds %d values: %w",
			width, height, len(raster), imaging.ErrInvalidFormat)
	}

	pixels := make([][][]int, width)
	for x := range pixels {
		pixels[x] = make([][]int, height)
		for y := range pixels[x] {
			pixels[x][y] = make([]int, 3)
		}
	}
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < 3; c++ {
				v, err := strconv.Atoi(raster[i])
				if err != nil {
					return nil, fmt.Errorf("component (%d,%d,%d) %q is not an integer: %w", x, y, c, raster[i], imaging.ErrInvalidFormat)
				}
				pixels[x][y][c] = v
				i++
			}
		}
	}

	img, err := imaging.New(pixels, maxValue, 3)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", imaging.ErrInvalidFormat, err)
	}
	return img, nil
}

// Write saves img to path, replacing any existing file.
func (PPM) Write(img *imaging.Image, path string) error {
	var buf bytes.Buffer
	if err := EncodePPM(&buf, img); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%s: %w: %v", path, imaging.ErrWriteFailure, err)
	}
	return nil
}

// EncodePPM writes the header lines followed by one component per line.
func EncodePPM(w io.Writer, img *imaging.Image) error {
	if img.Components() < 3 {
		return fmt.Errorf("ppm needs 3 components, image has %d: %w", img.Components(), imaging.ErrUnsupportedImageType)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n%d\n", img.Width(), img.Height(), img.MaxValue())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			for c := 0; c < 3; c++ {
				v, _ := img.At(x, y, c)
				bw.WriteString(strconv.Itoa(v))
				bw.WriteByte('\n')
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", imaging.ErrWriteFailure, err)
	}
	return nil
}
