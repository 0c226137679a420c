// Package imaging holds the in-memory raster model and the editing engine.
//
// An Image is a rectangular grid of pixels, each pixel a fixed number of
// integer components on a shared scale [0, MaxValue]. Stored values are
// always clamped into that range. A Store maps string keys to images.
//
// # Coordinate System
//
// All pixel coordinates are 0-based:
//   - X: column (0 = leftmost pixel)
//   - Y: row (0 = topmost pixel)
//   - C: component index (0 = red, 1 = green, 2 = blue)
//
// # Engine
//
// The engine functions mutate their image in place:
//   - Transform applies a 3x3 linear color matrix (red, green, blue, luma,
//     intensity and sepia matrices are provided)
//   - VisualizeValue replaces each pixel with its brightest component
//   - Convolve applies an odd-sized Kernel such as BlurKernel or SharpenKernel
//   - FlipHorizontal and FlipVertical mirror the pixel grid
//   - Brighten adds a signed delta to every color component
//
// Every engine function requires at least three components and returns
// ErrUnsupportedImageType otherwise. Real-valued results are truncated
// toward zero before clamping. Components beyond the third are carried
// through unchanged.
//
// # Rendering
//
// ToNRGBA and FromImage bridge to the standard image types used by the file
// codecs. SampleColor, Histogram and Preview inspect an image without
// modifying it.
//
// # Thread Safety
//
// Neither Image nor Store is synchronized. Callers sharing them across
// goroutines must provide their own locking.
package imaging
