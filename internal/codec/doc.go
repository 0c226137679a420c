// Package codec reads and writes images on disk.
//
// A Codec is selected by file extension through ForPath. Two families are
// registered:
//
//   - PPM: the plain-text P3 format, keeping the file's own component
//     ceiling.
//   - Raster: PNG, JPEG and BMP (read and write) plus GIF, TIFF and WebP
//     (read only). Decoded images always have three components and a
//     ceiling of 255; encoding rescales to 8 bits.
//
// # Errors
//
// All failures wrap the sentinel errors of package imaging:
//   - ErrMissingExtension, ErrUnsupportedFileType from ForPath
//   - ErrNotFound, ErrInvalidFormat from Read
//   - ErrUnsupportedImageType, ErrWriteFailure from Write
package codec
