package imaging

import "errors"

var (
	// ErrNotFound is returned when a key is absent from a Store or a file is
	// absent on disk.
	ErrNotFound = errors.New("not found")

	// ErrOutOfRange is returned when a pixel coordinate or component index is
	// outside the image.
	ErrOutOfRange = errors.New("index out of range")

	// ErrUnsupportedImageType is returned when an operation needs at least
	// three components and the image has fewer.
	ErrUnsupportedImageType = errors.New("image type not supported")

	// ErrInvalidKernel is returned for convolution kernels with an even,
	// empty or ragged dimension.
	ErrInvalidKernel = errors.New("invalid kernel")

	// ErrInvalidArgument is returned for malformed construction data,
	// negative magnitudes and unselected operations.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingExtension is returned when a path has no file extension.
	ErrMissingExtension = errors.New("file was not given")

	// ErrUnsupportedFileType is returned when no codec is registered for an
	// extension.
	ErrUnsupportedFileType = errors.New("file type not supported")

	// ErrInvalidFormat is returned when a file does not match its format.
	ErrInvalidFormat = errors.New("invalid file format")

	// ErrWriteFailure is returned when an image cannot be written.
	ErrWriteFailure = errors.New("could not write file")
)
