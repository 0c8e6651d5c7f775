package ndimage

import "errors"

var (
	// ErrEmptyDomain indicates a shape with no axis or a non-positive extent.
	ErrEmptyDomain = errors.New("ndimage: domain must have at least one axis and positive extents")
	// ErrTooLarge indicates a shape whose pixel count overflows int.
	ErrTooLarge = errors.New("ndimage: domain too large")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("ndimage: all rows must have the same length")
	// ErrSizeMismatch indicates a sample slice whose length differs from the shape size.
	ErrSizeMismatch = errors.New("ndimage: buffer size does not match shape")
	// ErrConnectivity indicates a connectivity that cannot be used with the shape's dimension.
	ErrConnectivity = errors.New("ndimage: connectivity does not match dimension")
	// ErrUnsupportedKind indicates a buffer element type with no SampleKind.
	ErrUnsupportedKind = errors.New("ndimage: unsupported sample kind")
)
