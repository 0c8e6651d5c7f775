package imageio

import "errors"

var (
	// ErrFormat indicates a file extension with no known encoder.
	ErrFormat = errors.New("imageio: unknown image format")
	// ErrDims indicates a buffer that is not 2-D.
	ErrDims = errors.New("imageio: only 2-D buffers can be encoded")
)
