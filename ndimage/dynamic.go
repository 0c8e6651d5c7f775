package ndimage

import "fmt"

// RGB is a three-channel 8-bit color sample.
type RGB = [3]uint8

// CompareRGB orders colors lexicographically (R, then G, then B).
// It is the total order used when a color buffer must feed a builder
// that requires one.
func CompareRGB(a, b RGB) int {
	for c := 0; c < 3; c++ {
		if a[c] != b[c] {
			if a[c] < b[c] {
				return -1
			}
			return 1
		}
	}

	return 0
}

// SampleKind names the element type of a Dynamic buffer.
type SampleKind int

const (
	// KindUnknown is the zero value; Dynamic never carries it.
	KindUnknown SampleKind = iota
	Uint8
	Uint16
	Int32
	Float32
	Float64
	// RGB8 holds [3]uint8 samples.
	RGB8
)

// String returns a short lowercase name.
func (k SampleKind) String() string {
	switch k {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case RGB8:
		return "rgb8"
	default:
		return "unknown"
	}
}

// Scalar reports whether k holds totally ordered single-channel samples.
func (k SampleKind) Scalar() bool {
	return k >= Uint8 && k <= Float64
}

// Dynamic is a buffer whose sample type is chosen at run time, e.g. by a
// file decoder. Use AsBuffer to recover the typed buffer.
type Dynamic struct {
	kind SampleKind
	buf  any
}

// NewDynamic wraps one of *Buffer[uint8], *Buffer[uint16], *Buffer[int32],
// *Buffer[float32], *Buffer[float64] or *Buffer[RGB].
// Returns ErrUnsupportedKind for any other value.
func NewDynamic(buf any) (Dynamic, error) {
	var k SampleKind
	switch b := buf.(type) {
	case *Buffer[uint8]:
		k = Uint8
	case *Buffer[uint16]:
		k = Uint16
	case *Buffer[int32]:
		k = Int32
	case *Buffer[float32]:
		k = Float32
	case *Buffer[float64]:
		k = Float64
	case *Buffer[RGB]:
		k = RGB8
	default:
		return Dynamic{}, fmt.Errorf("%T: %w", b, ErrUnsupportedKind)
	}

	return Dynamic{kind: k, buf: buf}, nil
}

// Kind returns the sample kind.
func (d Dynamic) Kind() SampleKind { return d.kind }

// Buffer returns the wrapped *Buffer[T].
func (d Dynamic) Buffer() any { return d.buf }

// Shape returns the extents of the wrapped buffer, or nil for a zero Dynamic.
func (d Dynamic) Shape() Shape {
	switch b := d.buf.(type) {
	case *Buffer[uint8]:
		return b.Shape()
	case *Buffer[uint16]:
		return b.Shape()
	case *Buffer[int32]:
		return b.Shape()
	case *Buffer[float32]:
		return b.Shape()
	case *Buffer[float64]:
		return b.Shape()
	case *Buffer[RGB]:
		return b.Shape()
	default:
		return nil
	}
}

// AsBuffer returns the typed buffer held by d, if its element type is V.
func AsBuffer[V any](d Dynamic) (*Buffer[V], bool) {
	b, ok := d.buf.(*Buffer[V])

	return b, ok
}
