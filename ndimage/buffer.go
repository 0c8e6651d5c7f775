package ndimage

// Image is the read-only element accessor consumed by the tree builders.
// At must be valid for every index in [0, Shape().Len()).
type Image[V any] interface {
	Shape() Shape
	At(p int) V
}

// Buffer is a dense N-D array of samples stored in row-major order.
// The zero value is not usable; construct with New, FromSlice or From2D.
type Buffer[V any] struct {
	shape Shape
	data  []V
}

var _ Image[uint8] = (*Buffer[uint8])(nil)

// New allocates a zero-filled buffer with the given extents.
// Returns ErrEmptyDomain if the shape is invalid.
// Complexity: O(N) time and memory.
func New[V any](shape ...int) (*Buffer[V], error) {
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &Buffer[V]{shape: s, data: make([]V, s.Len())}, nil
}

// FromSlice wraps data (not copied) as a buffer with the given extents.
// Returns ErrEmptyDomain for an invalid shape, ErrSizeMismatch if
// len(data) differs from the shape size.
func FromSlice[V any](data []V, shape ...int) (*Buffer[V], error) {
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(data) != s.Len() {
		return nil, ErrSizeMismatch
	}

	return &Buffer[V]{shape: s, data: data}, nil
}

// From2D deep-copies a non-empty rectangular 2-D slice into a {H, W} buffer.
// Returns ErrEmptyDomain if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D[V any](rows [][]V) (*Buffer[V], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyDomain
	}
	h, w := len(rows), len(rows[0])
	data := make([]V, 0, h*w)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		data = append(data, row...)
	}

	return &Buffer[V]{shape: Shape{h, w}, data: data}, nil
}

// Shape returns the buffer extents. Callers must not modify it.
func (b *Buffer[V]) Shape() Shape { return b.shape }

// Len returns the number of pixels.
func (b *Buffer[V]) Len() int { return len(b.data) }

// At returns the sample at pixel index p.
func (b *Buffer[V]) At(p int) V { return b.data[p] }

// Set stores v at pixel index p.
func (b *Buffer[V]) Set(p int, v V) { b.data[p] = v }

// AtCoord returns the sample at the given coordinate.
func (b *Buffer[V]) AtCoord(coord ...int) V { return b.data[b.shape.Index(coord)] }

// Data exposes the backing slice in row-major order.
func (b *Buffer[V]) Data() []V { return b.data }

// Clone returns a deep copy of b.
func (b *Buffer[V]) Clone() *Buffer[V] {
	data := make([]V, len(b.data))
	copy(data, b.data)

	return &Buffer[V]{shape: b.shape.Clone(), data: data}
}

// Rows returns a 2-D buffer as a fresh [][]V, or nil when b is not 2-D.
func (b *Buffer[V]) Rows() [][]V {
	if b.shape.Dims() != 2 {
		return nil
	}
	h, w := b.shape[0], b.shape[1]
	out := make([][]V, h)
	for y := 0; y < h; y++ {
		out[y] = make([]V, w)
		copy(out[y], b.data[y*w:(y+1)*w])
	}

	return out
}

// Values copies the samples of any Image into a flat slice indexed by pixel.
// Builders call it once so the hot loops avoid interface dispatch.
func Values[V any](img Image[V]) []V {
	if b, ok := img.(*Buffer[V]); ok {
		return b.data
	}
	n := img.Shape().Len()
	out := make([]V, n)
	for p := 0; p < n; p++ {
		out[p] = img.At(p)
	}

	return out
}
