package ndimage

import (
	"fmt"
	"math"
)

// Shape lists the extent of every axis of a row-major domain.
// The last axis varies fastest: for a 2-D shape {H, W}, index = y*W + x.
type Shape []int

// Dims returns the number of axes.
func (s Shape) Dims() int { return len(s) }

// Len returns the number of pixels (product of extents).
// A Shape that fails Validate may report a meaningless length.
func (s Shape) Len() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, e := range s {
		n *= e
	}

	return n
}

// Validate returns ErrEmptyDomain if s has no axis or any extent ≤ 0, and
// ErrTooLarge if the pixel count does not fit in an int.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return ErrEmptyDomain
	}
	n := 1
	for axis, e := range s {
		if e <= 0 {
			return fmt.Errorf("axis %d has extent %d: %w", axis, e, ErrEmptyDomain)
		}
		if n > math.MaxInt/e {
			return fmt.Errorf("%v: %w", []int(s), ErrTooLarge)
		}
		n *= e
	}

	return nil
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Strides returns the linear step of each axis.
// Complexity: O(D).
func (s Shape) Strides() []int {
	st := make([]int, len(s))
	step := 1
	for d := len(s) - 1; d >= 0; d-- {
		st[d] = step
		step *= s[d]
	}

	return st
}

// Index maps a coordinate to its row-major pixel index.
// The coordinate must lie inside s (see Contains); it is not checked.
// Complexity: O(D).
func (s Shape) Index(coord []int) int {
	idx := 0
	for d, e := range s {
		idx = idx*e + coord[d]
	}

	return idx
}

// Coord converts a pixel index back to its coordinate, reusing dst's storage
// when it has enough capacity.
// Complexity: O(D).
func (s Shape) Coord(idx int, dst []int) []int {
	if cap(dst) < len(s) {
		dst = make([]int, len(s))
	}
	dst = dst[:len(s)]
	for d := len(s) - 1; d >= 0; d-- {
		dst[d] = idx % s[d]
		idx /= s[d]
	}

	return dst
}

// Contains reports whether coord lies within the box.
func (s Shape) Contains(coord []int) bool {
	if len(coord) != len(s) {
		return false
	}
	for d, e := range s {
		if coord[d] < 0 || coord[d] >= e {
			return false
		}
	}

	return true
}

// Box is a half-open sub-box [Lo, Hi) of a Shape, used to restrict
// neighbor enumeration to a tile.
type Box struct {
	Lo, Hi []int
}

// FullBox returns the box covering the whole shape.
func (s Shape) FullBox() Box {
	lo := make([]int, len(s))
	hi := make([]int, len(s))
	copy(hi, s)

	return Box{Lo: lo, Hi: hi}
}

// Len returns the number of pixels inside b (0 when b is empty).
func (b Box) Len() int {
	n := 1
	for d := range b.Lo {
		e := b.Hi[d] - b.Lo[d]
		if e <= 0 {
			return 0
		}
		n *= e
	}

	return n
}

// Indices returns the pixel indices of b within s, in ascending order.
// Complexity: O(|b|×D).
func (b Box) Indices(s Shape) []int {
	n := b.Len()
	out := make([]int, 0, n)
	if n == 0 {
		return out
	}
	coord := make([]int, len(s))
	copy(coord, b.Lo)
	for {
		out = append(out, s.Index(coord))
		// odometer increment, last axis fastest
		d := len(s) - 1
		for ; d >= 0; d-- {
			coord[d]++
			if coord[d] < b.Hi[d] {
				break
			}
			coord[d] = b.Lo[d]
		}
		if d < 0 {
			return out
		}
	}
}

// SplitAxis0 partitions s into at most n slabs along the first axis.
// Slabs are contiguous in pixel-index space and as even as possible.
// n < 1 is treated as 1; n larger than the first extent is clamped.
func (s Shape) SplitAxis0(n int) []Box {
	rows := s[0]
	n = max(1, min(n, rows))
	boxes := make([]Box, 0, n)
	lo := 0
	for k := 0; k < n; k++ {
		hi := lo + rows/n
		if k < rows%n {
			hi++
		}
		b := s.FullBox()
		b.Lo[0], b.Hi[0] = lo, hi
		boxes = append(boxes, b)
		lo = hi
	}

	return boxes
}
