package ndimage

import "fmt"

// Connectivity selects neighbor adjacency on the pixel grid.
type Connectivity int

const (
	// Face connects pixels sharing a face: 2 neighbors in 1-D, 4 in 2-D, 6 in 3-D.
	Face Connectivity = iota
	// Full connects pixels sharing at least a corner: 3^N−1 neighbors.
	Full
	// Conn2 is Face restricted to 1-D signals.
	Conn2
	// Conn4 is Face restricted to 2-D images: N, E, S, W.
	Conn4
	// Conn8 is Full restricted to 2-D images: N, NE, E, SE, S, SW, W, NW.
	Conn8
	// Conn6 is Face restricted to 3-D volumes.
	Conn6
	// Conn26 is Full restricted to 3-D volumes.
	Conn26
)

// String returns the conventional name of c.
func (c Connectivity) String() string {
	switch c {
	case Face:
		return "face"
	case Full:
		return "full"
	case Conn2:
		return "c2"
	case Conn4:
		return "c4"
	case Conn8:
		return "c8"
	case Conn6:
		return "c6"
	case Conn26:
		return "c26"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// ParseConnectivity is the inverse of String.
func ParseConnectivity(name string) (Connectivity, error) {
	for c := Face; c <= Conn26; c++ {
		if c.String() == name {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unknown connectivity %q: %w", name, ErrConnectivity)
}

// full reports whether c includes diagonal neighbors.
func (c Connectivity) full() bool {
	return c == Full || c == Conn8 || c == Conn26
}

// dims returns the dimensionality c is restricted to, or 0 for any.
func (c Connectivity) dims() int {
	switch c {
	case Conn2:
		return 1
	case Conn4, Conn8:
		return 2
	case Conn6, Conn26:
		return 3
	case Face, Full:
		return 0
	default:
		return -1
	}
}

// Check returns ErrConnectivity if c cannot be used on shape s.
func (c Connectivity) Check(s Shape) error {
	switch d := c.dims(); {
	case d < 0:
		return fmt.Errorf("%v: %w", c, ErrConnectivity)
	case d > 0 && d != s.Dims():
		return fmt.Errorf("%v on a %d-D domain: %w", c, s.Dims(), ErrConnectivity)
	}

	return nil
}

// Offsets returns the coordinate deltas of c in a fixed order for a domain
// of dims axes. Face offsets come as -e0, +e0, -e1, +e1, ...; Full offsets
// enumerate {-1,0,1}^dims in lexicographic order without the zero vector.
func (c Connectivity) Offsets(dims int) [][]int {
	if !c.full() {
		out := make([][]int, 0, 2*dims)
		for d := 0; d < dims; d++ {
			for _, step := range [2]int{-1, 1} {
				off := make([]int, dims)
				off[d] = step
				out = append(out, off)
			}
		}

		return out
	}
	total := 1
	for d := 0; d < dims; d++ {
		total *= 3
	}
	out := make([][]int, 0, total-1)
	for k := 0; k < total; k++ {
		off := make([]int, dims)
		zero := true
		rest := k
		for d := dims - 1; d >= 0; d-- {
			off[d] = rest%3 - 1
			rest /= 3
			if off[d] != 0 {
				zero = false
			}
		}
		if !zero {
			out = append(out, off)
		}
	}

	return out
}

// Neighborhood enumerates the neighbors of pixels of one Shape.
// It is immutable after construction and safe for concurrent use.
type Neighborhood struct {
	shape   Shape
	conn    Connectivity
	offsets [][]int
	deltas  []int
}

// NewNeighborhood precomputes offsets of conn for shape s.
// Returns ErrEmptyDomain or ErrConnectivity on invalid input.
func NewNeighborhood(s Shape, conn Connectivity) (*Neighborhood, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := conn.Check(s); err != nil {
		return nil, err
	}
	offsets := conn.Offsets(s.Dims())
	strides := s.Strides()
	deltas := make([]int, len(offsets))
	for k, off := range offsets {
		for d, o := range off {
			deltas[k] += o * strides[d]
		}
	}

	return &Neighborhood{shape: s.Clone(), conn: conn, offsets: offsets, deltas: deltas}, nil
}

// Shape returns the domain the neighborhood was built for.
func (nh *Neighborhood) Shape() Shape { return nh.shape }

// Connectivity returns the adjacency relation.
func (nh *Neighborhood) Connectivity() Connectivity { return nh.conn }

// Size returns the number of offsets (maximum neighbor count).
func (nh *Neighborhood) Size() int { return len(nh.offsets) }

// Neighbors appends the in-domain neighbors of p to dst, in offset order.
// Complexity: O(D×d).
func (nh *Neighborhood) Neighbors(p int, dst []int) []int {
	return nh.neighbors(p, nil, dst)
}

// NeighborsIn is Neighbors restricted to pixels inside box.
// p itself is expected to lie in box.
func (nh *Neighborhood) NeighborsIn(p int, box Box, dst []int) []int {
	return nh.neighbors(p, &box, dst)
}

func (nh *Neighborhood) neighbors(p int, box *Box, dst []int) []int {
	var local [8]int
	coord := nh.shape.Coord(p, local[:0])
	for k, off := range nh.offsets {
		ok := true
		for d, o := range off {
			c := coord[d] + o
			lo, hi := 0, nh.shape[d]
			if box != nil {
				lo, hi = box.Lo[d], box.Hi[d]
			}
			if c < lo || c >= hi {
				ok = false
				break
			}
		}
		if ok {
			dst = append(dst, p+nh.deltas[k])
		}
	}

	return dst
}
