package unionfind

// Unset marks an element that has not been made into a set yet.
const Unset = -1

// FindRoot returns the root of x in the parent array and repoints every
// element on the path from x directly to that root.
//
// Precondition: 0 ≤ x < len(parent), and every element on the path has been
// initialized (parent[r] == r for the root). Out-of-range indices are a
// caller bug; no check is performed beyond Go's own bounds checks.
//
// Repeated calls never change the represented sets, only shorten paths, so
// FindRoot(parent, FindRoot(parent, x)) == FindRoot(parent, x).
func FindRoot(parent []int, x int) int {
	// Walk to the fixed point.
	root := x
	for parent[root] != root {
		root = parent[root]
	}
	// Path compression: point all nodes along the path directly to root.
	for parent[x] != root {
		x, parent[x] = parent[x], root
	}

	return root
}

// Forest is a parent array where Unset marks elements not yet processed.
type Forest struct {
	parent []int
}

// New creates a Forest of n elements, all Unset.
func New(n int) *Forest {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = Unset
	}

	return &Forest{parent: parent}
}

// MakeSet turns x into a singleton set rooted at itself.
func (f *Forest) MakeSet(x int) { f.parent[x] = x }

// Processed reports whether MakeSet has been called for x.
func (f *Forest) Processed(x int) bool { return f.parent[x] != Unset }

// Find returns the root of x with path compression. x must be processed.
func (f *Forest) Find(x int) int { return FindRoot(f.parent, x) }

// Link attaches the root r under root. Both must be roots of distinct sets.
func (f *Forest) Link(r, root int) { f.parent[r] = root }

// Parents exposes the parent array. Unset entries are -1.
func (f *Forest) Parents() []int { return f.parent }
