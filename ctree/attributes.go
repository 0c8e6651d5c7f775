// SPDX-License-Identifier: MIT

package ctree

import (
	"fmt"

	"github.com/katalvlaran/lvlset/ndimage"
)

// Number is the set of sample types attributes can do arithmetic on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Area returns, for every node, the number of pixels of its component
// (its own flat zone plus all descendants).
// Complexity: O(N + nodes).
func (t *Tree[V]) Area() []int {
	area := make([]int, len(t.parent))
	for _, id := range t.nodeMap {
		area[id]++
	}
	for i := len(area) - 1; i > 0; i-- {
		area[t.parent[i]] += area[i]
	}

	return area
}

// Depth returns the number of edges from the root to every node.
func (t *Tree[V]) Depth() []int {
	depth := make([]int, len(t.parent))
	for i := 1; i < len(depth); i++ {
		depth[i] = depth[t.parent[i]] + 1
	}

	return depth
}

// Height returns, for every node, the absolute level difference between
// the node and the most extreme leaf of its subtree (the dynamics of the
// node's extremum). Leaves have height 0.
func Height[V Number](t *Tree[V]) []V {
	n := t.Len()
	extreme := make([]V, n)
	copy(extreme, t.values)
	for i := n - 1; i > 0; i-- {
		p := t.parent[i]
		if t.dir == MaxTree && extreme[i] > extreme[p] || t.dir == MinTree && extreme[i] < extreme[p] {
			extreme[p] = extreme[i]
		}
	}
	h := make([]V, n)
	for i := range h {
		if extreme[i] > t.values[i] {
			h[i] = extreme[i] - t.values[i]
		} else {
			h[i] = t.values[i] - extreme[i]
		}
	}

	return h
}

// Volume returns, for every node, the sum over the pixels of its component
// of the absolute difference between the pixel's level and the node's level.
func Volume[V Number](t *Tree[V]) []float64 {
	n := t.Len()
	area := t.Area()
	vol := make([]float64, n)
	// vol[n] = Σ_children (vol[c] + area[c]·|v(c) − v(n)|)
	for i := n - 1; i > 0; i-- {
		p := t.parent[i]
		d := float64(t.values[i]) - float64(t.values[p])
		if d < 0 {
			d = -d
		}
		vol[p] += vol[i] + float64(area[i])*d
	}

	return vol
}

// Reconstruct returns the image whose pixels carry the level of their node.
// Applied to a filtered tree it yields the filtered image.
func (t *Tree[V]) Reconstruct() *ndimage.Buffer[V] {
	out, _ := ReconstructFrom(t, t.values)

	return out
}

// ReconstructFrom paints every pixel with attr[NodeOf(p)].
// Returns ErrSizeMismatch when len(attr) != t.Len().
func ReconstructFrom[V, W any](t *Tree[V], attr []W) (*ndimage.Buffer[W], error) {
	if len(attr) != t.Len() {
		return nil, fmt.Errorf("%d attributes for %d nodes: %w", len(attr), t.Len(), ErrSizeMismatch)
	}
	data := make([]W, len(t.nodeMap))
	for p, id := range t.nodeMap {
		data[p] = attr[id]
	}

	return ndimage.FromSlice(data, t.shape...)
}
