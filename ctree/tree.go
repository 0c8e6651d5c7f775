// SPDX-License-Identifier: MIT

package ctree

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvlset/ndimage"
)

// Direction tells which level sets a tree represents.
type Direction int

const (
	// MaxTree nests upper level sets: values increase from root to leaves.
	MaxTree Direction = iota
	// MinTree nests lower level sets: values decrease from root to leaves.
	MinTree
)

// String returns "max" or "min".
func (d Direction) String() string {
	switch d {
	case MaxTree:
		return "max"
	case MinTree:
		return "min"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection is the inverse of String.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "max":
		return MaxTree, nil
	case "min":
		return MinTree, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// Root is the id of the root node of every Tree.
const Root = 0

// Tree is a component tree over the pixels of one domain.
//
// parent[n] is the parent node of n (parent[Root] == Root, parent[n] < n
// otherwise), values[n] the level of n and nodeMap[p] the node owning pixel p.
// Children are derived lazily on first request.
type Tree[V any] struct {
	shape   ndimage.Shape
	dir     Direction
	parent  []int
	values  []V
	nodeMap []int

	childOnce  sync.Once
	childStart []int
	childList  []int
}

// New assembles a Tree from its arrays, taking ownership of the slices.
// It performs O(N) structural validation and returns ErrCorrupt when the
// arrays do not describe a rooted forest with parents before children, or
// when the node map has the wrong size or references unknown nodes.
func New[V any](shape ndimage.Shape, dir Direction, parent []int, values []V, nodeMap []int) (*Tree[V], error) {
	t := &Tree[V]{
		shape:   shape.Clone(),
		dir:     dir,
		parent:  parent,
		values:  values,
		nodeMap: nodeMap,
	}
	if err := t.validateStructure(); err != nil {
		return nil, err
	}

	return t, nil
}

// Len returns the number of nodes.
func (t *Tree[V]) Len() int { return len(t.parent) }

// NumPixels returns the number of pixels of the domain.
func (t *Tree[V]) NumPixels() int { return len(t.nodeMap) }

// Shape returns the domain extents. Callers must not modify it.
func (t *Tree[V]) Shape() ndimage.Shape { return t.shape }

// Direction reports whether t is a max-tree or a min-tree.
func (t *Tree[V]) Direction() Direction { return t.dir }

// NodeOf returns the node owning pixel p.
func (t *Tree[V]) NodeOf(p int) int { return t.nodeMap[p] }

// ParentOf returns the parent of node n; ParentOf(Root) == Root.
func (t *Tree[V]) ParentOf(n int) int { return t.parent[n] }

// ValueOf returns the level of node n.
func (t *Tree[V]) ValueOf(n int) V { return t.values[n] }

// Level is ValueOf with the value boxed, for value-agnostic consumers.
func (t *Tree[V]) Level(n int) any { return t.values[n] }

// ChildrenOf returns the children of n in increasing id order.
// The returned slice aliases internal storage and must not be modified.
// Complexity: O(1) after a one-time O(nodes) table build.
func (t *Tree[V]) ChildrenOf(n int) []int {
	t.childOnce.Do(t.buildChildren)

	return t.childList[t.childStart[n]:t.childStart[n+1]]
}

// Parents returns a copy of the node parent array.
func (t *Tree[V]) Parents() []int { return append([]int(nil), t.parent...) }

// Values returns a copy of the node level array.
func (t *Tree[V]) Values() []V { return append([]V(nil), t.values...) }

// NodeMap returns a copy of the pixel→node array.
func (t *Tree[V]) NodeMap() []int { return append([]int(nil), t.nodeMap...) }

// PixelsOf returns the pixels mapped directly to n (its flat zone),
// in increasing index order.
// Complexity: O(N).
func (t *Tree[V]) PixelsOf(n int) []int {
	var out []int
	for p, id := range t.nodeMap {
		if id == n {
			out = append(out, p)
		}
	}

	return out
}

// buildChildren fills a CSR table: children of n are
// childList[childStart[n]:childStart[n+1]].
func (t *Tree[V]) buildChildren() {
	n := len(t.parent)
	start := make([]int, n+1)
	for i := 1; i < n; i++ {
		start[t.parent[i]+1]++
	}
	for i := 0; i < n; i++ {
		start[i+1] += start[i]
	}
	list := make([]int, max(n-1, 0))
	fill := append([]int(nil), start[:n]...)
	for i := 1; i < n; i++ {
		p := t.parent[i]
		list[fill[p]] = i
		fill[p]++
	}
	t.childStart, t.childList = start, list
}
