// SPDX-License-Identifier: MIT

package ctree

import "github.com/katalvlaran/lvlset/ndimage"

// Topology is the value-agnostic view of a component tree.
type Topology interface {
	Len() int
	NumPixels() int
	Shape() ndimage.Shape
	Direction() Direction
	NodeOf(p int) int
	ParentOf(n int) int
	ChildrenOf(n int) []int
	Area() []int
	Depth() []int
}

// Any is a Tree whose level type is erased, as returned by the generic
// dispatch layer. Level boxes the node level; Prune is FilterDirect.
type Any interface {
	Topology
	Level(n int) any
	Prune(keep func(n int) bool) (Any, error)
}

var _ Any = (*Tree[uint8])(nil)
