// SPDX-License-Identifier: MIT

package maxtree

import (
	"slices"

	"github.com/katalvlaran/lvlset/ctree"
	"github.com/katalvlaran/lvlset/ndimage"
)

// Canonicalize applies level compression to a provisional parent array.
// order must list every pixel with parents before children (the processing
// order of SortPixels, walked forwards). same(p, q) reports equal levels.
//
// Afterwards every pixel points either to the canonical pixel of its own
// node, or, if it is that canonical pixel, to the canonical pixel of the
// parent node (the root points to itself).
func Canonicalize(parent []int, order []int, same func(p, q int) bool) {
	for _, p := range order {
		q := parent[p]
		if same(q, parent[q]) {
			parent[p] = parent[q]
		}
	}
}

// CanonicalizeAny is Canonicalize for parent arrays whose processing order
// is unknown, such as the result of a tile merge. Same-level chains are
// resolved with path compression.
func CanonicalizeAny(parent []int, same func(p, q int) bool) {
	for p := range parent {
		r := levelRoot(parent, same, p)
		if r != p {
			parent[p] = r
			continue
		}
		if q := parent[p]; q != p {
			parent[p] = levelRoot(parent, same, q)
		}
	}
}

// levelRoot follows same-level parent links from p to the canonical pixel
// of p's node and compresses the traversed path.
func levelRoot(parent []int, same func(p, q int) bool, p int) int {
	r := p
	for {
		q := parent[r]
		if q == r || !same(r, q) {
			break
		}
		r = q
	}
	for parent[p] != r && p != r {
		p, parent[p] = parent[p], r
	}

	return r
}

// materialize turns a canonical parent array into a ctree.Tree.
// Nodes are numbered by (level from root side, smallest pixel index), so
// parents always precede children and the numbering does not depend on
// which pixel of a node happened to be canonical.
func materialize[V any](shape ndimage.Shape, lv leveler[V], parent []int) (*ctree.Tree[V], error) {
	n := len(parent)
	isCanon := func(p int) bool {
		q := parent[p]
		return q == p || !lv.same(p, q)
	}

	// leader[c] = smallest pixel of the node whose canonical pixel is c.
	leader := make([]int, n)
	for i := range leader {
		leader[i] = -1
	}
	var canon []int
	for p := 0; p < n; p++ {
		c := p
		if !isCanon(p) {
			c = parent[p]
		}
		if leader[c] < 0 {
			leader[c] = p
			canon = append(canon, c)
		}
	}
	slices.SortFunc(canon, func(a, b int) int {
		if c := lv.cmpLevel(a, b); c != 0 {
			return c
		}

		return leader[a] - leader[b]
	})

	// leader is reused as canonical pixel → node id.
	for id, c := range canon {
		leader[c] = id
	}
	nodeParent := make([]int, len(canon))
	values := make([]V, len(canon))
	for id, c := range canon {
		nodeParent[id] = leader[parent[c]]
		values[id] = lv.vals[c]
	}
	nodeMap := make([]int, n)
	for p := 0; p < n; p++ {
		c := p
		if !isCanon(p) {
			c = parent[p]
		}
		nodeMap[p] = leader[c]
	}

	return ctree.New(shape, lv.dir, nodeParent, values, nodeMap)
}
