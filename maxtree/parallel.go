// SPDX-License-Identifier: MIT

package maxtree

import (
	"cmp"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlset/ctree"
	"github.com/katalvlaran/lvlset/ndimage"
	"github.com/katalvlaran/lvlset/unionfind"
)

// BuildParallel is Build with the union-find pass split over slabs of the
// first axis.
//
// Fork: each slab is sorted and flooded on its own goroutine, at most
// WithWorkers of them at a time; slabs share the parent arrays but write
// disjoint entries. Join: all slabs finish before any merge step starts.
// Merge: a single goroutine connects every neighbor pair straddling a slab
// border, then the whole array is canonicalized and materialized.
//
// The result is identical to Build on the same input.
func BuildParallel[V cmp.Ordered](img ndimage.Image[V], conn ndimage.Connectivity, opts ...Option) (*ctree.Tree[V], error) {
	return BuildParallelFunc(img, conn, cmp.Compare[V], opts...)
}

// BuildParallelFunc is BuildParallel over an injected total order.
func BuildParallelFunc[V any](img ndimage.Image[V], conn ndimage.Connectivity, compare func(a, b V) int, opts ...Option) (*ctree.Tree[V], error) {
	o := gatherOptions(opts)
	vals, nh, err := prepare(img, conn, compare)
	if err != nil {
		return nil, err
	}
	shape := img.Shape()
	lv := leveler[V]{vals: vals, compare: compare, dir: o.dir}
	tiles := shape.SplitAxis0(o.tiles)
	if len(tiles) == 1 {
		return BuildFunc(img, conn, compare, opts...)
	}

	parent := make([]int, len(vals))
	zpar := unionfind.New(len(vals))

	start := time.Now()
	var g errgroup.Group
	g.SetLimit(o.workers)
	for _, tile := range tiles {
		g.Go(func() error {
			order := lv.sortPixels(tile.Indices(shape))
			flood(order, nh, &tile, parent, zpar)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	o.logger.Debug("maxtree: tiles flooded", "tiles", len(tiles), "workers", o.workers, "elapsed", time.Since(start))

	m := merger[V]{lv: lv, parent: parent}
	stride := shape.Strides()[0]
	nbuf := make([]int, 0, nh.Size())
	for _, tile := range tiles[1:] {
		// Pixels of the last row of the previous slab, linked to the
		// first row of this one.
		border := tile.Lo[0] * stride
		for p := border - stride; p < border; p++ {
			nbuf = nh.Neighbors(p, nbuf[:0])
			for _, q := range nbuf {
				if q >= border {
					m.connect(p, q)
				}
			}
		}
	}
	o.logger.Debug("maxtree: borders merged", "borders", len(tiles)-1)

	CanonicalizeAny(parent, lv.same)

	return materialize(shape, lv, parent)
}

// merger joins two provisional trees that share a parent array along an
// edge (p, q), keeping parents at or below their children's levels.
type merger[V any] struct {
	lv     leveler[V]
	parent []int
}

func (m *merger[V]) repr(p int) int { return levelRoot(m.parent, m.lv.same, p) }

// parentRepr returns the canonical pixel of the parent node of the
// canonical pixel x, shortening x's link to it.
func (m *merger[V]) parentRepr(x int) int {
	r := m.repr(m.parent[x])
	m.parent[x] = r

	return r
}

// connect merges the branches of p and q: walking both root paths in
// level order, each node is hooked under the highest node of the other
// branch that does not exceed it.
func (m *merger[V]) connect(p, q int) {
	x, y := m.repr(p), m.repr(q)
	if m.lv.below(x, y) {
		x, y = y, x
	}
	// invariant: x and y are canonical and level(x) ≥ level(y)
	for x != y {
		if m.parent[x] == x {
			m.parent[x] = y
			return
		}
		z := m.parentRepr(x)
		if !m.lv.below(z, y) {
			x = z
			continue
		}
		m.parent[x] = y
		x, y = y, z
	}
}
