// SPDX-License-Identifier: MIT

package maxtree

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvlset/ctree"
	"github.com/katalvlaran/lvlset/ndimage"
	"github.com/katalvlaran/lvlset/unionfind"
)

// Build computes the component tree of img under conn.
// By default it builds a max-tree; pass WithDirection(ctree.MinTree) for a
// min-tree.
//
// Errors:
//   - ErrNilImage: img is nil.
//   - ndimage.ErrEmptyDomain: the image shape is invalid.
//   - ndimage.ErrTooLarge: the pixel count overflows int.
//   - ndimage.ErrConnectivity: conn does not fit the image dimension.
//
// Determinism: identical input yields identical node ids, parents and
// pixel mapping.
func Build[V cmp.Ordered](img ndimage.Image[V], conn ndimage.Connectivity, opts ...Option) (*ctree.Tree[V], error) {
	return BuildFunc(img, conn, cmp.Compare[V], opts...)
}

// BuildFunc is Build over an injected total order; compare(a, b) must be
// negative, zero or positive as a is below, equal to or above b.
func BuildFunc[V any](img ndimage.Image[V], conn ndimage.Connectivity, compare func(a, b V) int, opts ...Option) (*ctree.Tree[V], error) {
	o := gatherOptions(opts)
	vals, nh, err := prepare(img, conn, compare)
	if err != nil {
		return nil, err
	}
	lv := leveler[V]{vals: vals, compare: compare, dir: o.dir}

	o.logger.Debug("maxtree: sorting", "pixels", len(vals), "direction", o.dir)
	order := lv.sortPixels(identity(len(vals)))

	parent := make([]int, len(vals))
	zpar := unionfind.New(len(vals))
	o.logger.Debug("maxtree: union-find pass", "connectivity", nh.Connectivity())
	flood(order, nh, nil, parent, zpar)

	o.logger.Debug("maxtree: canonicalization")
	Canonicalize(parent, order, lv.same)

	t, err := materialize(img.Shape(), lv, parent)
	if err == nil {
		o.logger.Debug("maxtree: done", "nodes", t.Len())
	}

	return t, err
}

// SortPixels returns the processing order of img: pixel indices sorted from
// the root side (lowest level for a max-tree, highest for a min-tree) to
// the leaf side, ties broken by ascending index. The union-find pass walks
// it from the end.
func SortPixels[V any](img ndimage.Image[V], compare func(a, b V) int, dir ctree.Direction) []int {
	lv := leveler[V]{vals: ndimage.Values(img), compare: compare, dir: dir}

	return lv.sortPixels(identity(img.Shape().Len()))
}

func prepare[V any](img ndimage.Image[V], conn ndimage.Connectivity, compare func(a, b V) int) ([]V, *ndimage.Neighborhood, error) {
	if img == nil || compare == nil {
		return nil, nil, ErrNilImage
	}
	nh, err := ndimage.NewNeighborhood(img.Shape(), conn)
	if err != nil {
		return nil, nil, err
	}

	return ndimage.Values(img), nh, nil
}

// leveler compares pixels by level in the direction of the tree.
type leveler[V any] struct {
	vals    []V
	compare func(a, b V) int
	dir     ctree.Direction
}

// cmpLevel orders pixels p, q from root side to leaf side.
func (lv leveler[V]) cmpLevel(p, q int) int {
	c := lv.compare(lv.vals[p], lv.vals[q])
	if lv.dir == ctree.MinTree {
		return -c
	}

	return c
}

// below reports whether p is strictly closer to the root than q.
func (lv leveler[V]) below(p, q int) bool { return lv.cmpLevel(p, q) < 0 }

// same reports whether p and q have equal levels.
func (lv leveler[V]) same(p, q int) bool { return lv.compare(lv.vals[p], lv.vals[q]) == 0 }

// sortPixels sorts idx in place by (level, index) and returns it.
func (lv leveler[V]) sortPixels(idx []int) []int {
	slices.SortFunc(idx, func(p, q int) int {
		if c := lv.cmpLevel(p, q); c != 0 {
			return c
		}

		return p - q
	})

	return idx
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// flood is the union-find pass. Pixels are processed from the end of order
// (leaf side) to its start. For each processed neighbor n of the current
// pixel p, the root r of n's component is attached under p unless it is p
// already. When box is non-nil, neighbors outside it are ignored.
//
// zpar holds the compression-only forest; parent receives the provisional
// tree. Writes touch only the pixels listed in order, so concurrent calls
// on disjoint boxes may share both arrays.
func flood(order []int, nh *ndimage.Neighborhood, box *ndimage.Box, parent []int, zpar *unionfind.Forest) {
	nbuf := make([]int, 0, nh.Size())
	for i := len(order) - 1; i >= 0; i-- {
		p := order[i]
		parent[p] = p
		zpar.MakeSet(p)

		if box != nil {
			nbuf = nh.NeighborsIn(p, *box, nbuf[:0])
		} else {
			nbuf = nh.Neighbors(p, nbuf[:0])
		}
		for _, n := range nbuf {
			if !zpar.Processed(n) {
				continue
			}
			r := zpar.Find(n)
			if r == p {
				continue
			}
			parent[r] = p
			zpar.Link(r, p)
		}
	}
}
