package tos

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvlset/ctree"
	"github.com/katalvlaran/lvlset/maxtree"
	"github.com/katalvlaran/lvlset/ndimage"
)

// Result is a tree of shapes.
//
// The embedded Tree is the max-tree of the propagation depth over the
// K-grid: its values are depths and its pixels are K-points. Levels[n] is
// the original sample value of node n. NodeOfPixel projects original
// pixels onto the tree.
type Result[V any] struct {
	*ctree.Tree[int]
	Levels []V

	shape ndimage.Shape
}

var _ ctree.Any = (*Result[uint8])(nil)

// Build computes the tree of shapes of img.
//
// Errors: ErrNilImage, ndimage.ErrEmptyDomain, ndimage.ErrTooLarge, ErrStart.
func Build[V cmp.Ordered](img ndimage.Image[V], opts ...Option) (*Result[V], error) {
	return BuildFunc(img, cmp.Compare[V], opts...)
}

// BuildFunc is Build over an injected total order on sample values.
func BuildFunc[V any](img ndimage.Image[V], compare func(a, b V) int, opts ...Option) (*Result[V], error) {
	if img == nil || compare == nil {
		return nil, ErrNilImage
	}
	o := gatherOptions(opts)
	shape := img.Shape().Clone()
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if err := checkKShape(shape); err != nil {
		return nil, err
	}
	start := make([]int, shape.Dims())
	if o.start != nil {
		if !shape.Contains(o.start) {
			return nil, fmt.Errorf("start %v in %v: %w", o.start, shape, ErrStart)
		}
		copy(start, o.start)
	}

	ranks, levels := Quantize(ndimage.Values(img), compare)
	o.logger.Debug("tos: quantized", "pixels", len(ranks), "levels", len(levels))

	kshape, lo, hi := Immerse(shape, ranks)
	o.logger.Debug("tos: immersed", "kshape", kshape)

	ord, depthLevel, err := Propagate(kshape, lo, hi, len(levels), toK(shape, kshape, shape.Index(start), nil))
	if err != nil {
		return nil, err
	}
	o.logger.Debug("tos: propagated", "depth", len(depthLevel)-1)

	ordImg, err := ndimage.FromSlice(ord, kshape...)
	if err != nil {
		return nil, err
	}
	t, err := maxtree.Build[int](ordImg, ndimage.Face, maxtree.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	nodeLevels := make([]V, t.Len())
	for n := range nodeLevels {
		nodeLevels[n] = levels[depthLevel[t.ValueOf(n)]]
	}
	o.logger.Debug("tos: done", "nodes", t.Len())

	return &Result[V]{Tree: t, Levels: nodeLevels, shape: shape}, nil
}

// ImageShape returns the shape of the original image.
func (r *Result[V]) ImageShape() ndimage.Shape { return r.shape }

// KShape returns the shape of the interpolation grid the tree lives on.
func (r *Result[V]) KShape() ndimage.Shape { return r.Tree.Shape() }

// NodeOfPixel returns the node owning original pixel p.
func (r *Result[V]) NodeOfPixel(p int) int {
	var buf [8]int

	return r.NodeOf(toK(r.shape, r.Tree.Shape(), p, buf[:0]))
}

// Level returns Levels[n], boxed.
func (r *Result[V]) Level(n int) any { return r.Levels[n] }

// Prune removes the nodes failing keep (ctree.Direct semantics) and
// carries Levels along.
func (r *Result[V]) Prune(keep func(n int) bool) (ctree.Any, error) {
	out, err := r.Filter(ctree.Direct, keep)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Filter is ctree.Tree.Filter on the tree of shapes.
func (r *Result[V]) Filter(strategy ctree.Strategy, keep func(n int) bool) (*Result[V], error) {
	t, origin, err := r.Tree.FilterWithOrigin(strategy, keep)
	if err != nil {
		return nil, err
	}
	levels := make([]V, len(origin))
	for i, n := range origin {
		levels[i] = r.Levels[n]
	}

	return &Result[V]{Tree: t, Levels: levels, shape: r.shape}, nil
}

// PixelArea returns, for every node, the number of original pixels in its
// shape (interpolated K-points are not counted).
func (r *Result[V]) PixelArea() []int {
	area := make([]int, r.Len())
	n := r.shape.Len()
	var buf [8]int
	for p := 0; p < n; p++ {
		area[r.NodeOf(toK(r.shape, r.Tree.Shape(), p, buf[:0]))]++
	}
	for i := len(area) - 1; i > 0; i-- {
		area[r.ParentOf(i)] += area[i]
	}

	return area
}

// Reconstruct paints every original pixel with the level of its node.
// On an unfiltered tree it returns the input image.
func (r *Result[V]) Reconstruct() *ndimage.Buffer[V] {
	return r.paint(func(n int) int { return n })
}

// GrainFilter removes every shape of fewer than lambda original pixels;
// the pixels of a removed shape take the level of the nearest kept
// ancestor. Grain filters are self-dual: they act on bright and dark
// components alike.
func (r *Result[V]) GrainFilter(lambda int) (*ndimage.Buffer[V], error) {
	area := r.PixelArea()
	pass, err := r.Mark(ctree.Direct, func(n int) bool { return area[n] >= lambda })
	if err != nil {
		return nil, err
	}
	surv := r.Survivors(pass)

	return r.paint(func(n int) int { return surv[n] }), nil
}

func (r *Result[V]) paint(node func(n int) int) *ndimage.Buffer[V] {
	n := r.shape.Len()
	data := make([]V, n)
	var buf [8]int
	for p := 0; p < n; p++ {
		data[p] = r.Levels[node(r.NodeOf(toK(r.shape, r.Tree.Shape(), p, buf[:0])))]
	}
	out, _ := ndimage.FromSlice(data, r.shape...)

	return out
}
