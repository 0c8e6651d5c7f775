package canvas

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlset/ctree"
	"github.com/katalvlaran/lvlset/maxtree"
	"github.com/katalvlaran/lvlset/ndimage"
	"github.com/katalvlaran/lvlset/tos"
)

// Build computes the component tree of d in direction dir.
// opts are passed through to the builder.
func Build(d ndimage.Dynamic, conn ndimage.Connectivity, dir ctree.Direction, opts ...maxtree.Option) (ctree.Any, error) {
	return dispatch(d, request{conn: conn, opts: append(slices.Clip(opts), maxtree.WithDirection(dir))})
}

// BuildParallel is Build with maxtree.BuildParallel.
func BuildParallel(d ndimage.Dynamic, conn ndimage.Connectivity, dir ctree.Direction, opts ...maxtree.Option) (ctree.Any, error) {
	return dispatch(d, request{conn: conn, opts: append(slices.Clip(opts), maxtree.WithDirection(dir)), parallel: true})
}

type request struct {
	conn     ndimage.Connectivity
	opts     []maxtree.Option
	parallel bool
}

func dispatch(d ndimage.Dynamic, r request) (ctree.Any, error) {
	switch b := d.Buffer().(type) {
	case *ndimage.Buffer[uint8]:
		return buildScalar(b, r)
	case *ndimage.Buffer[uint16]:
		return buildScalar(b, r)
	case *ndimage.Buffer[int32]:
		return buildScalar(b, r)
	case *ndimage.Buffer[float32]:
		return buildScalar(b, r)
	case *ndimage.Buffer[float64]:
		return buildScalar(b, r)
	case *ndimage.Buffer[ndimage.RGB]:
		return buildOrdered(b, ndimage.CompareRGB, r)
	default:
		return nil, fmt.Errorf("%v: %w", d.Kind(), ErrUnsupportedKind)
	}
}

func buildScalar[V cmp.Ordered](b *ndimage.Buffer[V], r request) (ctree.Any, error) {
	return buildOrdered(b, cmp.Compare[V], r)
}

func buildOrdered[V any](b *ndimage.Buffer[V], compare func(a, b V) int, r request) (ctree.Any, error) {
	var (
		t   *ctree.Tree[V]
		err error
	)
	if r.parallel {
		t, err = maxtree.BuildParallelFunc[V](b, r.conn, compare, r.opts...)
	} else {
		t, err = maxtree.BuildFunc[V](b, r.conn, compare, r.opts...)
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

// BuildToS computes the tree of shapes of d. Color buffers go through
// tos.BuildVector.
func BuildToS(d ndimage.Dynamic, opts ...tos.Option) (ctree.Any, error) {
	switch b := d.Buffer().(type) {
	case *ndimage.Buffer[uint8]:
		return shapes(tos.Build[uint8](b, opts...))
	case *ndimage.Buffer[uint16]:
		return shapes(tos.Build[uint16](b, opts...))
	case *ndimage.Buffer[int32]:
		return shapes(tos.Build[int32](b, opts...))
	case *ndimage.Buffer[float32]:
		return shapes(tos.Build[float32](b, opts...))
	case *ndimage.Buffer[float64]:
		return shapes(tos.Build[float64](b, opts...))
	case *ndimage.Buffer[ndimage.RGB]:
		return shapes(tos.BuildVector(b, opts...))
	default:
		return nil, fmt.Errorf("%v: %w", d.Kind(), ErrUnsupportedKind)
	}
}

func shapes[V any](r *tos.Result[V], err error) (ctree.Any, error) {
	if err != nil {
		return nil, err
	}

	return r, nil
}

// AreaFilter applies maxtree.AreaOpening (dir == ctree.MaxTree) or
// maxtree.AreaClosing (dir == ctree.MinTree) to a scalar buffer.
// opts are passed through to the builder; a direction among them is
// overridden by dir.
func AreaFilter(d ndimage.Dynamic, conn ndimage.Connectivity, dir ctree.Direction, lambda int, opts ...maxtree.Option) (ndimage.Dynamic, error) {
	switch b := d.Buffer().(type) {
	case *ndimage.Buffer[uint8]:
		return wrap(areaFilter(b, conn, dir, lambda, opts))
	case *ndimage.Buffer[uint16]:
		return wrap(areaFilter(b, conn, dir, lambda, opts))
	case *ndimage.Buffer[int32]:
		return wrap(areaFilter(b, conn, dir, lambda, opts))
	case *ndimage.Buffer[float32]:
		return wrap(areaFilter(b, conn, dir, lambda, opts))
	case *ndimage.Buffer[float64]:
		return wrap(areaFilter(b, conn, dir, lambda, opts))
	default:
		return ndimage.Dynamic{}, fmt.Errorf("area filter on %v: %w", d.Kind(), ErrUnsupportedKind)
	}
}

func areaFilter[V cmp.Ordered](b *ndimage.Buffer[V], conn ndimage.Connectivity, dir ctree.Direction, lambda int, opts []maxtree.Option) (*ndimage.Buffer[V], error) {
	if dir == ctree.MinTree {
		return maxtree.AreaClosing[V](b, conn, lambda, opts...)
	}

	return maxtree.AreaOpening[V](b, conn, lambda, opts...)
}

// GrainFilter removes every shape of the tree of shapes of d smaller than
// lambda pixels. It accepts every kind, colors included.
func GrainFilter(d ndimage.Dynamic, lambda int, opts ...tos.Option) (ndimage.Dynamic, error) {
	switch b := d.Buffer().(type) {
	case *ndimage.Buffer[uint8]:
		return wrap(grain(tos.Build[uint8](b, opts...))(lambda))
	case *ndimage.Buffer[uint16]:
		return wrap(grain(tos.Build[uint16](b, opts...))(lambda))
	case *ndimage.Buffer[int32]:
		return wrap(grain(tos.Build[int32](b, opts...))(lambda))
	case *ndimage.Buffer[float32]:
		return wrap(grain(tos.Build[float32](b, opts...))(lambda))
	case *ndimage.Buffer[float64]:
		return wrap(grain(tos.Build[float64](b, opts...))(lambda))
	case *ndimage.Buffer[ndimage.RGB]:
		return wrap(grain(tos.BuildVector(b, opts...))(lambda))
	default:
		return ndimage.Dynamic{}, fmt.Errorf("grain filter on %v: %w", d.Kind(), ErrUnsupportedKind)
	}
}

func grain[V any](r *tos.Result[V], err error) func(lambda int) (*ndimage.Buffer[V], error) {
	return func(lambda int) (*ndimage.Buffer[V], error) {
		if err != nil {
			return nil, err
		}

		return r.GrainFilter(lambda)
	}
}

func wrap[V any](b *ndimage.Buffer[V], err error) (ndimage.Dynamic, error) {
	if err != nil {
		return ndimage.Dynamic{}, err
	}

	return ndimage.NewDynamic(b)
}
