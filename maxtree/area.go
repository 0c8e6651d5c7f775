// SPDX-License-Identifier: MIT

package maxtree

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlset/ctree"
	"github.com/katalvlaran/lvlset/ndimage"
)

// AreaOpening removes every bright component smaller than lambda pixels:
// the max-tree of img is pruned to nodes of area ≥ lambda and reconstructed.
// lambda 0 or 1 returns a copy of img.
func AreaOpening[V cmp.Ordered](img ndimage.Image[V], conn ndimage.Connectivity, lambda int, opts ...Option) (*ndimage.Buffer[V], error) {
	return areaFilter(img, conn, lambda, append(slices.Clip(opts), WithDirection(ctree.MaxTree)))
}

// AreaClosing is the dual of AreaOpening: dark components smaller than
// lambda pixels are filled, using the min-tree.
func AreaClosing[V cmp.Ordered](img ndimage.Image[V], conn ndimage.Connectivity, lambda int, opts ...Option) (*ndimage.Buffer[V], error) {
	return areaFilter(img, conn, lambda, append(slices.Clip(opts), WithDirection(ctree.MinTree)))
}

func areaFilter[V cmp.Ordered](img ndimage.Image[V], conn ndimage.Connectivity, lambda int, opts []Option) (*ndimage.Buffer[V], error) {
	if lambda < 0 {
		return nil, fmt.Errorf("lambda=%d: %w", lambda, ErrLambda)
	}
	t, err := Build(img, conn, opts...)
	if err != nil {
		return nil, err
	}
	area := t.Area()
	out, err := t.FilterDirect(func(n int) bool { return area[n] >= lambda })
	if err != nil {
		return nil, err
	}

	return out.Reconstruct(), nil
}
