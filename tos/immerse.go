package tos

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvlset/ndimage"
)

// Quantize maps every value to its rank among the distinct values of vals
// under compare. levels[r] is the value of rank r, in ascending order.
// Complexity: O(N log N).
func Quantize[V any](vals []V, compare func(a, b V) int) (ranks []int, levels []V) {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(p, q int) int { return compare(vals[p], vals[q]) })

	ranks = make([]int, len(vals))
	for k, p := range idx {
		if k == 0 || compare(vals[idx[k-1]], vals[p]) != 0 {
			levels = append(levels, vals[p])
		}
		ranks[p] = len(levels) - 1
	}

	return ranks, levels
}

// KShape returns the interpolation grid of s: 2n−1 points per axis.
// Original pixel coordinate c sits at K-coordinate 2c.
func KShape(s ndimage.Shape) ndimage.Shape {
	k := make(ndimage.Shape, len(s))
	for d, n := range s {
		k[d] = 2*n - 1
	}

	return k
}

// checkKShape reports ndimage.ErrTooLarge when KShape(s) has more points
// than an int can index.
func checkKShape(s ndimage.Shape) error {
	for _, n := range s {
		if n > math.MaxInt/2 {
			return fmt.Errorf("interpolation of %v: %w", []int(s), ndimage.ErrTooLarge)
		}
	}

	return KShape(s).Validate()
}

// Immerse interpolates the rank image onto KShape(s). Every K-point with
// some odd coordinates lies between the original pixels obtained by
// rounding those coordinates down and up; its interval spans their ranks.
// Original pixels get the degenerate interval [r, r].
//
// Complexity: O(N·2^D) for D axes.
func Immerse(s ndimage.Shape, ranks []int) (kshape ndimage.Shape, lo, hi []int) {
	kshape = KShape(s)
	n := kshape.Len()
	lo = make([]int, n)
	hi = make([]int, n)

	dims := s.Dims()
	var kc, base, pc []int
	odd := make([]int, 0, dims)
	for k := 0; k < n; k++ {
		kc = kshape.Coord(k, kc[:0])
		base = append(base[:0], kc...)
		odd = odd[:0]
		for d, c := range kc {
			base[d] = c / 2
			if c%2 == 1 {
				odd = append(odd, d)
			}
		}
		first := ranks[s.Index(base)]
		lo[k], hi[k] = first, first
		// visit the 2^len(odd) corners around base
		for mask := 1; mask < 1<<len(odd); mask++ {
			pc = append(pc[:0], base...)
			for b, d := range odd {
				if mask&(1<<b) != 0 {
					pc[d]++
				}
			}
			r := ranks[s.Index(pc)]
			lo[k] = min(lo[k], r)
			hi[k] = max(hi[k], r)
		}
	}

	return kshape, lo, hi
}

// toK returns the K-grid index of original pixel p.
func toK(s, kshape ndimage.Shape, p int, buf []int) int {
	c := s.Coord(p, buf[:0])
	for d := range c {
		c[d] *= 2
	}

	return kshape.Index(c)
}
