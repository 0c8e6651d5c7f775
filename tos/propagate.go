package tos

import (
	"fmt"

	"github.com/katalvlaran/lvlset/ndimage"
)

// hqueue is a hierarchical queue of K-points keyed by rank. Each level is
// a stack.
type hqueue struct {
	heads [][]int
	size  int
}

func newHQueue(levels int) *hqueue {
	return &hqueue{heads: make([][]int, levels)}
}

func (h *hqueue) empty() bool { return h.size == 0 }

func (h *hqueue) push(level, p int) {
	h.heads[level] = append(h.heads[level], p)
	h.size++
}

func (h *hqueue) popAt(level int) int {
	s := h.heads[level]
	p := s[len(s)-1]
	h.heads[level] = s[:len(s)-1]
	h.size--

	return p
}

// tryPop pops from level if it is not empty.
func (h *hqueue) tryPop(level int) (int, bool) {
	if len(h.heads[level]) == 0 {
		return 0, false
	}

	return h.popAt(level), true
}

// pop pops from the closest non-empty level, searching level and above
// first, then below. The queue must not be empty.
func (h *hqueue) pop(level int) (lvl, p int) {
	for l := level; l < len(h.heads); l++ {
		if len(h.heads[l]) > 0 {
			return l, h.popAt(l)
		}
	}
	for l := level - 1; l >= 0; l-- {
		if len(h.heads[l]) > 0 {
			return l, h.popAt(l)
		}
	}
	panic("tos: pop on empty queue")
}

// Propagate floods the interval grid (lo, hi over kshape) from K-point
// start, level line by level line. ord[k] is the depth at which k was
// reached; depthLevel[d] is the rank propagated at depth d. Ranks must lie
// in [0, levels).
//
// The flood starts at rank lo[start]. At each step it keeps the current
// rank as long as points are queued there; otherwise it moves to the
// nearest queued rank (upwards first) and the depth increases by one. A
// newly reached neighbor is queued at the current rank clamped into its
// interval.
//
// Complexity: O(K·(d + L)) worst case for K points and L levels.
func Propagate(kshape ndimage.Shape, lo, hi []int, levels, start int) (ord, depthLevel []int, err error) {
	n := kshape.Len()
	if len(lo) != n || len(hi) != n {
		return nil, nil, fmt.Errorf("%d/%d intervals for %d points: %w", len(lo), len(hi), n, ErrIntervals)
	}
	if start < 0 || start >= n {
		return nil, nil, fmt.Errorf("K-index %d: %w", start, ErrStart)
	}
	nh, err := ndimage.NewNeighborhood(kshape, ndimage.Face)
	if err != nil {
		return nil, nil, err
	}

	const unqueued = -1
	ord = make([]int, n)
	for i := range ord {
		ord[i] = unqueued
	}

	q := newHQueue(levels)
	prev := lo[start]
	q.push(prev, start)
	ord[start] = 0
	depthLevel = append(depthLevel, prev)

	depth := 0
	nbuf := make([]int, 0, nh.Size())
	for !q.empty() {
		cur := prev
		p, ok := q.tryPop(prev)
		if !ok {
			cur, p = q.pop(prev)
			depth++
			depthLevel = append(depthLevel, cur)
		}
		ord[p] = depth

		nbuf = nh.Neighbors(p, nbuf[:0])
		for _, r := range nbuf {
			if ord[r] != unqueued {
				continue
			}
			switch {
			case hi[r] < cur:
				q.push(hi[r], r)
			case cur < lo[r]:
				q.push(lo[r], r)
			default:
				q.push(cur, r)
			}
			ord[r] = 0
		}
		prev = cur
	}

	return ord, depthLevel, nil
}
