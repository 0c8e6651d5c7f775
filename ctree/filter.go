// SPDX-License-Identifier: MIT

package ctree

import "fmt"

// Strategy selects how a per-node keep decision propagates through the tree.
type Strategy int

const (
	// Direct removes exactly the nodes whose predicate is false.
	Direct Strategy = iota
	// Min removes a node when it or any of its ancestors fails the predicate.
	Min
	// Max keeps a node when it or any of its descendants passes the predicate.
	Max
)

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	switch s {
	case Direct:
		return "direct"
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Mark evaluates keep once per node in creation order (parents first) and
// propagates the decisions according to strategy. The root is always kept,
// whatever keep returns for it.
//
// A panic inside keep is recovered and returned as ErrPredicate; t is never
// modified.
func (t *Tree[V]) Mark(strategy Strategy, keep func(n int) bool) ([]bool, error) {
	if keep == nil {
		return nil, ErrNilPredicate
	}
	if strategy < Direct || strategy > Max {
		return nil, fmt.Errorf("%v: %w", strategy, ErrStrategy)
	}
	pass, err := evaluate(len(t.parent), keep)
	if err != nil {
		return nil, err
	}
	switch strategy {
	case Min:
		for i := 1; i < len(pass); i++ {
			pass[i] = pass[i] && pass[t.parent[i]]
		}
	case Max:
		for i := len(pass) - 1; i > 0; i-- {
			if pass[i] {
				pass[t.parent[i]] = true
			}
		}
	}
	pass[Root] = true

	return pass, nil
}

func evaluate(n int, keep func(int) bool) (pass []bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			pass, err = nil, fmt.Errorf("%w: %v", ErrPredicate, r)
		}
	}()
	pass = make([]bool, n)
	for i := range pass {
		pass[i] = keep(i)
	}

	return pass, nil
}

// Survivors maps every node to its nearest kept ancestor-or-self under
// pass (as returned by Mark). pass[Root] must be true.
// Complexity: O(nodes), single top-down pass.
func (t *Tree[V]) Survivors(pass []bool) []int {
	surv := make([]int, len(t.parent))
	for i := range surv {
		if i == Root || pass[i] {
			surv[i] = i
		} else {
			surv[i] = surv[t.parent[i]]
		}
	}

	return surv
}

// FilterDirect returns a tree where every node failing keep is removed; its
// pixels and children are re-attached to its nearest kept ancestor. The
// root is never removed. Kept nodes are renumbered preserving their order.
//
// Errors: ErrNilPredicate, ErrPredicate (keep panicked). On error t is
// unchanged and no tree is returned.
func (t *Tree[V]) FilterDirect(keep func(n int) bool) (*Tree[V], error) {
	return t.Filter(Direct, keep)
}

// Filter is FilterDirect generalized to any Strategy.
func (t *Tree[V]) Filter(strategy Strategy, keep func(n int) bool) (*Tree[V], error) {
	out, _, err := t.FilterWithOrigin(strategy, keep)

	return out, err
}

// FilterWithOrigin is Filter that also returns, for every node of the
// result, the id it had in t. Callers use it to carry per-node attributes
// across a filter.
func (t *Tree[V]) FilterWithOrigin(strategy Strategy, keep func(n int) bool) (*Tree[V], []int, error) {
	pass, err := t.Mark(strategy, keep)
	if err != nil {
		return nil, nil, err
	}
	out, origin := t.prune(pass)

	return out, origin, nil
}

// Prune is FilterDirect with a type-erased result, so that value-agnostic
// consumers can filter any tree.
func (t *Tree[V]) Prune(keep func(n int) bool) (Any, error) {
	out, err := t.FilterDirect(keep)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// prune compacts t to the nodes marked in pass.
func (t *Tree[V]) prune(pass []bool) (*Tree[V], []int) {
	n := len(t.parent)
	surv := t.Survivors(pass)
	newID := make([]int, n)
	origin := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if surv[i] == i {
			newID[i] = len(origin)
			origin = append(origin, i)
		}
	}
	parent := make([]int, len(origin))
	values := make([]V, len(origin))
	for k, old := range origin {
		parent[k] = newID[surv[t.parent[old]]]
		values[k] = t.values[old]
	}
	nodeMap := make([]int, len(t.nodeMap))
	for p, id := range t.nodeMap {
		nodeMap[p] = newID[surv[id]]
	}

	return &Tree[V]{
		shape:   t.shape.Clone(),
		dir:     t.dir,
		parent:  parent,
		values:  values,
		nodeMap: nodeMap,
	}, origin
}
