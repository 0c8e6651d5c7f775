// SPDX-License-Identifier: MIT

package ctree

import "fmt"

// validateStructure checks the invariants that do not depend on values.
func (t *Tree[V]) validateStructure() error {
	n := len(t.parent)
	if n == 0 {
		return fmt.Errorf("no nodes: %w", ErrCorrupt)
	}
	if len(t.values) != n {
		return fmt.Errorf("%d values for %d nodes: %w", len(t.values), n, ErrCorrupt)
	}
	if len(t.nodeMap) != t.shape.Len() {
		return fmt.Errorf("node map has %d entries, domain has %d pixels: %w", len(t.nodeMap), t.shape.Len(), ErrCorrupt)
	}
	if t.parent[Root] != Root {
		return fmt.Errorf("root parent is %d: %w", t.parent[Root], ErrCorrupt)
	}
	for i := 1; i < n; i++ {
		if p := t.parent[i]; p < 0 || p >= i {
			return fmt.Errorf("node %d has parent %d: %w", i, p, ErrCorrupt)
		}
	}
	for p, id := range t.nodeMap {
		if id < 0 || id >= n {
			return fmt.Errorf("pixel %d maps to node %d: %w", p, id, ErrCorrupt)
		}
	}

	return nil
}

// Validate checks every tree invariant:
//   - rooted forest, parents numbered before children;
//   - each pixel mapped to exactly one existing node, each node owning at
//     least one pixel;
//   - strict monotonicity along every edge in t's direction, when compare
//     is non-nil (compare(a, b) < 0 iff a < b).
//
// Returns ErrCorrupt wrapped with the first violation found.
// Complexity: O(N + nodes).
func (t *Tree[V]) Validate(compare func(a, b V) int) error {
	if err := t.validateStructure(); err != nil {
		return err
	}
	owned := make([]bool, len(t.parent))
	for _, id := range t.nodeMap {
		owned[id] = true
	}
	for n, ok := range owned {
		if !ok {
			return fmt.Errorf("node %d owns no pixel: %w", n, ErrCorrupt)
		}
	}
	if compare == nil {
		return nil
	}
	for i := 1; i < len(t.parent); i++ {
		c := compare(t.values[i], t.values[t.parent[i]])
		if t.dir == MinTree {
			c = -c
		}
		if c <= 0 {
			return fmt.Errorf("node %d (%v) does not dominate parent %d (%v): %w",
				i, t.values[i], t.parent[i], t.values[t.parent[i]], ErrCorrupt)
		}
	}

	return nil
}
