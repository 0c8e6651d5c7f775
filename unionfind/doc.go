// Package unionfind provides the disjoint-set primitives used by the
// component-tree builders: a path-compressing root lookup over a plain
// parent array, and a Forest that tracks which elements have been made
// into sets.
//
// Elements are dense integer indices (pixel indices); the structure is an
// arena of ints, never a pointer graph.
//
// Complexity:
//
//   - FindRoot: amortized near-constant; two passes over the path.
//   - MakeSet/Link: O(1).
//
// Not safe for concurrent mutation of the same indices. Distinct goroutines
// may work on disjoint index sets of one Forest.
package unionfind
