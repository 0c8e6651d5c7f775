// Package maxtree builds max-trees and min-trees of N-D buffers with the
// union-find algorithm, and provides the tile-parallel variant and the
// area opening/closing filters built on top of it.
//
// Algorithm (Build):
//
//  1. SortPixels: order pixels by level, root side first, ties by index.
//  2. Union-find pass: walk the order backwards; every processed neighbor's
//     root is attached under the current pixel.
//  3. Canonicalize: walk the order forwards, collapsing same-level parent
//     chains onto one canonical pixel per node.
//  4. Materialize: number nodes by (level, smallest pixel index) and fill a
//     ctree.Tree.
//
// BuildParallel runs step 2 on disjoint slabs concurrently, waits for all
// of them, merges the slabs along their borders on a single goroutine and
// finishes with steps 3-4. Its result is identical to Build.
//
// Complexity: O(N log N) for the sort, O(N·d·α(N)) for the union-find pass.
// Memory: three int arrays of N entries during the build.
package maxtree
