// Package ndimage treats a dense N-dimensional buffer of samples as a
// pixel domain, enabling index-based traversal and neighbor enumeration for
// the component-tree builders.
//
// What:
//
//   - Shape describes a row-major box of extents; a pixel is a linear index
//     in [0, Shape.Len()).
//   - Buffer[V] stores one sample per pixel; Image[V] is the read-only
//     capability (Shape + At) the builders consume.
//   - Connectivity selects Face (2N neighbors) or Full (3^N−1 neighbors)
//     adjacency; Neighborhood precomputes offsets for one Shape.
//   - Dynamic wraps a Buffer of a runtime-selected SampleKind.
//
// Why:
//
//   - Builders work on pixel indices only, never on coordinates, so the
//     same code runs over 1-D signals, 2-D images and 3-D volumes.
//
// Complexity:
//
//   - Index/Coord: O(D).
//   - Neighbors:   O(D×d), d = number of offsets.
//
// Errors:
//
//   - ErrEmptyDomain: shape has no axis or a non-positive extent.
//   - ErrNonRectangular: rows of a 2-D slice differ in length.
//   - ErrSizeMismatch: sample slice does not match the shape.
//   - ErrConnectivity: connectivity does not fit the dimensionality.
//   - ErrUnsupportedKind: Dynamic built from an unknown element type.
package ndimage
