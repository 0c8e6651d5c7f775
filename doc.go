// Package lvlset builds component trees of N-D images: max-trees,
// min-trees and trees of shapes, with attribute filtering on top.
//
// A component tree nests the connected components of the level sets of an
// image. Every node is a flat zone at one level; its parent is the
// smallest component strictly containing it. Filtering the tree and
// painting the pixels back gives connected operators such as area
// openings, which remove small bright structures without blurring edges.
//
// The module is organized in subpackages:
//
//	ndimage/    dense N-D buffers, shapes, connectivities, run-time typed buffers
//	unionfind/  path-compressed union-find arrays
//	maxtree/    union-find max-tree/min-tree builder, tile-parallel variant, area filters
//	ctree/      the Tree type: accessors, filtering strategies, attributes, reconstruction
//	tos/        tree of shapes via interval immersion and level-line propagation
//	canvas/     dispatch of the builders over run-time sample kinds
//	imageio/    PNG/JPEG/GIF/TIFF/BMP decoding and encoding
//	render/     Graphviz export
//
// Quick example, the max-tree of
//
//	1 2
//	2 3
//
// has three nodes, 1 ─ 2 ─ 3, the two 2s sharing a node:
//
//	img, _ := ndimage.From2D([][]int{{1, 2}, {2, 3}})
//	t, _ := maxtree.Build[int](img, ndimage.Conn4)
//	t.Len() // 3
//
// The lvlset command (cmd/lvlset) exposes the builders and filters on
// image files.
package lvlset
