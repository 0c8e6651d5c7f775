// Package ctree holds the component tree produced by the builders in
// maxtree and tos, together with the operations that consume it:
// accessors, attribute computation, attribute-driven filtering and image
// reconstruction.
//
// A Tree is a forest of nodes, not pixels. Node 0 is the root and is its
// own parent; every other node has a parent with a smaller id. Each pixel
// of the domain maps to exactly one node through the node map.
//
// Filtering has value semantics: Filter and FilterDirect return a new Tree
// and leave the receiver untouched, even when the predicate panics.
package ctree
