// Package render draws component trees as Graphviz node-link diagrams.
//
// # Usage
//
//	dot, err := render.ToDOT(tree, render.Options{Detailed: true})
//	svg, err := render.RenderSVG(ctx, dot, 1200)
//
// Every node becomes a box labeled with its level; Detailed adds area and
// depth. Edges run from parent to child with the root on top.
//
// # Dependencies
//
// RenderSVG uses [github.com/goccy/go-graphviz] for in-process layout.
package render
