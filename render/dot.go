package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvlset/ctree"
)

// ErrTooLarge indicates a tree with more nodes than Options.MaxNodes.
var ErrTooLarge = errors.New("render: tree too large")

// Options configures DOT generation.
type Options struct {
	// Detailed adds area and depth to node labels.
	Detailed bool
	// MaxNodes rejects larger trees when positive. Graphviz layouts grow
	// quickly past a few thousand nodes.
	MaxNodes int
}

// ToDOT converts a component tree to Graphviz DOT source.
func ToDOT(t ctree.Any, opts Options) (string, error) {
	n := t.Len()
	if opts.MaxNodes > 0 && n > opts.MaxNodes {
		return "", fmt.Errorf("%d nodes, limit %d: %w", n, opts.MaxNodes, ErrTooLarge)
	}
	var area, depth []int
	if opts.Detailed {
		area, depth = t.Area(), t.Depth()
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("\n")

	for id := 0; id < n; id++ {
		label := fmt.Sprintf("%v", t.Level(id))
		if opts.Detailed {
			label = fmt.Sprintf("#%d: %v\narea: %d\ndepth: %d", id, t.Level(id), area[id], depth[id])
		}
		attrs := fmt.Sprintf("label=%q", label)
		if id == ctree.Root {
			attrs += ", fillcolor=lightgrey"
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", id, attrs)
	}

	buf.WriteString("\n")
	for id := 1; id < n; id++ {
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", t.ParentOf(id), id)
	}

	buf.WriteString("}\n")

	return buf.String(), nil
}

// RenderSVG lays dot out with Graphviz and returns the SVG document. The
// root element is sized in user units from its viewBox; when maxWidth is
// positive, a wider drawing is scaled down to maxWidth, keeping its aspect
// ratio.
func RenderSVG(ctx context.Context, dot string, maxWidth float64) ([]byte, error) {
	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return fitSVG(buf.Bytes(), maxWidth), nil
}

var (
	viewBoxRe  = regexp.MustCompile(`viewBox="[-0-9.]+\s+[-0-9.]+\s+([0-9.]+)\s+([0-9.]+)"`)
	sizeAttrRe = regexp.MustCompile(`\s(?:width|height)="[^"]*"`)
)

// fitSVG rewrites the width and height of the root svg element. Graphviz
// writes them in points, which most viewers scale differently from the
// viewBox.
func fitSVG(svg []byte, maxWidth float64) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[1]), 64)
	h, _ := strconv.ParseFloat(string(m[2]), 64)
	if w <= 0 || h <= 0 {
		return svg
	}
	if maxWidth > 0 && w > maxWidth {
		h *= maxWidth / w
		w = maxWidth
	}

	start := bytes.Index(svg, []byte("<svg"))
	if start < 0 {
		return svg
	}
	end := bytes.IndexByte(svg[start:], '>')
	if end < 0 {
		return svg
	}
	end += start

	tag := sizeAttrRe.ReplaceAll(svg[start+len("<svg"):end], nil)
	var out bytes.Buffer
	out.Grow(len(svg) + 32)
	out.Write(svg[:start])
	fmt.Fprintf(&out, `<svg width="%.0f" height="%.0f"`, w, h)
	out.Write(tag)
	out.Write(svg[end:])

	return out.Bytes()
}
