package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlset/canvas"
	"github.com/katalvlaran/lvlset/ctree"
	"github.com/katalvlaran/lvlset/imageio"
	"github.com/katalvlaran/lvlset/internal/config"
	"github.com/katalvlaran/lvlset/maxtree"
	"github.com/katalvlaran/lvlset/ndimage"
	"github.com/katalvlaran/lvlset/tos"
)

// treeOpts holds the flags shared by commands that build a tree.
// Flags left unset fall back to the configuration file.
type treeOpts struct {
	conn    string // connectivity name
	dir     string // max or min
	workers int    // >0 selects the tile-parallel build
	tiles   int    // slab count for the parallel build
	gray    bool   // convert color input to luminance
	shapes  bool   // build the tree of shapes instead
	start   []int  // tree-of-shapes start point
}

func addTreeFlags(cmd *cobra.Command, o *treeOpts) {
	addInputFlags(cmd, o)
	cmd.Flags().StringVar(&o.dir, "dir", "", "tree direction: max or min (default from config)")
	cmd.Flags().IntVar(&o.workers, "workers", 0, "parallel build with this many workers")
	cmd.Flags().IntVar(&o.tiles, "tiles", 0, "number of slabs for the parallel build")
}

// addInputFlags registers the flags of commands that read an image and
// need a connectivity but build no configurable tree.
func addInputFlags(cmd *cobra.Command, o *treeOpts) {
	cmd.Flags().StringVar(&o.conn, "conn", "", "connectivity: face, full, c4, c8, c6, c26 (default from config)")
	cmd.Flags().BoolVar(&o.gray, "gray", false, "convert color images to gray")
}

func addShapeFlags(cmd *cobra.Command, o *treeOpts) {
	cmd.Flags().IntSliceVar(&o.start, "start", nil, "start point of the propagation, e.g. 0,0 (default from config)")
}

// merge overlays the flags the user set on cfg.
func (o *treeOpts) merge(cmd *cobra.Command, cfg config.Config) config.Config {
	f := cmd.Flags()
	if f.Changed("conn") {
		cfg.Tree.Connectivity = o.conn
	}
	if f.Changed("dir") {
		cfg.Tree.Direction = o.dir
	}
	if f.Changed("workers") {
		cfg.Tree.Workers = o.workers
	}
	if f.Changed("tiles") {
		cfg.Tree.Tiles = o.tiles
	}
	if f.Changed("start") {
		cfg.ToS.Start = o.start
	}

	return cfg
}

// loadImage decodes path, logging its kind and shape.
func loadImage(ctx context.Context, path string, gray bool) (ndimage.Dynamic, error) {
	logger := loggerFromContext(ctx)
	var opts []imageio.Option
	if gray {
		opts = append(opts, imageio.AsGray())
	}
	d, err := imageio.Load(path, opts...)
	if err != nil {
		return ndimage.Dynamic{}, err
	}
	logger.Debug("loaded image", "path", path, "kind", d.Kind(), "shape", d.Shape())

	return d, nil
}

// buildTree builds the tree requested by o and cfg over d.
func buildTree(ctx context.Context, d ndimage.Dynamic, o *treeOpts, cfg config.Config) (ctree.Any, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if o.shapes {
		t, err := canvas.BuildToS(d, shapeOptions(logger, cfg)...)
		if err != nil {
			return nil, err
		}
		prog.done(fmt.Sprintf("Built tree of shapes with %d nodes", t.Len()))
		return t, nil
	}

	conn, _ := cfg.Tree.Conn()
	dir, _ := cfg.Tree.Dir()
	opts := []maxtree.Option{maxtree.WithLogger(logger)}
	if cfg.Tree.Tiles > 0 {
		opts = append(opts, maxtree.WithTiles(cfg.Tree.Tiles))
	}

	var (
		t   ctree.Any
		err error
	)
	if cfg.Tree.Workers > 0 {
		t, err = canvas.BuildParallel(d, conn, dir, append(opts, maxtree.WithWorkers(cfg.Tree.Workers))...)
	} else {
		t, err = canvas.Build(d, conn, dir, opts...)
	}
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Built %s-tree with %d nodes", dir, t.Len()))

	return t, nil
}

// shapeOptions turns the [tos] configuration into builder options.
func shapeOptions(logger *log.Logger, cfg config.Config) []tos.Option {
	opts := []tos.Option{tos.WithLogger(logger)}
	if len(cfg.ToS.Start) > 0 {
		opts = append(opts, tos.WithStart(cfg.ToS.Start...))
	}

	return opts
}

// treeStats summarizes a tree for display.
type treeStats struct {
	Nodes    int
	Pixels   int
	Leaves   int
	MaxDepth int
	Shape    ndimage.Shape
}

func statsOf(t ctree.Topology) treeStats {
	s := treeStats{Nodes: t.Len(), Pixels: t.NumPixels(), Shape: t.Shape()}
	for n := 0; n < t.Len(); n++ {
		if len(t.ChildrenOf(n)) == 0 {
			s.Leaves++
		}
	}
	if depth := t.Depth(); len(depth) > 0 {
		s.MaxDepth = slices.Max(depth)
	}

	return s
}

func (s treeStats) write(w io.Writer) {
	fmt.Fprintf(w, "shape:     %v\n", []int(s.Shape))
	fmt.Fprintf(w, "pixels:    %d\n", s.Pixels)
	fmt.Fprintf(w, "nodes:     %d\n", s.Nodes)
	fmt.Fprintf(w, "leaves:    %d\n", s.Leaves)
	fmt.Fprintf(w, "max depth: %d\n", s.MaxDepth)
}
