package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlset/internal/config"
	"github.com/katalvlaran/lvlset/render"
)

// dotOpts holds the flags of the dot command.
type dotOpts struct {
	treeOpts
	output   string // output file; stdout when empty
	format   string // dot or svg
	detailed bool
	maxNodes int
	maxWidth float64
}

func newDotCmd() *cobra.Command {
	var opts dotOpts

	cmd := &cobra.Command{
		Use:   "dot [image]",
		Short: "Export the component tree of an image as Graphviz DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := opts.merge(cmd, configFromContext(ctx))
			f := cmd.Flags()
			switch {
			case f.Changed("format"):
				cfg.Render.Format = opts.format
			case strings.EqualFold(filepath.Ext(opts.output), ".svg"):
				cfg.Render.Format = config.FormatSVG
			}
			if f.Changed("detailed") {
				cfg.Render.Detailed = opts.detailed
			}
			if f.Changed("max-nodes") {
				cfg.Render.MaxNodes = opts.maxNodes
			}
			if f.Changed("max-width") {
				cfg.Render.MaxWidth = opts.maxWidth
			}
			return runDot(ctx, cmd.OutOrStdout(), args[0], &opts, cfg)
		},
	}
	addTreeFlags(cmd, &opts.treeOpts)
	addShapeFlags(cmd, &opts.treeOpts)
	cmd.Flags().BoolVar(&opts.shapes, "tos", false, "export the tree of shapes")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot (default), svg")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show area and depth in node labels")
	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", 0, "refuse trees with more nodes (default from config)")
	cmd.Flags().Float64Var(&opts.maxWidth, "max-width", 0, "scale SVG output down to this width (default from config)")

	return cmd
}

func runDot(ctx context.Context, stdout io.Writer, path string, opts *dotOpts, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	d, err := loadImage(ctx, path, opts.gray)
	if err != nil {
		return err
	}
	t, err := buildTree(ctx, d, &opts.treeOpts, cfg)
	if err != nil {
		return err
	}

	dot, err := render.ToDOT(t, render.Options{Detailed: cfg.Render.Detailed, MaxNodes: cfg.Render.MaxNodes})
	if err != nil {
		return err
	}
	data := []byte(dot)
	if cfg.Render.Format == config.FormatSVG {
		prog := newProgress(logger)
		if data, err = render.RenderSVG(ctx, dot, cfg.Render.MaxWidth); err != nil {
			return err
		}
		prog.done("Rendered SVG")
	}

	if opts.output == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	logger.Info("wrote diagram", "path", opts.output, "format", cfg.Render.Format)

	return nil
}
