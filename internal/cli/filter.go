package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlset/canvas"
	"github.com/katalvlaran/lvlset/ctree"
	"github.com/katalvlaran/lvlset/imageio"
	"github.com/katalvlaran/lvlset/internal/config"
	"github.com/katalvlaran/lvlset/maxtree"
)

// filterOpts holds the flags of the filter command.
type filterOpts struct {
	treeOpts
	area    int  // area threshold
	closing bool // area closing instead of opening
	grain   bool // self-dual grain filter on the tree of shapes
}

func newFilterCmd() *cobra.Command {
	var opts filterOpts

	cmd := &cobra.Command{
		Use:   "filter [input] [output]",
		Short: "Remove components smaller than --area pixels",
		Long: `Apply an area opening (bright components), an area closing (--closing,
dark components) or a grain filter (--grain, both) and write the result.
The output format follows the extension: .png, .tif/.tiff or .bmp.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := opts.merge(cmd, configFromContext(ctx))
			if cmd.Flags().Changed("area") {
				cfg.Filter.Area = opts.area
				cfg.ToS.Grain = opts.area
			}
			return runFilter(ctx, args[0], args[1], &opts, cfg)
		},
	}
	addInputFlags(cmd, &opts.treeOpts)
	addShapeFlags(cmd, &opts.treeOpts)
	cmd.Flags().IntVarP(&opts.area, "area", "a", 0, "area threshold in pixels (default from config: filter.area, or tos.grain with --grain)")
	cmd.Flags().BoolVar(&opts.closing, "closing", false, "area closing instead of opening")
	cmd.Flags().BoolVar(&opts.grain, "grain", false, "grain filter on the tree of shapes")
	cmd.MarkFlagsMutuallyExclusive("closing", "grain")

	return cmd
}

func runFilter(ctx context.Context, in, out string, opts *filterOpts, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	d, err := loadImage(ctx, in, opts.gray)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	lambda := cfg.Filter.Area
	conn, _ := cfg.Tree.Conn()
	buildOpts := []maxtree.Option{maxtree.WithLogger(logger)}
	var kind string
	switch {
	case opts.grain:
		kind = "grain filter"
		lambda = cfg.ToS.Grain
		d, err = canvas.GrainFilter(d, lambda, shapeOptions(logger, cfg)...)
	case opts.closing:
		kind = "area closing"
		d, err = canvas.AreaFilter(d, conn, ctree.MinTree, lambda, buildOpts...)
	default:
		kind = "area opening"
		d, err = canvas.AreaFilter(d, conn, ctree.MaxTree, lambda, buildOpts...)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	prog.done(fmt.Sprintf("Applied %s with area %d", kind, lambda))

	if err := imageio.Save(out, d); err != nil {
		return err
	}
	logger.Info("wrote image", "path", out)

	return nil
}
