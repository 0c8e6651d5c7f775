package cli

import (
	"github.com/spf13/cobra"
)

func newTreeCmd() *cobra.Command {
	var opts treeOpts

	cmd := &cobra.Command{
		Use:   "tree [image]",
		Short: "Build the max-tree or min-tree of an image and print statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := opts.merge(cmd, configFromContext(ctx))
			d, err := loadImage(ctx, args[0], opts.gray)
			if err != nil {
				return err
			}
			t, err := buildTree(ctx, d, &opts, cfg)
			if err != nil {
				return err
			}
			statsOf(t).write(cmd.OutOrStdout())
			return nil
		},
	}
	addTreeFlags(cmd, &opts)

	return cmd
}

func newToSCmd() *cobra.Command {
	opts := treeOpts{shapes: true}

	cmd := &cobra.Command{
		Use:   "tos [image]",
		Short: "Build the tree of shapes of an image and print statistics",
		Long:  `Build the tree of shapes of an image. Statistics are computed on the interpolation grid (2n-1 points per axis).`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := opts.merge(cmd, configFromContext(ctx))
			d, err := loadImage(ctx, args[0], opts.gray)
			if err != nil {
				return err
			}
			t, err := buildTree(ctx, d, &opts, cfg)
			if err != nil {
				return err
			}
			statsOf(t).write(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.gray, "gray", false, "convert color images to gray")
	addShapeFlags(cmd, &opts)

	return cmd
}
