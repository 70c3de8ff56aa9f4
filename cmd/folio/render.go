package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type renderOptions struct {
	outDir string
}

func newRenderCmd(app *AppContext) *cobra.Command {
	opts := &renderOptions{outDir: "site"}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the portfolio as a static page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.render")

			dir, err := expandHome(opts.outDir)
			if err != nil {
				return newCommandError("render", "resolving output directory", err, "Ensure your HOME directory is set correctly.")
			}
			files, err := app.Renderer.WriteDir(ctx, dir, app.Store.Snapshot())
			if err != nil {
				logger.Error(ctx, "render failed", "dir", dir, "error", err)
				return newCommandError("render", fmt.Sprintf("writing %s", dir), err, "Check that the output directory is writable.")
			}
			for _, file := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", file)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", opts.outDir, "Output directory")

	return cmd
}
