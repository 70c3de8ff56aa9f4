package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type resetOptions struct {
	yes bool
}

func newResetCmd(app *AppContext) *cobra.Command {
	opts := &resetOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in default content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.reset")
			if err := app.RequireAdmin("reset content"); err != nil {
				return err
			}
			if !opts.yes {
				return newCommandError("reset content", "confirming", fmt.Errorf("reset discards every edit"), "Pass --yes to confirm.")
			}
			if _, err := app.Store.ResetToDefaults(ctx); err != nil {
				logger.Error(ctx, "reset failed", "error", err)
				return newCommandError("reset content", "saving defaults", err, "Check that the state path is writable.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Content reset to defaults")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Confirm the reset")

	return cmd
}
