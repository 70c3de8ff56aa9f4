package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/form"
)

type editOptions struct {
	set []string
}

func newEditCmd(app *AppContext) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit <region>",
		Short: "Show or change one region of the page",
		Long: fmt.Sprintf(`Show or change one region of the page. Without --set the current values
are printed. List fields take comma separated values.

Regions: %s`, strings.Join(form.EditorNames(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.edit")

			editor, err := form.LookupEditor(args[0])
			if err != nil {
				return newCommandError("edit", fmt.Sprintf("looking up region %q", args[0]), err, "Choose one of: "+strings.Join(form.EditorNames(), ", "))
			}

			doc := app.Store.Snapshot()
			if len(opts.set) == 0 {
				printFields(cmd.OutOrStdout(), editor.Title(), editor.Fields(), editor.Current(doc))
				return nil
			}

			if err := app.RequireAdmin("edit " + editor.Name()); err != nil {
				return err
			}
			values, err := parseAssignments(opts.set)
			if err != nil {
				return newCommandError("edit "+editor.Name(), "parsing --set", err, "Pass values as --set key=value.")
			}
			mutation, err := editor.Mutation(doc, values)
			if err != nil {
				return newCommandError("edit "+editor.Name(), "validating values", err, fmt.Sprintf("Run 'folio edit %s' to list the fields.", editor.Name()))
			}
			next, err := app.Store.Dispatch(ctx, mutation)
			if err != nil {
				logger.Error(ctx, "edit failed", "region", editor.Name(), "error", err)
				return newCommandError("edit "+editor.Name(), "saving content", err, "Check that the state path is writable.")
			}

			logger.Info(ctx, "region edited", "region", editor.Name(), "fields", len(values))
			printFields(cmd.OutOrStdout(), editor.Title(), editor.Fields(), editor.Current(next))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&opts.set, "set", "s", nil, "Field assignment key=value (repeatable)")

	return cmd
}
