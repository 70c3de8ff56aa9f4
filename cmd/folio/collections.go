package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	"github.com/alexisbeaulieu97/folio/internal/form"
)

// pendingID stands in for the id of a new entry during validation; the store
// assigns the real one.
const pendingID = "pending"

// collection describes one id-keyed list of the document for the generic
// list/add/update/delete commands.
type collection[T any] struct {
	noun    string
	plural  string
	schema  form.Schema[T]
	items   func(content.Document) []T
	find    func(content.Document, string) (T, bool)
	id      func(T) string
	withID  func(T, string) T
	summary func(T) string
	add     func(*AppContext, context.Context, T) (content.Document, error)
	update  func(*AppContext, context.Context, T) (content.Document, error)
	remove  func(*AppContext, context.Context, string) (content.Document, error)
}

var projects = collection[content.Project]{
	noun:    "project",
	plural:  "projects",
	schema:  form.ProjectSchema,
	items:   func(d content.Document) []content.Project { return d.Projects },
	find:    content.Document.ProjectByID,
	id:      func(p content.Project) string { return p.ID },
	withID:  func(p content.Project, id string) content.Project { p.ID = id; return p },
	summary: func(p content.Project) string { return p.Title },
	add: func(a *AppContext, ctx context.Context, p content.Project) (content.Document, error) {
		return a.Store.AddProject(ctx, p)
	},
	update: func(a *AppContext, ctx context.Context, p content.Project) (content.Document, error) {
		return a.Store.UpdateProject(ctx, p)
	},
	remove: func(a *AppContext, ctx context.Context, id string) (content.Document, error) {
		return a.Store.DeleteProject(ctx, id)
	},
}

var education = collection[content.EducationItem]{
	noun:    "education",
	plural:  "education entries",
	schema:  form.EducationSchema,
	items:   func(d content.Document) []content.EducationItem { return d.Education },
	find:    content.Document.EducationByID,
	id:      func(e content.EducationItem) string { return e.ID },
	withID:  func(e content.EducationItem, id string) content.EducationItem { e.ID = id; return e },
	summary: func(e content.EducationItem) string { return fmt.Sprintf("%s, %s", e.School, valueOrFallback(e.Year, "n/a")) },
	add: func(a *AppContext, ctx context.Context, e content.EducationItem) (content.Document, error) {
		return a.Store.AddEducation(ctx, e)
	},
	update: func(a *AppContext, ctx context.Context, e content.EducationItem) (content.Document, error) {
		return a.Store.UpdateEducation(ctx, e)
	},
	remove: func(a *AppContext, ctx context.Context, id string) (content.Document, error) {
		return a.Store.DeleteEducation(ctx, id)
	},
}

func newProjectCmd(app *AppContext) *cobra.Command {
	return newCollectionCmd(app, projects)
}

func newEducationCmd(app *AppContext) *cobra.Command {
	return newCollectionCmd(app, education)
}

func newCollectionCmd[T any](app *AppContext, c collection[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.noun,
		Short: fmt.Sprintf("Manage %s", c.plural),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Short:   fmt.Sprintf("List %s in page order", c.plural),
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := c.items(app.Store.Snapshot())
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintf(out, "No %s.\n", c.plural)
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(out, "%-12s %s\n", c.id(item), c.summary(item))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: fmt.Sprintf("Show one %s entry", c.noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, ok := c.find(app.Store.Snapshot(), args[0])
			if !ok {
				return newCommandError("show "+c.noun, fmt.Sprintf("looking up %q", args[0]), content.NewNotFoundError(c.noun, args[0]), fmt.Sprintf("Run 'folio %s list' to see the ids.", c.noun))
			}
			printFields(cmd.OutOrStdout(), fmt.Sprintf("%s %s", c.schema.Title, c.id(item)), c.schema.Descriptors(), c.schema.Values(item))
			return nil
		},
	})

	var addSet []string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Append a %s entry", c.noun),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command."+c.noun+".add")
			op := "add " + c.noun
			if err := app.RequireAdmin(op); err != nil {
				return err
			}
			values, err := parseAssignments(addSet)
			if err != nil {
				return newCommandError(op, "parsing --set", err, "Pass values as --set key=value.")
			}
			var zero T
			item, err := form.Fill(c.schema, c.withID(zero, pendingID), values)
			if err != nil {
				return newCommandError(op, "validating values", err, fmt.Sprintf("Run 'folio %s get <id>' on an existing entry to see the fields.", c.noun))
			}
			doc, err := c.add(app, ctx, c.withID(item, ""))
			if err != nil {
				logger.Error(ctx, "add failed", "error", err)
				return newCommandError(op, "saving content", err, "Check that the state path is writable.")
			}
			items := c.items(doc)
			added := items[len(items)-1]
			logger.Info(ctx, c.noun+" added", "id", c.id(added))
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", c.noun, c.id(added))
			return nil
		},
	}
	addCmd.Flags().StringArrayVarP(&addSet, "set", "s", nil, "Field assignment key=value (repeatable)")
	cmd.AddCommand(addCmd)

	var updateSet []string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: fmt.Sprintf("Change fields of a %s entry in place", c.noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command."+c.noun+".update")
			op := "update " + c.noun
			if err := app.RequireAdmin(op); err != nil {
				return err
			}
			values, err := parseAssignments(updateSet)
			if err != nil {
				return newCommandError(op, "parsing --set", err, "Pass values as --set key=value.")
			}
			id := args[0]
			current, found := c.find(app.Store.Snapshot(), id)
			if !found {
				current = c.withID(current, id)
			}
			item, err := form.Fill(c.schema, current, values)
			if err != nil {
				return newCommandError(op, "validating values", err, fmt.Sprintf("Run 'folio %s get %s' to see the fields.", c.noun, id))
			}
			if _, err := c.update(app, ctx, c.withID(item, id)); err != nil {
				logger.Error(ctx, "update failed", "id", id, "error", err)
				return newCommandError(op, "saving content", err, "Check that the state path is writable.")
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s with id %s; nothing changed\n", c.noun, id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", c.noun, id)
			return nil
		},
	}
	updateCmd.Flags().StringArrayVarP(&updateSet, "set", "s", nil, "Field assignment key=value (repeatable)")
	cmd.AddCommand(updateCmd)

	cmd.AddCommand(&cobra.Command{
		Use:     "delete <id>",
		Short:   fmt.Sprintf("Remove a %s entry", c.noun),
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command."+c.noun+".delete")
			op := "delete " + c.noun
			if err := app.RequireAdmin(op); err != nil {
				return err
			}
			id := args[0]
			_, found := c.find(app.Store.Snapshot(), id)
			if _, err := c.remove(app, ctx, id); err != nil {
				logger.Error(ctx, "delete failed", "id", id, "error", err)
				return newCommandError(op, "saving content", err, "Check that the state path is writable.")
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s with id %s; nothing changed\n", c.noun, id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", c.noun, id)
			return nil
		},
	})

	return cmd
}
