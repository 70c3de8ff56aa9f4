package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/domain/content"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(app *AppContext) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Summarise the current portfolio content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.show")
			doc := app.Store.Snapshot()
			logger.Debug(ctx, "showing content", "source", app.Store.Source(), "json", opts.jsonOutput)

			if opts.jsonOutput {
				return renderShowJSON(cmd.OutOrStdout(), doc)
			}
			renderShowSummary(cmd.OutOrStdout(), doc)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the full document as JSON")

	return cmd
}

func renderShowJSON(w io.Writer, doc content.Document) error {
	raw, err := content.Encode(doc)
	if err != nil {
		return newCommandError("show", "encoding content", err, "Run 'folio reset' if the stored content is damaged.")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return newCommandError("show", "formatting content", err, "Run 'folio reset' if the stored content is damaged.")
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func renderShowSummary(w io.Writer, doc content.Document) {
	fmt.Fprintf(w, "Name:      %s\n", valueOrFallback(doc.About.Name, "(no name)"))
	fmt.Fprintf(w, "Headline:  %s\n", valueOrFallback(doc.Hero.Headline, "(none)"))
	fmt.Fprintf(w, "Roles:     %s\n", valueOrFallback(strings.Join(doc.About.Roles, ", "), "(none)"))
	fmt.Fprintf(w, "Email:     %s\n", valueOrFallback(doc.About.Email, "(none)"))
	fmt.Fprintf(w, "Theme:     %s (primary %s)\n", doc.UI.Theme.Style, doc.UI.Theme.Primary)
	fmt.Fprintf(w, "Backdrop:  %s\n", doc.UI.Background.Type)

	fmt.Fprintf(w, "\nProjects (%d):\n", len(doc.Projects))
	if len(doc.Projects) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, p := range doc.Projects {
		fmt.Fprintf(w, "  %-12s %s\n", p.ID, p.Title)
	}

	fmt.Fprintf(w, "\nEducation (%d):\n", len(doc.Education))
	if len(doc.Education) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, e := range doc.Education {
		fmt.Fprintf(w, "  %-12s %s, %s\n", e.ID, e.School, valueOrFallback(e.Year, "n/a"))
	}
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
