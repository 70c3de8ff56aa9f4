package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/folio/internal/form"
	"github.com/alexisbeaulieu97/folio/pkg/diff"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

type importOptions struct {
	format string
	dryRun bool
	strict bool
}

func newImportCmd(app *AppContext) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the content with a JSON, JSONC or YAML document",
		Long: `Replace the content with a document read from a file ("-" reads stdin).
The document is merged onto the defaults the same way stored content is loaded:
missing members keep their default values and arrays replace the defaults.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.import")
			source := args[0]

			data, err := readImportSource(cmd.InOrStdin(), source)
			if err != nil {
				return newCommandError("import", fmt.Sprintf("reading %s", source), err, "Check the file path and permissions.")
			}
			raw, err := toJSON(data, detectFormat(source, opts.format))
			if err != nil {
				return newCommandError("import", fmt.Sprintf("parsing %s", source), err, "The file must contain one JSON, JSONC or YAML object.")
			}

			preview, err := app.Store.Preview(raw)
			if err != nil {
				return newCommandError("import", fmt.Sprintf("merging %s", source), err, "The top level of the document must be an object.")
			}
			if opts.strict {
				if err := form.ValidateDocument(preview); err != nil {
					return newCommandError("import", "validating content", err, "Fix the reported field or import without --strict.")
				}
			}

			if opts.dryRun {
				text, stats, err := diff.YAML(app.Store.Snapshot(), preview, "current", source)
				if err != nil {
					return newCommandError("import", "comparing content", err, "Retry without --dry-run.")
				}
				out := cmd.OutOrStdout()
				if !stats.Changed() {
					fmt.Fprintln(out, "No changes.")
					return nil
				}
				fmt.Fprint(out, text)
				fmt.Fprintf(out, "\n%d line(s) added, %d line(s) removed\n", stats.Added, stats.Removed)
				return nil
			}

			if err := app.RequireAdmin("import"); err != nil {
				return err
			}
			doc, err := app.Store.Import(ctx, raw)
			if err != nil {
				logger.Error(ctx, "import failed", "source", source, "error", err)
				return newCommandError("import", "saving content", err, "Check that the state path is writable.")
			}
			logger.Info(ctx, "content imported", "source", source, "projects", len(doc.Projects), "education", len(doc.Education))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%d projects, %d education entries)\n", source, len(doc.Projects), len(doc.Education))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Input format (json, jsonc or yaml); detected from the extension when empty")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print a diff of the change without saving")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject documents that fail field validation")

	return cmd
}

func readImportSource(stdin io.Reader, source string) ([]byte, error) {
	if source == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(source)
}

func detectFormat(source, explicit string) string {
	if explicit != "" {
		return strings.ToLower(explicit)
	}
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return "jsonc"
	}
}

// toJSON normalises an import file to plain JSON. JSONC input loses its
// comments and trailing commas; YAML input is decoded and re-encoded.
func toJSON(data []byte, format string) ([]byte, error) {
	switch format {
	case formatJSON, "jsonc":
		return jsonc.ToJSON(data), nil
	case formatYAML, "yml":
		var tree interface{}
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, apperrors.NewParseError("", 0, err)
		}
		if tree == nil {
			tree = map[string]interface{}{}
		}
		out, err := json.Marshal(tree)
		if err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
