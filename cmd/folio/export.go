package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/folio/internal/domain/content"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type exportOptions struct {
	format string
	output string
}

func newExportCmd(app *AppContext) *cobra.Command {
	opts := &exportOptions{format: formatJSON}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current content as JSON or YAML",
		Long:  "Write the current content document. JSON output keeps members folio does not know about; YAML output contains the typed document only.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.export")

			data, err := encodeDocument(app.Store.Snapshot(), opts.format)
			if err != nil {
				return newCommandError("export", "encoding content", err, "Use --format json or --format yaml.")
			}

			if opts.output == "" || opts.output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				logger.Error(ctx, "export failed", "path", opts.output, "error", err)
				return newCommandError("export", fmt.Sprintf("writing %s", opts.output), err, "Check that the destination directory exists and is writable.")
			}
			logger.Info(ctx, "content exported", "path", opts.output, "format", opts.format, "bytes", len(data))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported content to %s\n", opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatJSON, "Output format (json or yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func encodeDocument(doc content.Document, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case formatJSON:
		raw, err := content.Encode(doc)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	case formatYAML, "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc.Normalize()); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
