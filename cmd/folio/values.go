package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/form"
)

// parseAssignments turns repeated key=value flags into a value map. Later
// assignments win.
func parseAssignments(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		values[key] = value
	}
	return values, nil
}

// printFields lists descriptors with their current values.
func printFields(w io.Writer, title string, fields []form.Descriptor, values map[string]string) {
	fmt.Fprintf(w, "%s\n", title)
	width := 0
	for _, f := range fields {
		if len(f.Key) > width {
			width = len(f.Key)
		}
	}
	for _, f := range fields {
		fmt.Fprintf(w, "  %-*s  %s  (%s)\n", width, f.Key, valueOrFallback(values[f.Key], "-"), f.Label)
	}
}
