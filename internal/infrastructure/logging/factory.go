package logging

import (
	"fmt"
	"io"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

const (
	// FormatConsole renders colored key/value lines through charmbracelet/log.
	FormatConsole = "console"
	// FormatJSON renders one JSON object per line through zerolog.
	FormatJSON = "json"
)

// NewFromConfig selects the logger backend for format. An empty format
// selects the console backend.
func NewFromConfig(format, level, component string, writer io.Writer) (ports.Logger, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatConsole:
		logger, err := New(Options{
			Writer:    writer,
			Level:     level,
			Component: component,
			Layer:     "application",
			Formatter: cblog.TextFormatter,
		})
		if err != nil {
			return nil, err
		}
		return logger, nil
	case FormatJSON:
		logger, err := NewJSON(JSONOptions{
			Writer:    writer,
			Level:     level,
			Component: component,
			Layer:     "application",
		})
		if err != nil {
			return nil, err
		}
		return logger, nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
