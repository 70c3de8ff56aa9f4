package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// JSONOptions configures the zerolog adapter.
type JSONOptions struct {
	Writer    io.Writer
	Level     string
	Layer     string
	Component string
	// HumanReadable switches to zerolog's console writer.
	HumanReadable bool
}

// JSONLogger implements ports.Logger on top of zerolog. Every entry is a
// single JSON object per line.
type JSONLogger struct {
	base   zerolog.Logger
	fields []interface{}
	layer  string
}

// NewJSON creates a zerolog backed logger.
func NewJSON(opts JSONOptions) (*JSONLogger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	output := writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	var fields []interface{}
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}

	return &JSONLogger{
		base:   zerolog.New(output).Level(level).With().Timestamp().Logger(),
		fields: fields,
		layer:  layerOrDefault(opts.Layer),
	}, nil
}

// Debug emits a debug log entry.
func (l *JSONLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Debug(), msg, fields)
}

// Info emits an info log entry.
func (l *JSONLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Info(), msg, fields)
}

// Warn emits a warning log entry.
func (l *JSONLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Warn(), msg, fields)
}

// Error emits an error log entry.
func (l *JSONLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Error(), msg, fields)
}

// With derives a new logger with persistent fields.
func (l *JSONLogger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return &NoOpLogger{}
	}
	return &JSONLogger{
		base:   l.base,
		fields: appendFields(l.fields, fields),
		layer:  l.layer,
	}
}

func (l *JSONLogger) emit(ctx context.Context, event *zerolog.Event, msg string, fields []interface{}) {
	if event == nil {
		return
	}
	payload := mergeFields(l.fields, fields, l.layer, ports.GetCorrelationID(ctx))
	for i := 0; i+1 < len(payload); i += 2 {
		key := payload[i].(string)
		switch value := payload[i+1].(type) {
		case error:
			event = event.AnErr(key, value)
		default:
			event = event.Interface(key, value)
		}
	}
	event.Msg(msg)
}

var _ ports.Logger = (*JSONLogger)(nil)
