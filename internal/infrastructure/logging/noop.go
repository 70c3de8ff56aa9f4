package logging

import (
	"context"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// NoOpLogger drops every entry. Commands get one when they run before the
// configured logger exists, and With on a nil console or JSON logger returns it.
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(context.Context, string, ...interface{}) {}
func (n *NoOpLogger) Info(context.Context, string, ...interface{})  {}
func (n *NoOpLogger) Warn(context.Context, string, ...interface{})  {}
func (n *NoOpLogger) Error(context.Context, string, ...interface{}) {}

// With returns n; there are no fields to carry.
func (n *NoOpLogger) With(...interface{}) ports.Logger { return n }

// NewNoOpLogger returns a logger that drops every entry.
func NewNoOpLogger() ports.Logger {
	return &NoOpLogger{}
}
