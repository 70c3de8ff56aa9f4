package logging

import (
	"context"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// WithCorrelationID stores the provided correlation identifier inside the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return ports.WithCorrelationID(ctx, id)
}

// GetCorrelationID retrieves the correlation identifier from the context.
func GetCorrelationID(ctx context.Context) string {
	return ports.GetCorrelationID(ctx)
}

// NewCommandContext returns ctx tagged with a fresh correlation id, unless it
// already carries one.
func NewCommandContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if ports.GetCorrelationID(ctx) != "" {
		return ctx
	}
	return ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
}
