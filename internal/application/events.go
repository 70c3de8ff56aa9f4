// Package application holds the use cases that sit between the CLI and the
// content domain.
package application

import (
	"context"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// Event is the DomainEvent published by the application services.
type Event struct {
	Type   string
	Fields map[string]interface{}
}

// EventType implements ports.DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements ports.DomainEvent.
func (e Event) Payload() interface{} { return e.Fields }

// Publish sends an event when a publisher is configured. Publisher failures
// are logged and otherwise ignored.
func Publish(ctx context.Context, publisher ports.EventPublisher, logger ports.Logger, eventType string, payload map[string]interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, Event{Type: eventType, Fields: payload}); err != nil && logger != nil {
		logger.Warn(ctx, "failed to publish domain event", "event_type", eventType, "error", err)
	}
}
