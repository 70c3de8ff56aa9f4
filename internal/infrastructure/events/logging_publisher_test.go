package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	cblog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	logginginfra "github.com/alexisbeaulieu97/folio/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/folio/internal/ports"
)

func TestLoggingPublisherIncludesCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    buf,
		Level:     "debug",
		Layer:     "test",
		Component: "publisher",
		Formatter: cblog.JSONFormatter,
	})
	require.NoError(t, err)

	publisher := NewLoggingPublisher(logger)

	ctx := logginginfra.WithCorrelationID(context.Background(), "abc-123")
	err = publisher.Publish(ctx, sampleEvent{
		eventType: ports.EventContentUpdated,
		payload:   map[string]interface{}{"mutation": "delete_project", "matched": false},
	})
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "domain event", entry["msg"])
	require.Equal(t, ports.EventContentUpdated, entry["event_type"])
	require.Equal(t, "abc-123", entry["correlation_id"])
	require.Equal(t, "delete_project", entry["mutation"])
	require.Equal(t, false, entry["matched"])
}

func TestLoggingPublisherInvokesSubscribersInOrder(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(logginginfra.NewNoOpLogger())

	var calls []string
	_, err := publisher.Subscribe(ports.EventSessionLogin, func(ctx context.Context, event ports.DomainEvent) error {
		calls = append(calls, "first")
		return errors.New("ignored")
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(ports.EventSessionLogin, func(ctx context.Context, event ports.DomainEvent) error {
		calls = append(calls, "second:"+event.Payload().(map[string]interface{})["email"].(string))
		return nil
	})
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), sampleEvent{
		eventType: ports.EventSessionLogin,
		payload:   map[string]interface{}{"email": "admin@neonfolio.com"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second:admin@neonfolio.com"}, calls, "a failing handler must not stop delivery")
}

func TestLoggingPublisherUnsubscribe(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)

	var count int
	sub, err := publisher.Subscribe(ports.EventContentUpdated, func(context.Context, ports.DomainEvent) error {
		count++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, publisher.Subscribers(ports.EventContentUpdated))

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventContentUpdated}))
	sub.Unsubscribe()
	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventContentUpdated}))

	require.Equal(t, 1, count)
	require.Zero(t, publisher.Subscribers(ports.EventContentUpdated))
}

type sampleEvent struct {
	eventType string
	payload   interface{}
}

func (e sampleEvent) EventType() string    { return e.eventType }
func (e sampleEvent) Payload() interface{} { return e.payload }
