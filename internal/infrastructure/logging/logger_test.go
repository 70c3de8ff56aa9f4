package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	cblog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestLoggerIncludesCorrelationIDAndLayer(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:     &buf,
		Level:      "debug",
		Formatter:  cblog.JSONFormatter,
		Layer:      "infrastructure",
		Component:  "file_store",
		TimeFormat: "2006-01-02T15:04:05Z07:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "loaded state", "path", "/tmp/state.json")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log output, got empty string")
	}

	payload := make(map[string]interface{})
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("failed to parse log line %q: %v", line, err)
	}

	if payload["layer"] != "infrastructure" {
		t.Fatalf("expected layer to be infrastructure, got %v", payload["layer"])
	}
	if payload["component"] != "file_store" {
		t.Fatalf("expected component field, got %v", payload["component"])
	}
	if payload["correlation_id"] != "abc123" {
		t.Fatalf("expected correlation_id to be abc123, got %v", payload["correlation_id"])
	}
	if payload["path"] != "/tmp/state.json" {
		t.Fatalf("expected path to be recorded, got %v", payload["path"])
	}
	if payload["msg"] != "loaded state" {
		t.Fatalf("expected message to be recorded, got %v", payload["msg"])
	}
}

func TestLoggerWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Formatter: cblog.JSONFormatter,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	child := logger.With("component", "store").(*Logger)
	child.Warn(context.Background(), "unknown id", "mutation", "delete_project")

	payload := make(map[string]interface{})
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("failed to parse log line: %v", err)
	}

	if payload["component"] != "store" {
		t.Fatalf("expected component=store, got %v", payload["component"])
	}
	if payload["mutation"] != "delete_project" {
		t.Fatalf("expected mutation delete_project, got %v", payload["mutation"])
	}
	if payload["layer"] != "infrastructure" {
		t.Fatalf("expected default layer infrastructure, got %v", payload["layer"])
	}
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)

	_, err = NewJSON(JSONOptions{Level: "chatty"})
	require.Error(t, err)
}

func TestNoOpLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Formatter: cblog.JSONFormatter,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noOp := NewNoOpLogger()
	noOp.Info(context.Background(), "hello world")

	if buf.Len() != 0 {
		t.Fatalf("expected no output from noop logger, got %s", buf.String())
	}
	if noOp.With("key", "value") != noOp {
		t.Fatalf("expected With to return same no-op logger instance")
	}

	logger.Info(context.Background(), "emitted")
	if buf.Len() == 0 {
		t.Fatal("expected base logger to write output")
	}
}

func TestJSONLoggerWritesOneObjectPerLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewJSON(JSONOptions{Writer: &buf, Level: "debug", Component: "auth"})
	require.NoError(t, err)

	ctx := WithCorrelationID(context.Background(), "corr-1")
	logger.Debug(ctx, "restoring session", "key", "folio_user")
	logger.With("attempt", 2).Error(ctx, "persist failed", "error", errors.New("disk full"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "debug", first["level"])
	require.Equal(t, "restoring session", first["message"])
	require.Equal(t, "auth", first["component"])
	require.Equal(t, "folio_user", first["key"])
	require.Equal(t, "corr-1", first["correlation_id"])
	require.Equal(t, "infrastructure", first["layer"])

	var second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Equal(t, "error", second["level"])
	require.Equal(t, "disk full", second["error"])
	require.EqualValues(t, 2, second["attempt"])
}

func TestJSONLoggerHonoursLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewJSON(JSONOptions{Writer: &buf, Level: "warn"})
	require.NoError(t, err)

	logger.Info(context.Background(), "dropped")
	require.Zero(t, buf.Len())

	logger.Warn(context.Background(), "kept")
	require.Contains(t, buf.String(), "kept")
}

func TestNewFromConfigSelectsBackend(t *testing.T) {
	t.Parallel()

	console, err := NewFromConfig("", "info", "cli", &bytes.Buffer{})
	require.NoError(t, err)
	require.IsType(t, &Logger{}, console)

	jsonLogger, err := NewFromConfig("JSON", "info", "cli", &bytes.Buffer{})
	require.NoError(t, err)
	require.IsType(t, &JSONLogger{}, jsonLogger)

	_, err = NewFromConfig("xml", "info", "cli", &bytes.Buffer{})
	require.Error(t, err)
}

func TestRecorderStoresAndReplays(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder(10)
	logger := recorder.Logger()

	ctx := WithCorrelationID(context.Background(), "buffered")
	logger.Info(ctx, "booting", "component", "bootstrap")
	logger.With("component", "config").Warn(ctx, "config missing", "path", "folio.yaml")

	require.Equal(t, []string{"config missing"}, recorder.Messages(LevelWarn))
	entries := recorder.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "config", entries[1].Fields["component"])

	var output bytes.Buffer
	delegate, err := New(Options{Writer: &output, Formatter: cblog.JSONFormatter})
	require.NoError(t, err)

	recorder.Replay(delegate)
	require.Empty(t, recorder.Entries())

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	require.Len(t, lines, 2)

	var second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Equal(t, "config missing", second["msg"])
	require.Equal(t, "buffered", second["correlation_id"])
	require.Equal(t, "folio.yaml", second["path"])
}

func TestRecorderDropsOldestBeyondLimit(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder(2)
	logger := recorder.Logger()
	logger.Info(context.Background(), "one")
	logger.Info(context.Background(), "two")
	logger.Info(context.Background(), "three")

	require.Equal(t, []string{"two", "three"}, recorder.Messages(LevelInfo))
}

func TestNewCommandContextKeepsExistingID(t *testing.T) {
	t.Parallel()

	ctx := NewCommandContext(context.Background())
	id := GetCorrelationID(ctx)
	require.NotEmpty(t, id)
	require.Equal(t, id, GetCorrelationID(NewCommandContext(ctx)))
}
