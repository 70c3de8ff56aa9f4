package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

const defaultRecorderLimit = 1000

// Level names a recorded entry's severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Entry is one recorded log call.
type Entry struct {
	Level  Level
	Msg    string
	Fields map[string]interface{}

	ctx  context.Context
	args []interface{}
}

// Recorder keeps log entries in memory. The CLI uses it to hold entries
// emitted before the configured logger exists and replays them afterwards;
// tests use it to assert on what was logged.
type Recorder struct {
	mu      sync.Mutex
	limit   int
	entries []Entry
}

// NewRecorder returns a Recorder that keeps at most limit entries, dropping
// the oldest first. A non-positive limit selects the default of 1000.
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = defaultRecorderLimit
	}
	return &Recorder{limit: limit}
}

// Logger returns a ports.Logger writing into the recorder.
func (r *Recorder) Logger() ports.Logger {
	return &recordingLogger{recorder: r}
}

// Entries returns a copy of the recorded entries in call order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Messages returns the recorded messages at the given level.
func (r *Recorder) Messages(level Level) []string {
	var out []string
	for _, entry := range r.Entries() {
		if entry.Level == level {
			out = append(out, entry.Msg)
		}
	}
	return out
}

// Replay forwards every recorded entry to delegate, in order, and empties
// the recorder.
func (r *Recorder) Replay(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	r.mu.Lock()
	entries := r.entries
	r.entries = nil
	r.mu.Unlock()

	for _, entry := range entries {
		switch entry.Level {
		case LevelDebug:
			delegate.Debug(entry.ctx, entry.Msg, entry.args...)
		case LevelWarn:
			delegate.Warn(entry.ctx, entry.Msg, entry.args...)
		case LevelError:
			delegate.Error(entry.ctx, entry.Msg, entry.args...)
		default:
			delegate.Info(entry.ctx, entry.Msg, entry.args...)
		}
	}
}

func (r *Recorder) add(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == r.limit {
		r.entries = append(r.entries[:0], r.entries[1:]...)
	}
	r.entries = append(r.entries, entry)
}

type recordingLogger struct {
	recorder *Recorder
	fields   []interface{}
}

func (l *recordingLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, LevelDebug, msg, fields)
}

func (l *recordingLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, LevelInfo, msg, fields)
}

func (l *recordingLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, LevelWarn, msg, fields)
}

func (l *recordingLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, LevelError, msg, fields)
}

func (l *recordingLogger) With(fields ...interface{}) ports.Logger {
	return &recordingLogger{recorder: l.recorder, fields: appendFields(l.fields, fields)}
}

func (l *recordingLogger) record(ctx context.Context, level Level, msg string, fields []interface{}) {
	if l == nil || l.recorder == nil {
		return
	}
	args := appendFields(l.fields, fields)
	flat := make(map[string]interface{}, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			flat[key] = args[i+1]
		}
	}
	l.recorder.add(Entry{Level: level, Msg: msg, Fields: flat, ctx: ctx, args: args})
}
