// Package storage provides the ports.KVStore backends: a JSON state file, a
// SQLite database and an in-memory map.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Backend is a KVStore that owns resources.
type Backend interface {
	ports.KVStore
	Close() error
}

// Open returns the backend named kind rooted at path. The memory backend
// ignores path.
func Open(ctx context.Context, kind, path string) (Backend, error) {
	switch strings.ToLower(kind) {
	case "", BackendFile:
		store, err := NewFileStore(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendSQLite:
		store, err := NewSQLiteStore(ctx, path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}
