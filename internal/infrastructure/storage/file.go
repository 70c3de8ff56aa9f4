package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexisbeaulieu97/folio/internal/ports"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

const stateFileVersion = "1"

// stateFile is the on-disk layout of a FileStore.
type stateFile struct {
	Version string                     `json:"version"`
	Entries map[string]json.RawMessage `json:"entries"`
}

// FileStore keeps every key in one JSON file. Each write rewrites the whole
// file through a temporary file and a rename, so readers never observe a
// partially written state.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// NewFileStore opens the state file at path, creating its directory. A
// missing file is an empty store.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		entries: make(map[string]json.RawMessage),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewStorageError("open", "", fmt.Errorf("create state directory: %w", err))
	}

	if err := s.load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the state file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var file stateFile
	if err := json.Unmarshal(data, &file); err != nil {
		return apperrors.NewStorageError("open", "", apperrors.NewParseError(s.path, 0, err))
	}
	if file.Entries != nil {
		s.entries = file.Entries
	}
	return nil
}

// Get implements ports.KVStore.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, apperrors.NewStorageError("get", key, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	var out bytes.Buffer
	if err := json.Compact(&out, raw); err != nil {
		return nil, false, apperrors.NewStorageError("get", key, err)
	}
	return out.Bytes(), true, nil
}

// Set implements ports.KVStore. The value must be valid JSON. When the file
// cannot be written the previous value stays in place.
func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError("set", key, err)
	}
	if !json.Valid(value) {
		return apperrors.NewStorageError("set", key, errors.New("value is not valid JSON"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.entries[key]
	s.entries[key] = append(json.RawMessage(nil), value...)
	if err := s.save(); err != nil {
		if existed {
			s.entries[key] = previous
		} else {
			delete(s.entries, key)
		}
		return apperrors.NewStorageError("set", key, err)
	}
	return nil
}

// Delete implements ports.KVStore.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError("delete", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.entries[key]
	if !existed {
		return nil
	}
	delete(s.entries, key)
	if err := s.save(); err != nil {
		s.entries[key] = previous
		return apperrors.NewStorageError("delete", key, err)
	}
	return nil
}

// Close implements Backend. The file store holds no open handles.
func (s *FileStore) Close() error {
	return nil
}

// save must be called with the write lock held.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(stateFile{Version: stateFileVersion, Entries: s.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}
	return nil
}

var _ ports.KVStore = (*FileStore)(nil)
