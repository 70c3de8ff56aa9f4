// Package store owns the single live content document. It loads the document
// from the key/value store, applies mutations, persists every result and
// notifies subscribers.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/folio/internal/application"
	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	"github.com/alexisbeaulieu97/folio/internal/ports"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// Load sources reported in the content.loaded event.
const (
	SourceDefaults  = "defaults"
	SourcePersisted = "persisted"
	SourceMalformed = "malformed"
)

// Options configures a Store.
type Options struct {
	KV        ports.KVStore
	Publisher ports.EventPublisher
	Logger    ports.Logger
	// Defaults is the document used when nothing is persisted. It defaults to
	// content.Default().
	Defaults *content.Document
	// IDs assigns ids to added entries that arrive without one. It defaults to
	// content.UUIDGenerator.
	IDs content.IDGenerator
}

// Store is the content store. Mutations replace the live document; they
// never modify a document previously returned by Snapshot.
type Store struct {
	kv        ports.KVStore
	publisher ports.EventPublisher
	logger    ports.Logger
	ids       content.IDGenerator
	defaults  content.Document

	mu     sync.RWMutex
	doc    content.Document
	source string
}

// New builds a Store and loads the persisted document. An absent or
// unparseable document yields the defaults; only a failing read is returned
// as an error.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.KV == nil {
		return nil, errors.New("store: key/value store is required")
	}
	defaults := content.Default()
	if opts.Defaults != nil {
		defaults = opts.Defaults.Clone().Normalize()
	}
	ids := opts.IDs
	if ids == nil {
		ids = content.UUIDGenerator{}
	}
	logger := opts.Logger
	if logger != nil {
		logger = logger.With("component", "store")
	}

	s := &Store{
		kv:        opts.KV,
		publisher: opts.Publisher,
		logger:    logger,
		ids:       ids,
		defaults:  defaults,
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	start := time.Now()
	raw, ok, err := s.kv.Get(ctx, content.StorageKey)
	if err != nil {
		if s.logger != nil {
			s.logger.Error(ctx, "failed to read persisted content", "key", content.StorageKey, "error", err)
		}
		return wrapStorage("get", err)
	}

	doc := s.defaults.Clone()
	source := SourceDefaults
	if ok {
		merged, dropped, mergeErr := content.MergeFields(s.defaults, raw)
		if len(dropped) > 0 && s.logger != nil {
			s.logger.Warn(ctx, "persisted fields do not fit the content model, using defaults for them", "key", content.StorageKey, "fields", dropped)
		}
		if mergeErr != nil {
			source = SourceMalformed
			if s.logger != nil {
				s.logger.Warn(ctx, "persisted content is malformed, using defaults", "key", content.StorageKey, "error", mergeErr)
			}
		} else {
			doc = merged
			source = SourcePersisted
		}
	}

	s.doc = doc
	s.source = source

	if s.logger != nil {
		s.logger.Info(ctx, "content loaded",
			"source", source,
			"projects", len(doc.Projects),
			"education", len(doc.Education),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	application.Publish(ctx, s.publisher, s.logger, ports.EventContentLoaded, map[string]interface{}{
		"source": source,
	})
	return nil
}

// Source reports where the document was loaded from.
func (s *Store) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Snapshot returns a copy of the live document.
func (s *Store) Snapshot() content.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Defaults returns a copy of the default document.
func (s *Store) Defaults() content.Document {
	return s.defaults.Clone()
}

// Subscribe registers fn to run after every persisted mutation. fn receives
// the new document.
func (s *Store) Subscribe(fn func(context.Context, content.Document)) (ports.Subscription, error) {
	if s.publisher == nil {
		return nil, errors.New("store: no event publisher configured")
	}
	if fn == nil {
		return nil, errors.New("store: subscriber is nil")
	}
	return s.publisher.Subscribe(ports.EventContentUpdated, func(ctx context.Context, _ ports.DomainEvent) error {
		fn(ctx, s.Snapshot())
		return nil
	})
}

// Dispatch applies m to the live document, persists the result and then
// notifies subscribers. When persisting fails the live document is left
// unchanged and a StorageError is returned. A mutation that matches no entry
// still persists and notifies.
func (s *Store) Dispatch(ctx context.Context, m content.Mutation) (content.Document, error) {
	if m == nil {
		return s.Snapshot(), errors.New("store: mutation is nil")
	}

	s.mu.Lock()
	next, matched := m.Apply(s.doc)
	next = next.Normalize()

	encoded, err := content.Encode(next)
	if err != nil {
		current := s.doc.Clone()
		s.mu.Unlock()
		if s.logger != nil {
			s.logger.Error(ctx, "failed to encode content", "mutation", m.Name(), "error", err)
		}
		return current, err
	}
	if err := s.kv.Set(ctx, content.StorageKey, encoded); err != nil {
		current := s.doc.Clone()
		s.mu.Unlock()
		if s.logger != nil {
			s.logger.Error(ctx, "failed to persist content", "mutation", m.Name(), "error", err)
		}
		return current, wrapStorage("set", err)
	}
	s.doc = next
	s.mu.Unlock()

	if s.logger != nil {
		if matched {
			s.logger.Info(ctx, "content updated", "mutation", m.Name(), "bytes", len(encoded))
		} else {
			s.logger.Debug(ctx, "mutation matched no entry", "mutation", m.Name())
		}
	}
	application.Publish(ctx, s.publisher, s.logger, ports.EventContentUpdated, map[string]interface{}{
		"mutation": m.Name(),
		"matched":  matched,
	})
	return next.Clone(), nil
}

// UpdateSection replaces the hero or about region.
func (s *Store) UpdateSection(ctx context.Context, value content.SectionValue) (content.Document, error) {
	return s.Dispatch(ctx, content.UpdateSection(value))
}

// UpdateUI replaces one UI sub-region.
func (s *Store) UpdateUI(ctx context.Context, region content.UIRegion) (content.Document, error) {
	return s.Dispatch(ctx, content.UpdateUI(region))
}

// UpdateProject replaces the project with the same id, in place.
func (s *Store) UpdateProject(ctx context.Context, project content.Project) (content.Document, error) {
	return s.Dispatch(ctx, content.UpdateProject(project))
}

// AddProject appends project, assigning an id when it has none.
func (s *Store) AddProject(ctx context.Context, project content.Project) (content.Document, error) {
	if project.ID == "" {
		project.ID = s.ids.NewID()
	}
	return s.Dispatch(ctx, content.AddProject(project))
}

// DeleteProject removes the project with id.
func (s *Store) DeleteProject(ctx context.Context, id string) (content.Document, error) {
	return s.Dispatch(ctx, content.DeleteProject(id))
}

// UpdateEducation replaces the education entry with the same id, in place.
func (s *Store) UpdateEducation(ctx context.Context, item content.EducationItem) (content.Document, error) {
	return s.Dispatch(ctx, content.UpdateEducation(item))
}

// AddEducation appends item, assigning an id when it has none.
func (s *Store) AddEducation(ctx context.Context, item content.EducationItem) (content.Document, error) {
	if item.ID == "" {
		item.ID = s.ids.NewID()
	}
	return s.Dispatch(ctx, content.AddEducation(item))
}

// DeleteEducation removes the education entry with id.
func (s *Store) DeleteEducation(ctx context.Context, id string) (content.Document, error) {
	return s.Dispatch(ctx, content.DeleteEducation(id))
}

// ResetToDefaults replaces the document with the defaults and persists them.
func (s *Store) ResetToDefaults(ctx context.Context) (content.Document, error) {
	return s.Dispatch(ctx, content.Reset(s.defaults))
}

// Preview merges raw onto the defaults the same way a load does, without
// touching the live document. Unlike a load, a malformed document is an error.
func (s *Store) Preview(raw []byte) (content.Document, error) {
	return content.Merge(s.defaults, raw)
}

// Import replaces the live document with raw merged onto the defaults.
func (s *Store) Import(ctx context.Context, raw []byte) (content.Document, error) {
	doc, err := s.Preview(raw)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("import content: %w", err)
	}
	return s.Dispatch(ctx, content.ReplaceDocument(doc))
}

func wrapStorage(op string, err error) error {
	var storageErr *apperrors.StorageError
	if errors.As(err, &storageErr) {
		return err
	}
	return apperrors.NewStorageError(op, content.StorageKey, err)
}
