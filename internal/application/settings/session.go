// Package settings implements the live-preview editor for the theme and
// background. Draft theme changes are written to the presentation context at
// once; nothing reaches the content store until Apply.
package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/folio/internal/application"
	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	"github.com/alexisbeaulieu97/folio/internal/domain/theme"
	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// State is the lifecycle position of a Session.
type State int

const (
	StateOpen State = iota
	StateApplied
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateApplied:
		return "applied"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Committer is the part of the content store a Session needs.
type Committer interface {
	Snapshot() content.Document
	Dispatch(ctx context.Context, m content.Mutation) (content.Document, error)
}

// Option customises a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger ports.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger.With("component", "settings")
		}
	}
}

// WithPublisher sets the publisher for settings.applied and
// settings.cancelled events.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *Session) { s.publisher = publisher }
}

// Session is one open settings panel.
type Session struct {
	store     Committer
	target    ports.StyleContext
	logger    ports.Logger
	publisher ports.EventPublisher

	mu         sync.Mutex
	state      State
	original   content.ThemeConfig
	theme      content.ThemeConfig
	background content.BackgroundConfig
}

// Open starts a session seeded from the store's committed theme and
// background.
func Open(store Committer, target ports.StyleContext, opts ...Option) *Session {
	doc := store.Snapshot()
	s := &Session{
		store:      store,
		target:     target,
		state:      StateOpen,
		original:   doc.UI.Theme,
		theme:      doc.UI.Theme,
		background: doc.UI.Background,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports the session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Theme returns the draft theme.
func (s *Session) Theme() content.ThemeConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Background returns the draft background.
func (s *Session) Background() content.BackgroundConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.background
}

// OriginalTheme returns the theme that was committed when the session opened.
func (s *Session) OriginalTheme() content.ThemeConfig {
	return s.original
}

// SetTheme replaces the draft theme and previews it.
func (s *Session) SetTheme(cfg content.ThemeConfig) error {
	return s.editTheme(func(content.ThemeConfig) (content.ThemeConfig, error) {
		return cfg, nil
	})
}

// SetColor changes one color of the draft theme and previews it.
func (s *Session) SetColor(role theme.Role, hex string) error {
	return s.editTheme(func(cfg content.ThemeConfig) (content.ThemeConfig, error) {
		if _, err := theme.ParseRole(string(role)); err != nil {
			return cfg, err
		}
		return theme.WithColor(cfg, role, hex), nil
	})
}

// ApplyPreset replaces the draft colors with a named preset, keeping the
// draft style, and previews the result.
func (s *Session) ApplyPreset(name string) error {
	return s.editTheme(func(cfg content.ThemeConfig) (content.ThemeConfig, error) {
		palette, err := theme.Preset(name)
		if err != nil {
			return cfg, err
		}
		return palette.On(cfg), nil
	})
}

// SetStyle changes the draft style tag.
func (s *Session) SetStyle(style content.ThemeStyle) error {
	return s.editTheme(func(cfg content.ThemeConfig) (content.ThemeConfig, error) {
		if !style.Valid() {
			return cfg, content.NewDomainError(content.ErrCodeValidation, "unknown theme style", nil, map[string]interface{}{
				"style": string(style),
			})
		}
		cfg.Style = style
		return cfg, nil
	})
}

// SetBackground replaces the draft background. Backgrounds are not previewed.
func (s *Session) SetBackground(cfg content.BackgroundConfig) error {
	return s.editBackground(func(content.BackgroundConfig) content.BackgroundConfig {
		return cfg
	})
}

// SetBackgroundType changes the draft background type.
func (s *Session) SetBackgroundType(kind content.BackgroundType) error {
	if !kind.Valid() {
		return content.NewDomainError(content.ErrCodeValidation, "unknown background type", nil, map[string]interface{}{
			"type": string(kind),
		})
	}
	return s.editBackground(func(cfg content.BackgroundConfig) content.BackgroundConfig {
		cfg.Type = kind
		return cfg
	})
}

// SetBackgroundValue changes the draft background image URL.
func (s *Session) SetBackgroundValue(value string) error {
	return s.editBackground(func(cfg content.BackgroundConfig) content.BackgroundConfig {
		cfg.Value = value
		return cfg
	})
}

// SetOverlayOpacity changes the draft overlay opacity, clamped to [0, 1].
func (s *Session) SetOverlayOpacity(opacity float64) error {
	switch {
	case opacity < 0:
		opacity = 0
	case opacity > 1:
		opacity = 1
	}
	return s.editBackground(func(cfg content.BackgroundConfig) content.BackgroundConfig {
		cfg.OverlayOpacity = opacity
		return cfg
	})
}

// Apply commits the draft theme and background to the store in one mutation.
// On failure the session stays open with its drafts and preview intact.
func (s *Session) Apply(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpen("apply"); err != nil {
		return err
	}

	m := content.Batch(content.UpdateUI(s.theme), content.UpdateUI(s.background))
	if _, err := s.store.Dispatch(ctx, m); err != nil {
		if s.logger != nil {
			s.logger.Error(ctx, "failed to apply settings", "error", err)
		}
		return fmt.Errorf("apply settings: %w", err)
	}
	s.state = StateApplied

	if s.logger != nil {
		s.logger.Info(ctx, "settings applied", "style", string(s.theme.Style), "background", string(s.background.Type))
	}
	application.Publish(ctx, s.publisher, s.logger, ports.EventSettingsApplied, map[string]interface{}{
		"style":      string(s.theme.Style),
		"background": string(s.background.Type),
	})
	return nil
}

// Cancel discards the drafts and restores the store's committed theme to the
// presentation context. It does nothing once the session is closed.
func (s *Session) Cancel(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateOpen {
		return
	}
	committed := s.store.Snapshot().UI.Theme
	theme.Apply(s.target, committed)
	s.theme = committed
	s.state = StateCancelled

	if s.logger != nil {
		s.logger.Info(ctx, "settings cancelled")
	}
	application.Publish(ctx, s.publisher, s.logger, ports.EventSettingsCancelled, nil)
}

func (s *Session) editTheme(edit func(content.ThemeConfig) (content.ThemeConfig, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpen("edit theme"); err != nil {
		return err
	}
	next, err := edit(s.theme)
	if err != nil {
		return err
	}
	s.theme = next
	theme.Apply(s.target, next)
	return nil
}

func (s *Session) editBackground(edit func(content.BackgroundConfig) content.BackgroundConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpen("edit background"); err != nil {
		return err
	}
	s.background = edit(s.background)
	return nil
}

// requireOpen must be called with the lock held.
func (s *Session) requireOpen(op string) error {
	if s.state == StateOpen {
		return nil
	}
	return content.NewStateError("settings session is closed", map[string]interface{}{
		"operation": op,
		"state":     s.state.String(),
	})
}
