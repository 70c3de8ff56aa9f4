// Package auth keeps the single boolean "is admin" flag of the site. It is a
// demo gate, not an access control layer: credentials are compared against
// one configured pair and the session user is stored in the client-local
// key/value store.
package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/folio/internal/application"
	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	"github.com/alexisbeaulieu97/folio/internal/ports"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

const (
	DefaultEmail    = "admin@neonfolio.com"
	DefaultPassword = "admin123"

	sessionName     = "Admin User"
	sessionPhotoURL = "https://ui-avatars.com/api/?name=Admin+User&background=0D8ABC&color=fff"
)

// Credentials is the accepted email/password pair.
type Credentials struct {
	Email    string `yaml:"email" validate:"required,email"`
	Password string `yaml:"password" validate:"required"`
}

// DefaultCredentials returns the built-in demo pair.
func DefaultCredentials() Credentials {
	return Credentials{Email: DefaultEmail, Password: DefaultPassword}
}

// User is the persisted session user.
type User struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	PhotoURL   string     `json:"photoURL"`
	LoggedInAt *time.Time `json:"loggedInAt,omitempty"`
}

// Options configures a Service.
type Options struct {
	KV          ports.KVStore
	Credentials Credentials
	Clock       ports.Clock
	Logger      ports.Logger
	Publisher   ports.EventPublisher
}

// Service tracks whether the admin is logged in.
type Service struct {
	kv        ports.KVStore
	creds     Credentials
	clock     ports.Clock
	logger    ports.Logger
	publisher ports.EventPublisher

	mu   sync.RWMutex
	user *User
}

// New returns a logged-out Service. Call Restore to pick up a persisted
// session. Empty credentials select DefaultCredentials.
func New(opts Options) (*Service, error) {
	if opts.KV == nil {
		return nil, errors.New("auth: key/value store is required")
	}
	creds := opts.Credentials
	if creds.Email == "" && creds.Password == "" {
		creds = DefaultCredentials()
	}
	clock := opts.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	logger := opts.Logger
	if logger != nil {
		logger = logger.With("component", "auth")
	}
	return &Service{
		kv:        opts.KV,
		creds:     creds,
		clock:     clock,
		logger:    logger,
		publisher: opts.Publisher,
	}, nil
}

// Restore loads the persisted session user. An unparseable value leaves the
// service logged out; only a failing read is returned.
func (s *Service) Restore(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, content.UserStorageKey)
	if err != nil {
		return apperrors.NewStorageError("get", content.UserStorageKey, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if !ok {
		return nil
	}

	var user *User
	if err := json.Unmarshal(raw, &user); err != nil {
		if s.logger != nil {
			s.logger.Warn(ctx, "persisted session is malformed, staying logged out", "key", content.UserStorageKey, "error", err)
		}
		return nil
	}
	s.user = user
	if s.logger != nil && user != nil {
		s.logger.Debug(ctx, "session restored", "email", user.Email)
	}
	return nil
}

// Login checks email and password against the configured pair. On success
// the session user is stored; a storage failure is logged and the login
// still holds for this process.
func (s *Service) Login(ctx context.Context, email, password string) bool {
	if !s.matches(email, password) {
		if s.logger != nil {
			s.logger.Warn(ctx, "login rejected", "email", email)
		}
		return false
	}

	now := s.clock.Now().UTC()
	user := &User{
		Name:       sessionName,
		Email:      email,
		PhotoURL:   sessionPhotoURL,
		LoggedInAt: &now,
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	if data, err := json.Marshal(user); err != nil {
		s.logStoreFailure(ctx, "encode session", err)
	} else if err := s.kv.Set(ctx, content.UserStorageKey, data); err != nil {
		s.logStoreFailure(ctx, "persist session", err)
	}

	if s.logger != nil {
		s.logger.Info(ctx, "admin logged in", "email", email)
	}
	application.Publish(ctx, s.publisher, s.logger, ports.EventSessionLogin, map[string]interface{}{
		"email": email,
	})
	return true
}

// Logout clears the session user and removes it from storage.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.kv.Delete(ctx, content.UserStorageKey); err != nil {
		s.logStoreFailure(ctx, "remove session", err)
	}
	if s.logger != nil {
		s.logger.Info(ctx, "admin logged out")
	}
	application.Publish(ctx, s.publisher, s.logger, ports.EventSessionLogout, nil)
}

// User returns the session user, if any.
func (s *Service) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a session user is present.
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Service) matches(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.creds.Email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
	return emailOK && passwordOK
}

func (s *Service) logStoreFailure(ctx context.Context, msg string, err error) {
	if s.logger != nil {
		s.logger.Error(ctx, "failed to "+msg, "key", content.UserStorageKey, "error", err)
	}
}
