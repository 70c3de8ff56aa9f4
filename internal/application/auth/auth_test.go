package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/storage"
	"github.com/alexisbeaulieu97/folio/internal/ports"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

type brokenKV struct {
	*storage.MemoryStore
	getErr error
	setErr error
}

func (b *brokenKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if b.getErr != nil {
		return nil, false, b.getErr
	}
	return b.MemoryStore.Get(ctx, key)
}

func (b *brokenKV) Set(ctx context.Context, key string, value []byte) error {
	if b.setErr != nil {
		return b.setErr
	}
	return b.MemoryStore.Set(ctx, key, value)
}

func newService(t *testing.T, kv ports.KVStore, recorder *logging.Recorder) *Service {
	t.Helper()
	opts := Options{KV: kv, Clock: ports.FixedClock(fixedNow)}
	if recorder != nil {
		opts.Logger = recorder.Logger()
	}
	svc, err := New(opts)
	require.NoError(t, err)
	return svc
}

func TestLoginWithDefaultCredentials(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	svc := newService(t, kv, nil)

	require.False(t, svc.IsAuthenticated())
	require.True(t, svc.Login(ctx, "admin@neonfolio.com", "admin123"))
	require.True(t, svc.IsAuthenticated())

	user, ok := svc.User()
	require.True(t, ok)
	require.Equal(t, "Admin User", user.Name)
	require.Equal(t, "admin@neonfolio.com", user.Email)
	require.Equal(t, "https://ui-avatars.com/api/?name=Admin+User&background=0D8ABC&color=fff", user.PhotoURL)
	require.Equal(t, fixedNow, *user.LoggedInAt)

	raw, ok, err := kv.Get(ctx, content.UserStorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{
		"name": "Admin User",
		"email": "admin@neonfolio.com",
		"photoURL": "https://ui-avatars.com/api/?name=Admin+User&background=0D8ABC&color=fff",
		"loggedInAt": "2026-03-14T09:26:53Z"
	}`, string(raw))
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "admin@neonfolio.com", password: "admin"},
		{name: "wrong email", email: "root@neonfolio.com", password: "admin123"},
		{name: "case differs", email: "Admin@neonfolio.com", password: "admin123"},
		{name: "padded", email: " admin@neonfolio.com", password: "admin123"},
		{name: "empty", email: "", password: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			recorder := logging.NewRecorder(0)
			kv := storage.NewMemoryStore()
			svc := newService(t, kv, recorder)

			require.False(t, svc.Login(context.Background(), tc.email, tc.password))
			require.False(t, svc.IsAuthenticated())
			require.Equal(t, []string{"login rejected"}, recorder.Messages(logging.LevelWarn))

			_, ok, err := kv.Get(context.Background(), content.UserStorageKey)
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestConfiguredCredentialsReplaceDefaults(t *testing.T) {
	t.Parallel()

	svc, err := New(Options{
		KV:          storage.NewMemoryStore(),
		Credentials: Credentials{Email: "me@example.com", Password: "s3cret"},
	})
	require.NoError(t, err)

	require.False(t, svc.Login(context.Background(), DefaultEmail, DefaultPassword))
	require.True(t, svc.Login(context.Background(), "me@example.com", "s3cret"))
}

func TestRestoreAndLogout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	publisher := events.NewLoggingPublisher(nil)

	var seen []string
	for _, eventType := range []string{ports.EventSessionLogin, ports.EventSessionLogout} {
		_, err := publisher.Subscribe(eventType, func(_ context.Context, event ports.DomainEvent) error {
			seen = append(seen, event.EventType())
			return nil
		})
		require.NoError(t, err)
	}

	first, err := New(Options{KV: kv, Publisher: publisher})
	require.NoError(t, err)
	require.True(t, first.Login(ctx, DefaultEmail, DefaultPassword))

	second := newService(t, kv, nil)
	require.NoError(t, second.Restore(ctx))
	require.True(t, second.IsAuthenticated())

	first.Logout(ctx)
	require.False(t, first.IsAuthenticated())

	third := newService(t, kv, nil)
	require.NoError(t, third.Restore(ctx))
	require.False(t, third.IsAuthenticated())

	require.Equal(t, []string{ports.EventSessionLogin, ports.EventSessionLogout}, seen)
}

func TestRestoreMalformedSessionStaysLoggedOut(t *testing.T) {
	t.Parallel()

	for name, raw := range map[string]string{
		"garbage": "not json",
		"null":    "null",
		"array":   "[1]",
	} {
		raw := raw
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			kv := storage.NewMemoryStore()
			require.NoError(t, kv.Set(context.Background(), content.UserStorageKey, []byte(raw)))

			svc := newService(t, kv, nil)
			require.NoError(t, svc.Restore(context.Background()))
			require.False(t, svc.IsAuthenticated())
		})
	}
}

func TestRestoreReturnsReadFailure(t *testing.T) {
	t.Parallel()

	kv := &brokenKV{MemoryStore: storage.NewMemoryStore(), getErr: errors.New("locked")}
	svc := newService(t, kv, nil)

	var storageErr *apperrors.StorageError
	require.ErrorAs(t, svc.Restore(context.Background()), &storageErr)
}

func TestLoginSurvivesPersistFailure(t *testing.T) {
	t.Parallel()

	recorder := logging.NewRecorder(0)
	kv := &brokenKV{MemoryStore: storage.NewMemoryStore(), setErr: errors.New("read-only")}
	svc := newService(t, kv, recorder)

	require.True(t, svc.Login(context.Background(), DefaultEmail, DefaultPassword))
	require.True(t, svc.IsAuthenticated())
	require.Equal(t, []string{"failed to persist session"}, recorder.Messages(logging.LevelError))
}
