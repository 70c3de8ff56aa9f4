package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	cfgpkg "github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/logging"
)

func TestYAMLLoaderLoadSuccess(t *testing.T) {
	loader, recorder := newTestLoader()
	ctx := context.Background()

	configPath := writeConfig(t, "config.yaml", `storage:
  backend: sqlite
log:
  level: debug
`)

	cfg, err := loader.Load(ctx, configPath)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Storage.Backend != cfgpkg.BackendSQLite {
		t.Fatalf("expected sqlite backend, got %s", cfg.Storage.Backend)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected debug level, got %s", cfg.Log.Level)
	}
	if msgs := recorder.Messages(logging.LevelInfo); len(msgs) != 1 || msgs[0] != "configuration loaded" {
		t.Fatalf("expected load to be logged, got %v", msgs)
	}
}

func TestYAMLLoaderLoadMissingFileUsesDefaults(t *testing.T) {
	loader, _ := newTestLoader()

	cfg, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected defaults, got %v", err)
	}
	if cfg.Storage.Backend != cfgpkg.BackendFile {
		t.Fatalf("expected file backend, got %s", cfg.Storage.Backend)
	}
}

func TestYAMLLoaderLoadParseError(t *testing.T) {
	loader, recorder := newTestLoader()

	configPath := writeConfig(t, "bad.yaml", "storage: [")

	_, err := loader.Load(context.Background(), configPath)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	assertDomainError(t, err, content.ErrCodeValidation)
	if len(recorder.Messages(logging.LevelError)) != 1 {
		t.Fatalf("expected parse failure to be logged")
	}
}

func TestYAMLLoaderLoadValidationError(t *testing.T) {
	loader, _ := newTestLoader()

	configPath := writeConfig(t, "invalid.yaml", "ids:\n  strategy: random\n")

	_, err := loader.Load(context.Background(), configPath)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	assertDomainError(t, err, content.ErrCodeValidation)

	var domainErr *content.DomainError
	errors.As(err, &domainErr)
	if domainErr.Context["field"] != "ids.strategy" {
		t.Fatalf("expected field ids.strategy, got %v", domainErr.Context["field"])
	}
}

func TestYAMLLoaderLoadCancelled(t *testing.T) {
	loader, _ := newTestLoader()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, "whatever.yaml")
	if err == nil {
		t.Fatalf("expected cancellation error")
	}
	assertDomainError(t, err, content.ErrCodeCancelled)
}

func TestYAMLLoaderValidate(t *testing.T) {
	loader, _ := newTestLoader()
	ctx := context.Background()

	if err := loader.Validate(ctx, writeConfig(t, "config.yaml", "log:\n  format: json\n")); err != nil {
		t.Fatalf("expected validate success, got %v", err)
	}

	err := loader.Validate(ctx, writeConfig(t, "config.toml", "log = 1"))
	assertDomainError(t, err, content.ErrCodeValidation)

	err = loader.Validate(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	assertDomainError(t, err, content.ErrCodeNotFound)

	err = loader.Validate(ctx, t.TempDir())
	assertDomainError(t, err, content.ErrCodeValidation)
}

func assertDomainError(t *testing.T, err error, code content.ErrorCode) {
	t.Helper()
	var domainErr *content.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if domainErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, domainErr.Code)
	}
}

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func newTestLoader() (*YAMLLoader, *logging.Recorder) {
	recorder := logging.NewRecorder(0)
	return NewYAMLLoader(recorder.Logger()), recorder
}
