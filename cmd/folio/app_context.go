package main

import (
	"context"
	"sync"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/application/auth"
	"github.com/alexisbeaulieu97/folio/internal/application/chat"
	"github.com/alexisbeaulieu97/folio/internal/application/store"
	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	infraconfig "github.com/alexisbeaulieu97/folio/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/gemini"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/storage"
	"github.com/alexisbeaulieu97/folio/internal/ports"
	"github.com/alexisbeaulieu97/folio/internal/render"
)

// sequencePrefix prefixes ids issued by the sequence strategy.
const sequencePrefix = ""

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config    *config.Config
	Logger    ports.Logger
	Publisher *events.LoggingPublisher
	KV        storage.Backend
	Store     *store.Store
	Auth      *auth.Service
	Assistant *chat.Assistant
	Renderer  *render.Renderer

	closeOnce sync.Once
	closeErr  error
}

// Init composes the services for one invocation. Entries logged while the
// configuration is loading are replayed once the configured logger exists.
func (a *AppContext) Init(cmd *cobra.Command, flags *rootFlags) error {
	if a.Store != nil {
		return nil
	}

	ctx := logging.NewCommandContext(cmd.Context())
	boot := logging.NewRecorder(0)

	configPath := flags.configPath
	if configPath == "" {
		if path, err := defaultConfigPath(); err == nil {
			configPath = path
		}
	} else if expanded, err := expandHome(configPath); err == nil {
		configPath = expanded
	}

	cfg, err := infraconfig.NewYAMLLoader(boot.Logger()).Load(ctx, configPath)
	if err != nil {
		return newCommandError("start", "loading configuration", err, "Fix the configuration file or pass --config with a valid path.")
	}
	if flags.ephemeral {
		cfg.Storage.Backend = config.BackendMemory
		cfg.Storage.Path = ""
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	format := cfg.Log.Format
	if flags.logFormat != "" {
		format = flags.logFormat
	}
	logger, err := logging.NewFromConfig(format, level, "cli", cmd.ErrOrStderr())
	if err != nil {
		return newCommandError("start", "creating logger", err, "Use a log level of debug, info, warn or error and a format of console or json.")
	}
	boot.Replay(logger)

	kv, err := openBackend(ctx, cfg.Storage)
	if err != nil {
		logger.Error(ctx, "failed to open storage", "backend", cfg.Storage.Backend, "error", err)
		return newCommandError("start", "opening storage", err, "Check that the state path is writable or run with --ephemeral.")
	}

	publisher := events.NewLoggingPublisher(logger.With("component", "events"))

	var ids content.IDGenerator = content.UUIDGenerator{}
	var seq *lazySequence
	if cfg.IDs.Strategy == config.IDStrategySequence {
		seq = &lazySequence{prefix: sequencePrefix}
		ids = seq
	}

	contentStore, err := store.New(ctx, store.Options{
		KV:        kv,
		Publisher: publisher,
		Logger:    logger,
		IDs:       ids,
	})
	if err != nil {
		kv.Close()
		return newCommandError("start", "loading content", err, "Check the state file or run 'folio reset' after fixing storage.")
	}
	if seq != nil {
		seq.store = contentStore
	}

	session, err := auth.New(auth.Options{
		KV:        kv,
		Logger:    logger,
		Publisher: publisher,
		Credentials: auth.Credentials{
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		},
	})
	if err != nil {
		kv.Close()
		return newCommandError("start", "creating session", err, "Check the admin section of the configuration.")
	}
	if err := session.Restore(ctx); err != nil {
		logger.Warn(ctx, "could not restore session", "error", err)
	}

	client := gemini.New(gemini.Config{
		Endpoint: cfg.Chat.Endpoint,
		Model:    cfg.Chat.Model,
		APIKey:   cfg.Chat.APIKey,
		Timeout:  cfg.Chat.TimeoutDuration(),
	})
	var generator ports.TextGenerator
	if client.Configured() {
		generator = client
	} else {
		logger.Debug(ctx, "chat provider not configured", "env", config.EnvGeminiAPIKey)
	}

	renderer, err := render.New(logger)
	if err != nil {
		kv.Close()
		return newCommandError("start", "loading templates", err, "Reinstall folio; the embedded templates are damaged.")
	}

	a.Config = cfg
	a.Logger = logger
	a.Publisher = publisher
	a.KV = kv
	a.Store = contentStore
	a.Auth = session
	a.Assistant = chat.NewAssistant(generator, logger)
	a.Renderer = renderer
	cmd.SetContext(ctx)
	return nil
}

// CommandContext returns the invocation context and a logger scoped to name.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := logging.NewCommandContext(cmd.Context())
	logger := a.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return ctx, logger.With("command", name)
}

// RequireAdmin fails unless a session user is present.
func (a *AppContext) RequireAdmin(operation string) error {
	if a.Auth != nil && a.Auth.IsAuthenticated() {
		return nil
	}
	return newCommandError(operation, "checking session", errNotAuthenticated, "Run 'folio login' first.")
}

// Close releases the storage backend. It is safe to call more than once.
func (a *AppContext) Close() error {
	a.closeOnce.Do(func() {
		if a.KV != nil {
			a.closeErr = a.KV.Close()
		}
	})
	return a.closeErr
}

func openBackend(ctx context.Context, cfg config.StorageConfig) (storage.Backend, error) {
	if cfg.Backend == config.BackendMemory {
		return storage.Open(ctx, cfg.Backend, "")
	}

	path := cfg.Path
	if path == "" {
		resolved, err := defaultStatePath(cfg.Backend)
		if err != nil {
			return nil, err
		}
		path = resolved
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return storage.Open(ctx, cfg.Backend, path)
}

// lazySequence seeds a content.SequenceGenerator from the live document on
// first use, so new ids continue after the highest persisted one.
type lazySequence struct {
	prefix string
	store  *store.Store

	once sync.Once
	gen  *content.SequenceGenerator
}

func (l *lazySequence) NewID() string {
	l.once.Do(func() {
		if l.store == nil {
			l.gen = content.NewSequenceGenerator(l.prefix, 1)
			return
		}
		l.gen = content.SeedFrom(l.store.Snapshot(), l.prefix)
	})
	return l.gen.NewID()
}
