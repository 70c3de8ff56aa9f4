package config

import (
	"time"
)

// Storage backends understood by the CLI.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Id strategies for new projects and education entries.
const (
	IDStrategyUUID     = "uuid"
	IDStrategySequence = "sequence"
)

// Default values applied before a configuration file is decoded.
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultChatModel    = "gemini-2.5-flash-lite-latest"
	DefaultChatEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultChatTimeout  = "30s"
	DefaultAdminEmail   = "admin@neonfolio.com"
	DefaultAdminPass    = "admin123"
)

// Config represents the folio configuration file.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Admin   AdminConfig   `yaml:"admin"`
	IDs     IDConfig      `yaml:"ids"`
	Chat    ChatConfig    `yaml:"chat"`
}

// StorageConfig selects the key/value backend. An empty path means the
// backend's default location under the folio home directory.
type StorageConfig struct {
	Backend string `yaml:"backend" validate:"required,oneof=file sqlite memory"`
	Path    string `yaml:"path,omitempty" validate:"omitempty,local_path"`
}

// LogConfig holds logging parameters.
type LogConfig struct {
	Level  string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"required,oneof=console json"`
}

// AdminConfig is the single credential pair accepted by login.
type AdminConfig struct {
	Email    string `yaml:"email" validate:"required,email"`
	Password string `yaml:"password" validate:"required,min=6"`
}

type IDConfig struct {
	Strategy string `yaml:"strategy" validate:"required,oneof=uuid sequence"`
}

// ChatConfig configures the assistant's text generation provider. An empty
// APIKey leaves the assistant offline.
type ChatConfig struct {
	Model    string `yaml:"model" validate:"required,max=100"`
	Endpoint string `yaml:"endpoint" validate:"required,url"`
	APIKey   string `yaml:"api_key,omitempty"`
	Timeout  string `yaml:"timeout" validate:"required,duration"`
}

// TimeoutDuration returns the parsed timeout. Validated configurations never
// fail to parse; anything else falls back to the default.
func (c ChatConfig) TimeoutDuration() time.Duration {
	if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(DefaultChatTimeout)
	return d
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Storage: StorageConfig{Backend: BackendFile},
		Log:     LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Admin:   AdminConfig{Email: DefaultAdminEmail, Password: DefaultAdminPass},
		IDs:     IDConfig{Strategy: IDStrategyUUID},
		Chat: ChatConfig{
			Model:    DefaultChatModel,
			Endpoint: DefaultChatEndpoint,
			Timeout:  DefaultChatTimeout,
		},
	}
}
