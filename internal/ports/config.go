package ports

import (
	"context"

	"github.com/alexisbeaulieu97/folio/internal/config"
)

// ConfigLoader resolves the CLI configuration.
type ConfigLoader interface {
	// Load reads path, returning the defaults when the file does not exist.
	Load(ctx context.Context, path string) (*config.Config, error)
	// Validate checks path without applying it.
	Validate(ctx context.Context, path string) error
}
