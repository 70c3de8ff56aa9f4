package config

import (
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Storage.Backend == BackendMemory && cfg.Storage.Path != "" {
		return apperrors.NewValidationError("storage.path", "memory backend does not take a path", nil)
	}

	return nil
}
