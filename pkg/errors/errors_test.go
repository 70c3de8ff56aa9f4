package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("content.jsonc", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "content.jsonc", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "content.jsonc:12")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("ui.theme.primary", "must be a hex color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "ui.theme.primary", validationErr.Field)
	require.Contains(t, validationErr.Message, "hex color")
}

func TestStorageErrorIncludesKey(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewStorageError("set", "folio_content", underlying)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "folio_content", storageErr.Key)
	require.Equal(t, "set", storageErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "storage error: set folio_content: disk full", err.Error())
}

func TestProviderErrorIncludesStatus(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("quota exceeded")
	err := NewProviderError("gemini", 429, underlying)

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	require.Equal(t, "gemini", providerErr.Provider)
	require.Equal(t, 429, providerErr.StatusCode)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "HTTP 429")
}
