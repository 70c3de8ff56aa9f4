package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetValidator(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}

func TestLocalPathValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"absolute path", "/var/lib/folio/state.json", true},
		{"home relative", "~/.folio/state.db", true},
		{"relative current", "./state.json", true},
		{"relative parent", "../shared/state.json", true},
		{"space", " ", false},
		{"relative without prefix", "state.json", false},
		{"nul character", "/tmp/state\x00.json", false},
		{"path traversal middle", "/home/../../../etc/passwd", false},
		{"path traversal suffix", "/tmp/..", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Var(tt.path, "local_path")
			require.Equal(t, tt.expected, err == nil)
		})
	}
}

func TestDurationValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()
	require.NoError(t, v.Var("30s", "duration"))
	require.NoError(t, v.Var("1m30s", "duration"))
	require.Error(t, v.Var("0s", "duration"))
	require.Error(t, v.Var("soon", "duration"))
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, ValidateConfig(&cfg))
	require.Error(t, ValidateConfig(nil))
}
