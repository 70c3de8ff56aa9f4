package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/config"
)

// setupHome points HOME at a fresh directory so every command in the test
// shares one state file.
func setupHome(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvGeminiAPIKey, "")
	return home
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	stdout, stderr, err := executeCommand(args...)
	require.NoError(t, err, "stderr: %s", stderr)
	return stdout
}

func login(t *testing.T) {
	t.Helper()
	mustExecute(t, "login", "--email", config.DefaultAdminEmail, "--password", config.DefaultAdminPass)
}

func writeConfig(t *testing.T, home, body string) string {
	t.Helper()
	path := filepath.Join(home, ".folio", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func showDocument(t *testing.T) map[string]interface{} {
	t.Helper()
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "show", "--json")), &doc))
	return doc
}

func lookup(t *testing.T, doc map[string]interface{}, path ...string) interface{} {
	t.Helper()
	var current interface{} = doc
	for _, key := range path {
		obj, ok := current.(map[string]interface{})
		require.True(t, ok, "%v is not an object", key)
		current = obj[key]
	}
	return current
}
