package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/config"
)

const folioDir = ".folio"

func folioHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, folioDir), nil
}

func defaultConfigPath() (string, error) {
	dir, err := folioHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.yaml"), nil
}

// defaultStatePath returns the state location for backend.
func defaultStatePath(backend string) (string, error) {
	dir, err := folioHome()
	if err != nil {
		return "", err
	}

	if backend == config.BackendSQLite {
		return filepath.Join(dir, "state.db"), nil
	}
	return filepath.Join(dir, "state.json"), nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}
