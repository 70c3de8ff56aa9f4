package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// EnvGeminiAPIKey overrides chat.api_key when set.
const EnvGeminiAPIKey = "FOLIO_GEMINI_API_KEY"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk on top of the defaults,
// applies environment overrides, validates it, and returns the result.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	return Parse(path, data)
}

// Parse decodes data as a configuration document. Path is only used in
// error messages.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	ApplyEnv(&cfg, os.LookupEnv)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault parses path, falling back to the defaults when the file
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := ParseConfig(path)
	if err == nil {
		return cfg, nil
	}

	var parseErr *apperrors.ParseError
	if path == "" || (errors.As(err, &parseErr) && errors.Is(parseErr.Err, os.ErrNotExist)) {
		fallback := Default()
		ApplyEnv(&fallback, os.LookupEnv)
		return &fallback, nil
	}
	return nil, err
}

// ApplyEnv overlays environment overrides using lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if cfg == nil || lookup == nil {
		return
	}
	if key, ok := lookup(EnvGeminiAPIKey); ok && key != "" {
		cfg.Chat.APIKey = key
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
