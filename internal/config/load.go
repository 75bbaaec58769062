package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/timefold/clockify-mcp/internal/clockify"
)

// Environment variables read by Load. The API key is only ever taken
// from the environment (possibly populated from a .env file).
const (
	EnvAPIKey         = "CLOCKIFY_API_KEY"
	EnvBaseURL        = "CLOCKIFY_BASE_URL"
	EnvReportsBaseURL = "CLOCKIFY_REPORTS_BASE_URL"
)

// fileConfig is the shape of the optional config.yaml in Dir().
type fileConfig struct {
	BaseURL        string `yaml:"base_url"`
	ReportsBaseURL string `yaml:"reports_base_url"`
}

// Load assembles the client configuration. Precedence per field:
// environment variable, then config.yaml in Dir(), then the built-in
// Clockify endpoints. A missing API key is not an error here; the
// client fails fast when the first request is attempted.
func Load() (clockify.Config, error) {
	cfg := clockify.Config{
		APIKey:         os.Getenv(EnvAPIKey),
		BaseURL:        clockify.DefaultBaseURL,
		ReportsBaseURL: clockify.DefaultReportsBaseURL,
	}

	if dir := Dir(); dir != "" {
		fileCfg, err := readFileConfig(filepath.Join(dir, "config.yaml"))
		if err != nil {
			return clockify.Config{}, err
		}
		if fileCfg.BaseURL != "" {
			cfg.BaseURL = fileCfg.BaseURL
		}
		if fileCfg.ReportsBaseURL != "" {
			cfg.ReportsBaseURL = fileCfg.ReportsBaseURL
		}
	}

	if url := os.Getenv(EnvBaseURL); url != "" {
		cfg.BaseURL = url
	}
	if url := os.Getenv(EnvReportsBaseURL); url != "" {
		cfg.ReportsBaseURL = url
	}

	return cfg, nil
}

// readFileConfig parses the optional YAML config file.
// A missing file yields the zero value; a malformed file is an error.
func readFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
