package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/timefold/clockify-mcp/internal/clockify"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CLOCKIFY_MCP_CONFIG_HOME", t.TempDir()) // no config.yaml there
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvReportsBaseURL, "")
	_ = os.Unsetenv(EnvAPIKey)          //nolint:errcheck
	_ = os.Unsetenv(EnvBaseURL)         //nolint:errcheck
	_ = os.Unsetenv(EnvReportsBaseURL)  //nolint:errcheck

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
	if cfg.BaseURL != clockify.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.ReportsBaseURL != clockify.DefaultReportsBaseURL {
		t.Errorf("ReportsBaseURL = %q, want default", cfg.ReportsBaseURL)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "base_url: https://clockify.example.test/api/v1\nreports_base_url: https://reports.example.test/v1\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CLOCKIFY_MCP_CONFIG_HOME", dir)
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvReportsBaseURL, "")
	_ = os.Unsetenv(EnvBaseURL)        //nolint:errcheck
	_ = os.Unsetenv(EnvReportsBaseURL) //nolint:errcheck

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.BaseURL != "https://clockify.example.test/api/v1" {
		t.Errorf("BaseURL = %q, want file value", cfg.BaseURL)
	}
	if cfg.ReportsBaseURL != "https://reports.example.test/v1" {
		t.Errorf("ReportsBaseURL = %q, want file value", cfg.ReportsBaseURL)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := "base_url: https://from-file.test/api/v1\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CLOCKIFY_MCP_CONFIG_HOME", dir)
	t.Setenv(EnvBaseURL, "https://from-env.test/api/v1")
	t.Setenv(EnvAPIKey, "key-from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.BaseURL != "https://from-env.test/api/v1" {
		t.Errorf("BaseURL = %q, want env value", cfg.BaseURL)
	}
	if cfg.APIKey != "key-from-env" {
		t.Errorf("APIKey = %q, want env value", cfg.APIKey)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml:::"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CLOCKIFY_MCP_CONFIG_HOME", dir)

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config file, got nil")
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("CLOCKIFY_MCP_CONFIG_HOME", "/custom/dir")
	if got := Dir(); got != "/custom/dir" {
		t.Errorf("Dir() = %q, want /custom/dir", got)
	}
}

func TestDir_XDG(t *testing.T) {
	t.Setenv("CLOCKIFY_MCP_CONFIG_HOME", "")
	_ = os.Unsetenv("CLOCKIFY_MCP_CONFIG_HOME") //nolint:errcheck
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	want := filepath.Join("/xdg/config", "clockify-mcp")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}
