// Package config resolves process-wide configuration for clockify-mcp:
// the global configuration directory and the API client settings.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the clockify-mcp configuration directory.
//
// Resolution:
//   - $CLOCKIFY_MCP_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/clockify-mcp if set (respects XDG on any platform)
//   - %AppData%/clockify-mcp on Windows
//   - ~/.config/clockify-mcp on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("CLOCKIFY_MCP_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "clockify-mcp")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "clockify-mcp")
		}
	}

	// macOS and Linux: ~/.config/clockify-mcp
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "clockify-mcp")
}
