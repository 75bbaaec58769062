// Package main provides the entry point for the clockify-mcp server.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/timefold/clockify-mcp/internal/config"
	"github.com/timefold/clockify-mcp/internal/envfile"
	"github.com/timefold/clockify-mcp/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command. Running with no subcommand
// starts the MCP server loop; the process exits when the transport
// channel closes.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clockify-mcp",
		Short: "MCP server for the Clockify time-tracking API",
		Long: `clockify-mcp exposes the Clockify REST API as Model Context Protocol
tools over stdio, so any MCP-capable agent can track time, manage
projects, tasks, clients and tags, and run reports.

The API key is read from CLOCKIFY_API_KEY (or a .env file).`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	// Load .env.local (then .env) for API keys that can't be exported
	// to the environment. Environment variables always take precedence
	// over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.AddCommand(newServeCmd())

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take
// precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-project override, gitignored)
//  2. $CWD/.env         (per-project)
//  3. ~/.config/clockify-mcp/env (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}
