package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/timefold/clockify-mcp/internal/clockify"
	"github.com/timefold/clockify-mcp/internal/config"
	clockifymcp "github.com/timefold/clockify-mcp/internal/mcp"
	"github.com/timefold/clockify-mcp/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run clockify-mcp as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "clockify": {
        "command": "clockify-mcp",
        "env": {"CLOCKIFY_API_KEY": "..."}
      }
    }
  }`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}
}

// runServe loads the configuration, wires the client, and blocks on the
// stdio transport until the channel closes. A missing API key is only
// warned about here; each API-touching tool call fails fast with a
// configuration error.
func runServe(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.ErrOrStderr(), output.IsTTY(cmd.ErrOrStderr()))

	cfg, err := config.Load()
	if err != nil {
		printer.Error(err)
		return err
	}

	if cfg.APIKey == "" {
		printer.Warn("%s is not set; every Clockify operation will fail until it is", config.EnvAPIKey)
	}
	if printer.IsTTY() {
		printer.Status("clockify-mcp %s serving on stdio; press Ctrl+C to stop", buildVersion())
	}

	client := clockify.New(cfg)
	server := clockifymcp.NewServer(buildVersion(), client)
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		printer.Error(err)
		return err
	}
	return nil
}
