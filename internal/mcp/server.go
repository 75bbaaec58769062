// Package mcp provides a Model Context Protocol server for the
// Clockify API. It exposes the time-tracking operations as MCP tools
// that any MCP-capable agent can use; each tool call performs at most
// one round trip to the remote API.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timefold/clockify-mcp/internal/clockify"
)

// NewServer creates an MCP server with all Clockify tools registered.
func NewServer(version string, client *clockify.Client) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "clockify-mcp",
		Version: version,
	}, nil)
	registerTools(server, client)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
// OpenWorldHint is true: every read reaches the remote API.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(true),
	}
}

// writeAnnotations returns annotations for create/update tools.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// destructiveAnnotations returns annotations for delete tools.
// Deletes are idempotent from the adapter's side: repeating one simply
// surfaces whatever the remote API says about the missing resource.
func destructiveAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds the full operation catalogue to the server,
// grouped by resource.
func registerTools(server *mcp.Server, client *clockify.Client) {
	registerUserTools(server, client)
	registerTimeEntryTools(server, client)
	registerProjectTools(server, client)
	registerTaskTools(server, client)
	registerClientTools(server, client)
	registerTagTools(server, client)
	registerReportTools(server, client)
}
