package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timefold/clockify-mcp/internal/clockify"
)

// registerUserTools adds the user and workspace tools.
func registerUserTools(server *mcp.Server, client *clockify.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_current_user",
		Description: "Get the user owning the configured API key: name, email, id, and active workspace.",
		Annotations: readOnlyAnnotations(),
	}, handleGetCurrentUser(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_workspaces",
		Description: "List all workspaces visible to the configured API key.",
		Annotations: readOnlyAnnotations(),
	}, handleGetWorkspaces(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_time_entries",
		Description: "List time entries for a user in a workspace, with optional filters and paging.",
		Annotations: readOnlyAnnotations(),
	}, handleGetTimeEntries(client))
}

// --- get_current_user ---

// GetCurrentUserInput is the input for get_current_user (no parameters
// needed).
type GetCurrentUserInput struct{}

func handleGetCurrentUser(client *clockify.Client) mcp.ToolHandlerFor[GetCurrentUserInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GetCurrentUserInput) (*mcp.CallToolResult, any, error) {
		var user clockify.User
		if err := client.Get(ctx, "/user", &user); err != nil {
			return nil, nil, err
		}

		summary := fmt.Sprintf("%s <%s> (id %s)\nActive workspace: %s",
			user.Name, user.Email, user.ID, user.ActiveWorkspace)
		return textResult(summary), nil, nil
	}
}

// --- get_workspaces ---

// GetWorkspacesInput is the input for get_workspaces (no parameters
// needed).
type GetWorkspacesInput struct{}

func handleGetWorkspaces(client *clockify.Client) mcp.ToolHandlerFor[GetWorkspacesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GetWorkspacesInput) (*mcp.CallToolResult, any, error) {
		var workspaces []clockify.Workspace
		if err := client.Get(ctx, "/workspaces", &workspaces); err != nil {
			return nil, nil, err
		}

		lines := make([]string, 0, len(workspaces)+1)
		lines = append(lines, fmt.Sprintf("%d workspace%s:", len(workspaces), plural(len(workspaces))))
		for _, ws := range workspaces {
			lines = append(lines, fmt.Sprintf("- %s (id %s)", ws.Name, ws.ID))
		}
		return textResult(strings.Join(lines, "\n")), nil, nil
	}
}

// --- get_time_entries ---

// GetTimeEntriesInput is the input for get_time_entries. All optional
// fields are serialized as query parameters in declaration order.
type GetTimeEntriesInput struct {
	WorkspaceID string `json:"workspaceId"           jsonschema:"workspace id"`
	UserID      string `json:"userId"                jsonschema:"user id whose entries to list"`
	Description string `json:"description,omitempty" jsonschema:"filter by description substring"`
	Start       string `json:"start,omitempty"       jsonschema:"only entries starting after this instant"`
	End         string `json:"end,omitempty"         jsonschema:"only entries ending before this instant"`
	Project     string `json:"project,omitempty"     jsonschema:"filter by project id"`
	Task        string `json:"task,omitempty"        jsonschema:"filter by task id"`
	Tags        string `json:"tags,omitempty"        jsonschema:"filter by tag ids, comma-joined"`
	Page        int    `json:"page,omitempty"        jsonschema:"page number (1-based)"`
	PageSize    int    `json:"pageSize,omitempty"    jsonschema:"entries per page"`
}

func handleGetTimeEntries(client *clockify.Client) mcp.ToolHandlerFor[GetTimeEntriesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetTimeEntriesInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("userId", input.UserID); err != nil {
			return nil, nil, err
		}

		var q clockify.Query
		q.AddString("description", input.Description)
		q.AddString("start", input.Start)
		q.AddString("end", input.End)
		q.AddString("project", input.Project)
		q.AddString("task", input.Task)
		q.AddString("tags", input.Tags)
		q.AddInt("page", input.Page)
		q.AddInt("pageSize", input.PageSize)

		path := fmt.Sprintf("/workspaces/%s/user/%s/time-entries%s",
			input.WorkspaceID, input.UserID, q.Encode())

		var entries []clockify.TimeEntry
		if err := client.Get(ctx, path, &entries); err != nil {
			return nil, nil, err
		}

		lines := make([]string, 0, len(entries)+1)
		lines = append(lines, fmt.Sprintf("%d time entr%s:", len(entries), pluralEntry(len(entries))))
		for _, entry := range entries {
			lines = append(lines, formatTimeEntryLine(entry))
		}
		return textResult(strings.Join(lines, "\n")), nil, nil
	}
}

// pluralEntry completes "entr" as "entry" or "entries".
func pluralEntry(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
