package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timefold/clockify-mcp/internal/clockify"
)

// registerTimeEntryTools adds the time entry CRUD tools.
func registerTimeEntryTools(server *mcp.Server, client *clockify.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_time_entry",
		Description: "Create a time entry. Omit end to start a running entry. Date-only start/end values are expanded to full instants.",
		Annotations: writeAnnotations(),
	}, handleCreateTimeEntry(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_time_entry",
		Description: "Get a single time entry by id.",
		Annotations: readOnlyAnnotations(),
	}, handleGetTimeEntry(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_time_entry",
		Description: "Replace a time entry's fields. Date-only start/end values are expanded to full instants.",
		Annotations: writeAnnotations(),
	}, handleUpdateTimeEntry(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_time_entry",
		Description: "Delete a time entry by id.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteTimeEntry(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stop_time_entry",
		Description: "Stop the currently running time entry for a user by setting its end instant (defaults to now).",
		Annotations: writeAnnotations(),
	}, handleStopTimeEntry(client))
}

// --- create_time_entry ---

// CreateTimeEntryInput is the input for create_time_entry.
type CreateTimeEntryInput struct {
	WorkspaceID string   `json:"workspaceId"           jsonschema:"workspace id"`
	Start       string   `json:"start"                 jsonschema:"start instant (ISO-8601; date-only values are expanded)"`
	End         string   `json:"end,omitempty"         jsonschema:"end instant; omit for a running entry"`
	Description string   `json:"description,omitempty" jsonschema:"what was worked on"`
	ProjectID   string   `json:"projectId,omitempty"   jsonschema:"project to associate"`
	TaskID      string   `json:"taskId,omitempty"      jsonschema:"task to associate"`
	TagIDs      []string `json:"tagIds,omitempty"      jsonschema:"tag ids to attach"`
	Billable    *bool    `json:"billable,omitempty"    jsonschema:"whether the entry is billable"`
}

func handleCreateTimeEntry(client *clockify.Client) mcp.ToolHandlerFor[CreateTimeEntryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateTimeEntryInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("start", input.Start); err != nil {
			return nil, nil, err
		}

		body, err := buildTimeEntryBody(input.Start, input.End, input.Description,
			input.ProjectID, input.TaskID, input.TagIDs, input.Billable)
		if err != nil {
			return nil, nil, err
		}

		var entry clockify.TimeEntry
		path := fmt.Sprintf("/workspaces/%s/time-entries", input.WorkspaceID)
		if err := client.Post(ctx, path, body, &entry); err != nil {
			return nil, nil, err
		}
		return textResult(formatTimeEntry("Created", entry)), nil, nil
	}
}

// --- get_time_entry ---

// GetTimeEntryInput is the input for get_time_entry.
type GetTimeEntryInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"workspace id"`
	TimeEntryID string `json:"timeEntryId" jsonschema:"time entry id"`
}

func handleGetTimeEntry(client *clockify.Client) mcp.ToolHandlerFor[GetTimeEntryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetTimeEntryInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("timeEntryId", input.TimeEntryID); err != nil {
			return nil, nil, err
		}

		var entry clockify.TimeEntry
		path := fmt.Sprintf("/workspaces/%s/time-entries/%s", input.WorkspaceID, input.TimeEntryID)
		if err := client.Get(ctx, path, &entry); err != nil {
			return nil, nil, err
		}
		return textResult(formatTimeEntry("Time", entry)), nil, nil
	}
}

// --- update_time_entry ---

// UpdateTimeEntryInput is the input for update_time_entry.
type UpdateTimeEntryInput struct {
	WorkspaceID string   `json:"workspaceId"           jsonschema:"workspace id"`
	TimeEntryID string   `json:"timeEntryId"           jsonschema:"time entry id"`
	Start       string   `json:"start,omitempty"       jsonschema:"new start instant"`
	End         string   `json:"end,omitempty"         jsonschema:"new end instant"`
	Description string   `json:"description,omitempty" jsonschema:"new description"`
	ProjectID   string   `json:"projectId,omitempty"   jsonschema:"new project id"`
	TaskID      string   `json:"taskId,omitempty"      jsonschema:"new task id"`
	TagIDs      []string `json:"tagIds,omitempty"      jsonschema:"new tag ids"`
	Billable    *bool    `json:"billable,omitempty"    jsonschema:"whether the entry is billable"`
}

func handleUpdateTimeEntry(client *clockify.Client) mcp.ToolHandlerFor[UpdateTimeEntryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateTimeEntryInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("timeEntryId", input.TimeEntryID); err != nil {
			return nil, nil, err
		}

		body, err := buildTimeEntryBody(input.Start, input.End, input.Description,
			input.ProjectID, input.TaskID, input.TagIDs, input.Billable)
		if err != nil {
			return nil, nil, err
		}

		var entry clockify.TimeEntry
		path := fmt.Sprintf("/workspaces/%s/time-entries/%s", input.WorkspaceID, input.TimeEntryID)
		if err := client.Put(ctx, path, body, &entry); err != nil {
			return nil, nil, err
		}
		return textResult(formatTimeEntry("Updated", entry)), nil, nil
	}
}

// --- delete_time_entry ---

// DeleteTimeEntryInput is the input for delete_time_entry.
type DeleteTimeEntryInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"workspace id"`
	TimeEntryID string `json:"timeEntryId" jsonschema:"time entry id"`
}

func handleDeleteTimeEntry(client *clockify.Client) mcp.ToolHandlerFor[DeleteTimeEntryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteTimeEntryInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("timeEntryId", input.TimeEntryID); err != nil {
			return nil, nil, err
		}

		path := fmt.Sprintf("/workspaces/%s/time-entries/%s", input.WorkspaceID, input.TimeEntryID)
		if err := client.Delete(ctx, path, nil); err != nil {
			return nil, nil, err
		}
		return textResult(fmt.Sprintf("Deleted time entry %s", input.TimeEntryID)), nil, nil
	}
}

// --- stop_time_entry ---

// StopTimeEntryInput is the input for stop_time_entry. The operation
// addresses whatever entry is currently open for the user, not a
// specific entry id.
type StopTimeEntryInput struct {
	WorkspaceID string `json:"workspaceId"   jsonschema:"workspace id"`
	UserID      string `json:"userId"        jsonschema:"user whose running entry to stop"`
	End         string `json:"end,omitempty" jsonschema:"end instant; defaults to the current time"`
}

func handleStopTimeEntry(client *clockify.Client) mcp.ToolHandlerFor[StopTimeEntryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StopTimeEntryInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("userId", input.UserID); err != nil {
			return nil, nil, err
		}

		end := input.End
		if end == "" {
			end = clockify.NowInstant()
		} else {
			normalized, err := clockify.NormalizeInstant(end)
			if err != nil {
				return nil, nil, err
			}
			end = normalized
		}

		var entry clockify.TimeEntry
		path := fmt.Sprintf("/workspaces/%s/user/%s/time-entries", input.WorkspaceID, input.UserID)
		if err := client.Patch(ctx, path, clockify.StopTimeEntryRequest{End: end}, &entry); err != nil {
			return nil, nil, err
		}
		return textResult(formatTimeEntry("Stopped", entry)), nil, nil
	}
}

// buildTimeEntryBody assembles a time entry request, normalizing
// date-like start/end values into full instants.
func buildTimeEntryBody(start, end, description, projectID, taskID string,
	tagIDs []string, billable *bool,
) (clockify.TimeEntryRequest, error) {
	body := clockify.TimeEntryRequest{
		Description: strPtr(description),
		ProjectID:   strPtr(projectID),
		TaskID:      strPtr(taskID),
		TagIDs:      tagIDs,
		Billable:    billable,
	}

	if start != "" {
		normalized, err := clockify.NormalizeInstant(start)
		if err != nil {
			return clockify.TimeEntryRequest{}, err
		}
		body.Start = normalized
	}
	if end != "" {
		normalized, err := clockify.NormalizeInstant(end)
		if err != nil {
			return clockify.TimeEntryRequest{}, err
		}
		body.End = &normalized
	}
	return body, nil
}
