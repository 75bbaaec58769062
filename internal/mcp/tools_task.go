package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timefold/clockify-mcp/internal/clockify"
)

// registerTaskTools adds the task CRUD tools. Tasks nest under a
// project, so every tool takes both workspaceId and projectId.
func registerTaskTools(server *mcp.Server, client *clockify.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_tasks",
		Description: "List tasks in a project, with optional filters and paging.",
		Annotations: readOnlyAnnotations(),
	}, handleGetTasks(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_task",
		Description: "Get a single task by id.",
		Annotations: readOnlyAnnotations(),
	}, handleGetTask(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_task",
		Description: "Create a task in a project (status: ACTIVE or DONE).",
		Annotations: writeAnnotations(),
	}, handleCreateTask(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_task",
		Description: "Replace a task's fields (status: ACTIVE or DONE). Only supplied fields are sent.",
		Annotations: writeAnnotations(),
	}, handleUpdateTask(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task by id.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteTask(client))
}

// taskPath builds the nested task collection path.
func taskPath(workspaceID, projectID string) string {
	return fmt.Sprintf("/workspaces/%s/projects/%s/tasks", workspaceID, projectID)
}

// requireTaskScope validates the identifiers every task tool needs.
func requireTaskScope(workspaceID, projectID string) error {
	if err := requireID("workspaceId", workspaceID); err != nil {
		return err
	}
	return requireID("projectId", projectID)
}

// --- get_tasks ---

// GetTasksInput is the input for get_tasks.
type GetTasksInput struct {
	WorkspaceID string `json:"workspaceId"        jsonschema:"workspace id"`
	ProjectID   string `json:"projectId"          jsonschema:"project id"`
	Name        string `json:"name,omitempty"     jsonschema:"filter by task name substring"`
	IsActive    *bool  `json:"isActive,omitempty" jsonschema:"filter by active state"`
	Page        int    `json:"page,omitempty"     jsonschema:"page number (1-based)"`
	PageSize    int    `json:"pageSize,omitempty" jsonschema:"tasks per page"`
}

func handleGetTasks(client *clockify.Client) mcp.ToolHandlerFor[GetTasksInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetTasksInput) (*mcp.CallToolResult, any, error) {
		if err := requireTaskScope(input.WorkspaceID, input.ProjectID); err != nil {
			return nil, nil, err
		}

		var q clockify.Query
		q.AddString("name", input.Name)
		q.AddBool("isActive", input.IsActive)
		q.AddInt("page", input.Page)
		q.AddInt("pageSize", input.PageSize)

		var tasks []clockify.Task
		path := taskPath(input.WorkspaceID, input.ProjectID) + q.Encode()
		if err := client.Get(ctx, path, &tasks); err != nil {
			return nil, nil, err
		}

		lines := make([]string, 0, len(tasks)+1)
		lines = append(lines, fmt.Sprintf("%d task%s:", len(tasks), plural(len(tasks))))
		for _, task := range tasks {
			lines = append(lines, formatTaskLine(task))
		}
		return textResult(strings.Join(lines, "\n")), nil, nil
	}
}

// --- get_task ---

// GetTaskInput is the input for get_task.
type GetTaskInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"workspace id"`
	ProjectID   string `json:"projectId"   jsonschema:"project id"`
	TaskID      string `json:"taskId"      jsonschema:"task id"`
}

func handleGetTask(client *clockify.Client) mcp.ToolHandlerFor[GetTaskInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetTaskInput) (*mcp.CallToolResult, any, error) {
		if err := requireTaskScope(input.WorkspaceID, input.ProjectID); err != nil {
			return nil, nil, err
		}
		if err := requireID("taskId", input.TaskID); err != nil {
			return nil, nil, err
		}

		var task clockify.Task
		path := taskPath(input.WorkspaceID, input.ProjectID) + "/" + input.TaskID
		if err := client.Get(ctx, path, &task); err != nil {
			return nil, nil, err
		}
		return textResult(formatTask("Task", task)), nil, nil
	}
}

// --- create_task ---

// CreateTaskInput is the input for create_task.
type CreateTaskInput struct {
	WorkspaceID string   `json:"workspaceId"           jsonschema:"workspace id"`
	ProjectID   string   `json:"projectId"             jsonschema:"project id"`
	Name        string   `json:"name"                  jsonschema:"task name"`
	AssigneeIDs []string `json:"assigneeIds,omitempty" jsonschema:"user ids assigned to the task"`
	Estimate    string   `json:"estimate,omitempty"    jsonschema:"time estimate as ISO-8601 duration, e.g. PT2H"`
	Status      string   `json:"status,omitempty"      jsonschema:"task status: ACTIVE or DONE"`
	Billable    *bool    `json:"billable,omitempty"    jsonschema:"whether entries on the task are billable"`
}

func handleCreateTask(client *clockify.Client) mcp.ToolHandlerFor[CreateTaskInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateTaskInput) (*mcp.CallToolResult, any, error) {
		if err := requireTaskScope(input.WorkspaceID, input.ProjectID); err != nil {
			return nil, nil, err
		}
		if err := requireID("name", input.Name); err != nil {
			return nil, nil, err
		}
		if err := validateEnum("status", input.Status, "ACTIVE", "DONE"); err != nil {
			return nil, nil, err
		}

		body := clockify.TaskRequest{
			Name:        strPtr(input.Name),
			AssigneeIDs: input.AssigneeIDs,
			Estimate:    strPtr(input.Estimate),
			Status:      strPtr(input.Status),
			Billable:    input.Billable,
		}

		var task clockify.Task
		if err := client.Post(ctx, taskPath(input.WorkspaceID, input.ProjectID), body, &task); err != nil {
			return nil, nil, err
		}
		return textResult(formatTask("Created task", task)), nil, nil
	}
}

// --- update_task ---

// UpdateTaskInput is the input for update_task.
type UpdateTaskInput struct {
	WorkspaceID string   `json:"workspaceId"           jsonschema:"workspace id"`
	ProjectID   string   `json:"projectId"             jsonschema:"project id"`
	TaskID      string   `json:"taskId"                jsonschema:"task id"`
	Name        string   `json:"name,omitempty"        jsonschema:"new task name"`
	AssigneeIDs []string `json:"assigneeIds,omitempty" jsonschema:"new assignee user ids"`
	Estimate    string   `json:"estimate,omitempty"    jsonschema:"new estimate as ISO-8601 duration"`
	Status      string   `json:"status,omitempty"      jsonschema:"task status: ACTIVE or DONE"`
	Billable    *bool    `json:"billable,omitempty"    jsonschema:"whether entries on the task are billable"`
}

func handleUpdateTask(client *clockify.Client) mcp.ToolHandlerFor[UpdateTaskInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateTaskInput) (*mcp.CallToolResult, any, error) {
		if err := requireTaskScope(input.WorkspaceID, input.ProjectID); err != nil {
			return nil, nil, err
		}
		if err := requireID("taskId", input.TaskID); err != nil {
			return nil, nil, err
		}
		if err := validateEnum("status", input.Status, "ACTIVE", "DONE"); err != nil {
			return nil, nil, err
		}

		body := clockify.TaskRequest{
			Name:        strPtr(input.Name),
			AssigneeIDs: input.AssigneeIDs,
			Estimate:    strPtr(input.Estimate),
			Status:      strPtr(input.Status),
			Billable:    input.Billable,
		}

		var task clockify.Task
		path := taskPath(input.WorkspaceID, input.ProjectID) + "/" + input.TaskID
		if err := client.Put(ctx, path, body, &task); err != nil {
			return nil, nil, err
		}
		return textResult(formatTask("Updated task", task)), nil, nil
	}
}

// --- delete_task ---

// DeleteTaskInput is the input for delete_task.
type DeleteTaskInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"workspace id"`
	ProjectID   string `json:"projectId"   jsonschema:"project id"`
	TaskID      string `json:"taskId"      jsonschema:"task id"`
}

func handleDeleteTask(client *clockify.Client) mcp.ToolHandlerFor[DeleteTaskInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteTaskInput) (*mcp.CallToolResult, any, error) {
		if err := requireTaskScope(input.WorkspaceID, input.ProjectID); err != nil {
			return nil, nil, err
		}
		if err := requireID("taskId", input.TaskID); err != nil {
			return nil, nil, err
		}

		path := taskPath(input.WorkspaceID, input.ProjectID) + "/" + input.TaskID
		if err := client.Delete(ctx, path, nil); err != nil {
			return nil, nil, err
		}
		return textResult(fmt.Sprintf("Deleted task %s", input.TaskID)), nil, nil
	}
}

// formatTask renders a single task in full.
func formatTask(verb string, task clockify.Task) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (id %s)\n", verb, task.Name, task.ID)
	fmt.Fprintf(&sb, "Status: %s\n", task.Status)
	if task.Estimate != "" {
		fmt.Fprintf(&sb, "Estimate: %s\n", task.Estimate)
	}
	if len(task.AssigneeIDs) > 0 {
		fmt.Fprintf(&sb, "Assignees: %s\n", strings.Join(task.AssigneeIDs, ", "))
	}
	fmt.Fprintf(&sb, "Billable: %t", task.Billable)
	return sb.String()
}
