package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timefold/clockify-mcp/internal/clockify"
)

// registerProjectTools adds the project CRUD tools.
func registerProjectTools(server *mcp.Server, client *clockify.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_projects",
		Description: "List projects in a workspace, with optional filters, paging, and sorting (sortColumn: NAME, CLIENT_NAME or DURATION; sortOrder: ASCENDING or DESCENDING).",
		Annotations: readOnlyAnnotations(),
	}, handleGetProjects(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_project",
		Description: "Get a single project by id.",
		Annotations: readOnlyAnnotations(),
	}, handleGetProject(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_project",
		Description: "Create a project in a workspace.",
		Annotations: writeAnnotations(),
	}, handleCreateProject(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_project",
		Description: "Replace a project's fields. Only supplied fields are sent.",
		Annotations: writeAnnotations(),
	}, handleUpdateProject(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project by id.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteProject(client))
}

// --- get_projects ---

// GetProjectsInput is the input for get_projects. Optional fields are
// serialized as query parameters in declaration order.
type GetProjectsInput struct {
	WorkspaceID string `json:"workspaceId"          jsonschema:"workspace id"`
	Name        string `json:"name,omitempty"       jsonschema:"filter by project name substring"`
	Archived    *bool  `json:"archived,omitempty"   jsonschema:"filter by archived state"`
	Billable    *bool  `json:"billable,omitempty"   jsonschema:"filter by billable state"`
	Clients     string `json:"clients,omitempty"    jsonschema:"filter by client ids, comma-joined"`
	Page        int    `json:"page,omitempty"       jsonschema:"page number (1-based)"`
	PageSize    int    `json:"pageSize,omitempty"   jsonschema:"projects per page"`
	SortColumn  string `json:"sortColumn,omitempty" jsonschema:"sort column: NAME, CLIENT_NAME or DURATION"`
	SortOrder   string `json:"sortOrder,omitempty"  jsonschema:"sort order: ASCENDING or DESCENDING"`
}

func handleGetProjects(client *clockify.Client) mcp.ToolHandlerFor[GetProjectsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetProjectsInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := validateEnum("sortColumn", input.SortColumn, "NAME", "CLIENT_NAME", "DURATION"); err != nil {
			return nil, nil, err
		}
		if err := validateEnum("sortOrder", input.SortOrder, "ASCENDING", "DESCENDING"); err != nil {
			return nil, nil, err
		}

		var q clockify.Query
		q.AddString("name", input.Name)
		q.AddBool("archived", input.Archived)
		q.AddBool("billable", input.Billable)
		q.AddString("clients", input.Clients)
		q.AddInt("page", input.Page)
		q.AddInt("pageSize", input.PageSize)
		q.AddString("sortColumn", input.SortColumn)
		q.AddString("sortOrder", input.SortOrder)

		path := fmt.Sprintf("/workspaces/%s/projects%s", input.WorkspaceID, q.Encode())

		var projects []clockify.Project
		if err := client.Get(ctx, path, &projects); err != nil {
			return nil, nil, err
		}

		lines := make([]string, 0, len(projects)+1)
		lines = append(lines, fmt.Sprintf("%d project%s:", len(projects), plural(len(projects))))
		for _, project := range projects {
			lines = append(lines, formatProjectLine(project))
		}
		return textResult(strings.Join(lines, "\n")), nil, nil
	}
}

// --- get_project ---

// GetProjectInput is the input for get_project.
type GetProjectInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"workspace id"`
	ProjectID   string `json:"projectId"   jsonschema:"project id"`
}

func handleGetProject(client *clockify.Client) mcp.ToolHandlerFor[GetProjectInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetProjectInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("projectId", input.ProjectID); err != nil {
			return nil, nil, err
		}

		var project clockify.Project
		path := fmt.Sprintf("/workspaces/%s/projects/%s", input.WorkspaceID, input.ProjectID)
		if err := client.Get(ctx, path, &project); err != nil {
			return nil, nil, err
		}
		return textResult(formatProject("Project", project)), nil, nil
	}
}

// --- create_project ---

// CreateProjectInput is the input for create_project.
type CreateProjectInput struct {
	WorkspaceID string `json:"workspaceId"        jsonschema:"workspace id"`
	Name        string `json:"name"               jsonschema:"project name"`
	ClientID    string `json:"clientId,omitempty" jsonschema:"client to associate"`
	IsPublic    *bool  `json:"isPublic,omitempty" jsonschema:"whether the project is visible to all members"`
	Color       string `json:"color,omitempty"    jsonschema:"display color, e.g. #F44336"`
	Note        string `json:"note,omitempty"     jsonschema:"free-form note"`
	Billable    *bool  `json:"billable,omitempty" jsonschema:"whether entries default to billable"`
}

func handleCreateProject(client *clockify.Client) mcp.ToolHandlerFor[CreateProjectInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateProjectInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("name", input.Name); err != nil {
			return nil, nil, err
		}

		body := clockify.ProjectRequest{
			Name:     strPtr(input.Name),
			ClientID: strPtr(input.ClientID),
			IsPublic: input.IsPublic,
			Color:    strPtr(input.Color),
			Note:     strPtr(input.Note),
			Billable: input.Billable,
		}

		var project clockify.Project
		path := fmt.Sprintf("/workspaces/%s/projects", input.WorkspaceID)
		if err := client.Post(ctx, path, body, &project); err != nil {
			return nil, nil, err
		}
		return textResult(formatProject("Created project", project)), nil, nil
	}
}

// --- update_project ---

// UpdateProjectInput is the input for update_project.
type UpdateProjectInput struct {
	WorkspaceID string `json:"workspaceId"        jsonschema:"workspace id"`
	ProjectID   string `json:"projectId"          jsonschema:"project id"`
	Name        string `json:"name,omitempty"     jsonschema:"new project name"`
	ClientID    string `json:"clientId,omitempty" jsonschema:"new client id"`
	IsPublic    *bool  `json:"isPublic,omitempty" jsonschema:"whether the project is visible to all members"`
	Color       string `json:"color,omitempty"    jsonschema:"new display color"`
	Note        string `json:"note,omitempty"     jsonschema:"new note"`
	Billable    *bool  `json:"billable,omitempty" jsonschema:"whether entries default to billable"`
	Archived    *bool  `json:"archived,omitempty" jsonschema:"archive or restore the project"`
}

func handleUpdateProject(client *clockify.Client) mcp.ToolHandlerFor[UpdateProjectInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateProjectInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("projectId", input.ProjectID); err != nil {
			return nil, nil, err
		}

		body := clockify.ProjectRequest{
			Name:     strPtr(input.Name),
			ClientID: strPtr(input.ClientID),
			IsPublic: input.IsPublic,
			Color:    strPtr(input.Color),
			Note:     strPtr(input.Note),
			Billable: input.Billable,
			Archived: input.Archived,
		}

		var project clockify.Project
		path := fmt.Sprintf("/workspaces/%s/projects/%s", input.WorkspaceID, input.ProjectID)
		if err := client.Put(ctx, path, body, &project); err != nil {
			return nil, nil, err
		}
		return textResult(formatProject("Updated project", project)), nil, nil
	}
}

// --- delete_project ---

// DeleteProjectInput is the input for delete_project.
type DeleteProjectInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"workspace id"`
	ProjectID   string `json:"projectId"   jsonschema:"project id"`
}

func handleDeleteProject(client *clockify.Client) mcp.ToolHandlerFor[DeleteProjectInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteProjectInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("projectId", input.ProjectID); err != nil {
			return nil, nil, err
		}

		path := fmt.Sprintf("/workspaces/%s/projects/%s", input.WorkspaceID, input.ProjectID)
		if err := client.Delete(ctx, path, nil); err != nil {
			return nil, nil, err
		}
		return textResult(fmt.Sprintf("Deleted project %s", input.ProjectID)), nil, nil
	}
}

// formatProject renders a single project in full.
func formatProject(verb string, project clockify.Project) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (id %s)\n", verb, project.Name, project.ID)
	if project.ClientName != "" {
		fmt.Fprintf(&sb, "Client: %s\n", project.ClientName)
	} else if project.ClientID != "" {
		fmt.Fprintf(&sb, "Client: %s\n", project.ClientID)
	}
	if project.Note != "" {
		fmt.Fprintf(&sb, "Note: %s\n", project.Note)
	}
	fmt.Fprintf(&sb, "Billable: %t, archived: %t", project.Billable, project.Archived)
	return sb.String()
}
