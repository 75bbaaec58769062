package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timefold/clockify-mcp/internal/clockify"
)

// registerClientTools adds the client (customer) CRUD tools.
func registerClientTools(server *mcp.Server, client *clockify.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_clients",
		Description: "List clients in a workspace, with optional filters, paging, and sorting (sortColumn: NAME; sortOrder: ASCENDING or DESCENDING).",
		Annotations: readOnlyAnnotations(),
	}, handleGetClients(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_client",
		Description: "Create a client in a workspace.",
		Annotations: writeAnnotations(),
	}, handleCreateClient(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_client",
		Description: "Replace a client's fields. Only supplied fields are sent.",
		Annotations: writeAnnotations(),
	}, handleUpdateClient(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_client",
		Description: "Delete a client by id.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteClient(client))
}

// --- get_clients ---

// GetClientsInput is the input for get_clients.
type GetClientsInput struct {
	WorkspaceID string `json:"workspaceId"          jsonschema:"workspace id"`
	Name        string `json:"name,omitempty"       jsonschema:"filter by client name substring"`
	Archived    *bool  `json:"archived,omitempty"   jsonschema:"filter by archived state"`
	Page        int    `json:"page,omitempty"       jsonschema:"page number (1-based)"`
	PageSize    int    `json:"pageSize,omitempty"   jsonschema:"clients per page"`
	SortColumn  string `json:"sortColumn,omitempty" jsonschema:"sort column: NAME"`
	SortOrder   string `json:"sortOrder,omitempty"  jsonschema:"sort order: ASCENDING or DESCENDING"`
}

func handleGetClients(client *clockify.Client) mcp.ToolHandlerFor[GetClientsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetClientsInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := validateEnum("sortColumn", input.SortColumn, "NAME"); err != nil {
			return nil, nil, err
		}
		if err := validateEnum("sortOrder", input.SortOrder, "ASCENDING", "DESCENDING"); err != nil {
			return nil, nil, err
		}

		var q clockify.Query
		q.AddString("name", input.Name)
		q.AddBool("archived", input.Archived)
		q.AddInt("page", input.Page)
		q.AddInt("pageSize", input.PageSize)
		q.AddString("sortColumn", input.SortColumn)
		q.AddString("sortOrder", input.SortOrder)

		path := fmt.Sprintf("/workspaces/%s/clients%s", input.WorkspaceID, q.Encode())

		var records []clockify.ClientRecord
		if err := client.Get(ctx, path, &records); err != nil {
			return nil, nil, err
		}

		lines := make([]string, 0, len(records)+1)
		lines = append(lines, fmt.Sprintf("%d client%s:", len(records), plural(len(records))))
		for _, record := range records {
			lines = append(lines, formatClientLine(record))
		}
		return textResult(strings.Join(lines, "\n")), nil, nil
	}
}

// --- create_client ---

// CreateClientInput is the input for create_client.
type CreateClientInput struct {
	WorkspaceID string `json:"workspaceId"    jsonschema:"workspace id"`
	Name        string `json:"name"           jsonschema:"client name"`
	Note        string `json:"note,omitempty" jsonschema:"free-form note"`
}

func handleCreateClient(client *clockify.Client) mcp.ToolHandlerFor[CreateClientInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateClientInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("name", input.Name); err != nil {
			return nil, nil, err
		}

		body := clockify.ClientRequest{
			Name: strPtr(input.Name),
			Note: strPtr(input.Note),
		}

		var record clockify.ClientRecord
		path := fmt.Sprintf("/workspaces/%s/clients", input.WorkspaceID)
		if err := client.Post(ctx, path, body, &record); err != nil {
			return nil, nil, err
		}
		return textResult(fmt.Sprintf("Created client %s (id %s)", record.Name, record.ID)), nil, nil
	}
}

// --- update_client ---

// UpdateClientInput is the input for update_client.
type UpdateClientInput struct {
	WorkspaceID string `json:"workspaceId"        jsonschema:"workspace id"`
	ClientID    string `json:"clientId"           jsonschema:"client id"`
	Name        string `json:"name,omitempty"     jsonschema:"new client name"`
	Note        string `json:"note,omitempty"     jsonschema:"new note"`
	Archived    *bool  `json:"archived,omitempty" jsonschema:"archive or restore the client"`
}

func handleUpdateClient(client *clockify.Client) mcp.ToolHandlerFor[UpdateClientInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateClientInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("clientId", input.ClientID); err != nil {
			return nil, nil, err
		}

		body := clockify.ClientRequest{
			Name:     strPtr(input.Name),
			Note:     strPtr(input.Note),
			Archived: input.Archived,
		}

		var record clockify.ClientRecord
		path := fmt.Sprintf("/workspaces/%s/clients/%s", input.WorkspaceID, input.ClientID)
		if err := client.Put(ctx, path, body, &record); err != nil {
			return nil, nil, err
		}
		return textResult(fmt.Sprintf("Updated client %s (id %s)", record.Name, record.ID)), nil, nil
	}
}

// --- delete_client ---

// DeleteClientInput is the input for delete_client.
type DeleteClientInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"workspace id"`
	ClientID    string `json:"clientId"    jsonschema:"client id"`
}

func handleDeleteClient(client *clockify.Client) mcp.ToolHandlerFor[DeleteClientInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteClientInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("clientId", input.ClientID); err != nil {
			return nil, nil, err
		}

		path := fmt.Sprintf("/workspaces/%s/clients/%s", input.WorkspaceID, input.ClientID)
		if err := client.Delete(ctx, path, nil); err != nil {
			return nil, nil, err
		}
		return textResult(fmt.Sprintf("Deleted client %s", input.ClientID)), nil, nil
	}
}
