package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timefold/clockify-mcp/internal/clockify"
)

// registerTagTools adds the tag CRUD tools.
func registerTagTools(server *mcp.Server, client *clockify.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_tags",
		Description: "List tags in a workspace, with optional filters and paging.",
		Annotations: readOnlyAnnotations(),
	}, handleGetTags(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_tag",
		Description: "Create a tag in a workspace.",
		Annotations: writeAnnotations(),
	}, handleCreateTag(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_tag",
		Description: "Replace a tag's fields. Only supplied fields are sent.",
		Annotations: writeAnnotations(),
	}, handleUpdateTag(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_tag",
		Description: "Delete a tag by id.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteTag(client))
}

// --- get_tags ---

// GetTagsInput is the input for get_tags.
type GetTagsInput struct {
	WorkspaceID string `json:"workspaceId"        jsonschema:"workspace id"`
	Name        string `json:"name,omitempty"     jsonschema:"filter by tag name substring"`
	Archived    *bool  `json:"archived,omitempty" jsonschema:"filter by archived state"`
	Page        int    `json:"page,omitempty"     jsonschema:"page number (1-based)"`
	PageSize    int    `json:"pageSize,omitempty" jsonschema:"tags per page"`
}

func handleGetTags(client *clockify.Client) mcp.ToolHandlerFor[GetTagsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetTagsInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}

		var q clockify.Query
		q.AddString("name", input.Name)
		q.AddBool("archived", input.Archived)
		q.AddInt("page", input.Page)
		q.AddInt("pageSize", input.PageSize)

		path := fmt.Sprintf("/workspaces/%s/tags%s", input.WorkspaceID, q.Encode())

		var tags []clockify.Tag
		if err := client.Get(ctx, path, &tags); err != nil {
			return nil, nil, err
		}

		lines := make([]string, 0, len(tags)+1)
		lines = append(lines, fmt.Sprintf("%d tag%s:", len(tags), plural(len(tags))))
		for _, tag := range tags {
			lines = append(lines, formatTagLine(tag))
		}
		return textResult(strings.Join(lines, "\n")), nil, nil
	}
}

// --- create_tag ---

// CreateTagInput is the input for create_tag.
type CreateTagInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"workspace id"`
	Name        string `json:"name"        jsonschema:"tag name"`
}

func handleCreateTag(client *clockify.Client) mcp.ToolHandlerFor[CreateTagInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateTagInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("name", input.Name); err != nil {
			return nil, nil, err
		}

		body := clockify.TagRequest{Name: strPtr(input.Name)}

		var tag clockify.Tag
		path := fmt.Sprintf("/workspaces/%s/tags", input.WorkspaceID)
		if err := client.Post(ctx, path, body, &tag); err != nil {
			return nil, nil, err
		}
		return textResult(fmt.Sprintf("Created tag %s (id %s)", tag.Name, tag.ID)), nil, nil
	}
}

// --- update_tag ---

// UpdateTagInput is the input for update_tag.
type UpdateTagInput struct {
	WorkspaceID string `json:"workspaceId"        jsonschema:"workspace id"`
	TagID       string `json:"tagId"              jsonschema:"tag id"`
	Name        string `json:"name,omitempty"     jsonschema:"new tag name"`
	Archived    *bool  `json:"archived,omitempty" jsonschema:"archive or restore the tag"`
}

func handleUpdateTag(client *clockify.Client) mcp.ToolHandlerFor[UpdateTagInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateTagInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("tagId", input.TagID); err != nil {
			return nil, nil, err
		}

		body := clockify.TagRequest{
			Name:     strPtr(input.Name),
			Archived: input.Archived,
		}

		var tag clockify.Tag
		path := fmt.Sprintf("/workspaces/%s/tags/%s", input.WorkspaceID, input.TagID)
		if err := client.Put(ctx, path, body, &tag); err != nil {
			return nil, nil, err
		}
		return textResult(fmt.Sprintf("Updated tag %s (id %s)", tag.Name, tag.ID)), nil, nil
	}
}

// --- delete_tag ---

// DeleteTagInput is the input for delete_tag.
type DeleteTagInput struct {
	WorkspaceID string `json:"workspaceId" jsonschema:"workspace id"`
	TagID       string `json:"tagId"       jsonschema:"tag id"`
}

func handleDeleteTag(client *clockify.Client) mcp.ToolHandlerFor[DeleteTagInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteTagInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("tagId", input.TagID); err != nil {
			return nil, nil, err
		}

		path := fmt.Sprintf("/workspaces/%s/tags/%s", input.WorkspaceID, input.TagID)
		if err := client.Delete(ctx, path, nil); err != nil {
			return nil, nil, err
		}
		return textResult(fmt.Sprintf("Deleted tag %s", input.TagID)), nil, nil
	}
}
