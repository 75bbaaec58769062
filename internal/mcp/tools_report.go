package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timefold/clockify-mcp/internal/clockify"
)

// Report defaults. The report service requires paging in the detailed
// filter and caps page size at 1000.
const (
	defaultReportPage     = 1
	defaultReportPageSize = 50
)

// registerReportTools adds the two report tools. Both post to the
// report-service base URL, not the primary API.
func registerReportTools(server *mcp.Server, client *clockify.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_detailed_report",
		Description: "Run a detailed report: per-entry rows over a date range, with optional entity filters, paging (pageSize capped at 1000), and sorting (sortOrder: ASCENDING or DESCENDING).",
		Annotations: readOnlyAnnotations(),
	}, handleGetDetailedReport(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_summary_report",
		Description: "Run a summary report: grouped totals over a date range (groups default to PROJECT; exportType: JSON, PDF, CSV or XLSX).",
		Annotations: readOnlyAnnotations(),
	}, handleGetSummaryReport(client))
}

// --- get_detailed_report ---

// GetDetailedReportInput is the input for get_detailed_report.
type GetDetailedReportInput struct {
	WorkspaceID    string   `json:"workspaceId"          jsonschema:"workspace id"`
	DateRangeStart string   `json:"dateRangeStart"       jsonschema:"range start (ISO-8601; date-only values are expanded)"`
	DateRangeEnd   string   `json:"dateRangeEnd"         jsonschema:"range end (ISO-8601; date-only values are expanded)"`
	Users          []string `json:"users,omitempty"      jsonschema:"filter by user ids"`
	Clients        []string `json:"clients,omitempty"    jsonschema:"filter by client ids"`
	Projects       []string `json:"projects,omitempty"   jsonschema:"filter by project ids"`
	Tasks          []string `json:"tasks,omitempty"      jsonschema:"filter by task ids"`
	Tags           []string `json:"tags,omitempty"       jsonschema:"filter by tag ids"`
	Page           int      `json:"page,omitempty"       jsonschema:"page number (1-based)"`
	PageSize       int      `json:"pageSize,omitempty"   jsonschema:"rows per page, capped at 1000"`
	SortColumn     string   `json:"sortColumn,omitempty" jsonschema:"column to sort rows by, e.g. DATE"`
	SortOrder      string   `json:"sortOrder,omitempty"  jsonschema:"sort order: ASCENDING or DESCENDING"`
}

func handleGetDetailedReport(client *clockify.Client) mcp.ToolHandlerFor[GetDetailedReportInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetDetailedReportInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("dateRangeStart", input.DateRangeStart); err != nil {
			return nil, nil, err
		}
		if err := requireID("dateRangeEnd", input.DateRangeEnd); err != nil {
			return nil, nil, err
		}
		if err := validateEnum("sortOrder", input.SortOrder, "ASCENDING", "DESCENDING"); err != nil {
			return nil, nil, err
		}

		body, err := buildDetailedReportRequest(input)
		if err != nil {
			return nil, nil, err
		}

		var report clockify.DetailedReportResponse
		path := fmt.Sprintf("/workspaces/%s/reports/detailed", input.WorkspaceID)
		if err := client.PostReports(ctx, path, body, &report); err != nil {
			return nil, nil, err
		}

		summary := fmt.Sprintf("Detailed report: %d entr%s on this page, total time %s",
			len(report.TimeEntries), pluralEntry(len(report.TimeEntries)), totalsDuration(report.Totals))
		return textResult(summary), nil, nil
	}
}

// buildDetailedReportRequest restructures the flat tool arguments into
// the report service's nested payload: list filters wrapped into
// {ids: [...]}, paging and sort under detailedFilter with fixed
// CALCULATE totals, page size clamped to the service ceiling.
func buildDetailedReportRequest(input GetDetailedReportInput) (clockify.DetailedReportRequest, error) {
	start, err := clockify.NormalizeInstant(input.DateRangeStart)
	if err != nil {
		return clockify.DetailedReportRequest{}, err
	}
	end, err := clockify.NormalizeInstant(input.DateRangeEnd)
	if err != nil {
		return clockify.DetailedReportRequest{}, err
	}

	page := input.Page
	if page <= 0 {
		page = defaultReportPage
	}
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = defaultReportPageSize
	}
	if pageSize > clockify.MaxReportPageSize {
		pageSize = clockify.MaxReportPageSize
	}

	return clockify.DetailedReportRequest{
		DateRangeStart: start,
		DateRangeEnd:   end,
		DetailedFilter: clockify.DetailedFilter{
			Page:       page,
			PageSize:   pageSize,
			SortColumn: input.SortColumn,
			SortOrder:  input.SortOrder,
			Options:    clockify.DetailedOptions{Totals: clockify.TotalsCalculate},
		},
		Users:    idFilter(input.Users),
		Clients:  idFilter(input.Clients),
		Projects: idFilter(input.Projects),
		Tasks:    idFilter(input.Tasks),
		Tags:     idFilter(input.Tags),
	}, nil
}

// --- get_summary_report ---

// GetSummaryReportInput is the input for get_summary_report.
type GetSummaryReportInput struct {
	WorkspaceID    string   `json:"workspaceId"          jsonschema:"workspace id"`
	DateRangeStart string   `json:"dateRangeStart"       jsonschema:"range start (ISO-8601; date-only values are expanded)"`
	DateRangeEnd   string   `json:"dateRangeEnd"         jsonschema:"range end (ISO-8601; date-only values are expanded)"`
	Groups         []string `json:"groups,omitempty"     jsonschema:"grouping dimensions, e.g. PROJECT, CLIENT, USER; defaults to PROJECT"`
	Users          []string `json:"users,omitempty"      jsonschema:"filter by user ids"`
	Clients        []string `json:"clients,omitempty"    jsonschema:"filter by client ids"`
	Projects       []string `json:"projects,omitempty"   jsonschema:"filter by project ids"`
	Tasks          []string `json:"tasks,omitempty"      jsonschema:"filter by task ids"`
	Tags           []string `json:"tags,omitempty"       jsonschema:"filter by tag ids"`
	ExportType     string   `json:"exportType,omitempty" jsonschema:"export format: JSON, PDF, CSV or XLSX"`
}

func handleGetSummaryReport(client *clockify.Client) mcp.ToolHandlerFor[GetSummaryReportInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetSummaryReportInput) (*mcp.CallToolResult, any, error) {
		if err := requireID("workspaceId", input.WorkspaceID); err != nil {
			return nil, nil, err
		}
		if err := requireID("dateRangeStart", input.DateRangeStart); err != nil {
			return nil, nil, err
		}
		if err := requireID("dateRangeEnd", input.DateRangeEnd); err != nil {
			return nil, nil, err
		}
		if err := validateEnum("exportType", input.ExportType, "JSON", "PDF", "CSV", "XLSX"); err != nil {
			return nil, nil, err
		}

		body, err := buildSummaryReportRequest(input)
		if err != nil {
			return nil, nil, err
		}

		var report clockify.SummaryReportResponse
		path := fmt.Sprintf("/workspaces/%s/reports/summary", input.WorkspaceID)
		if err := client.PostReports(ctx, path, body, &report); err != nil {
			return nil, nil, err
		}

		summary := fmt.Sprintf("Summary report: %d group%s, total time %s",
			len(report.GroupOne), plural(len(report.GroupOne)), totalsDuration(report.Totals))
		return textResult(summary), nil, nil
	}
}

// buildSummaryReportRequest restructures the flat tool arguments into
// the summary payload, defaulting the grouping to PROJECT when omitted.
func buildSummaryReportRequest(input GetSummaryReportInput) (clockify.SummaryReportRequest, error) {
	start, err := clockify.NormalizeInstant(input.DateRangeStart)
	if err != nil {
		return clockify.SummaryReportRequest{}, err
	}
	end, err := clockify.NormalizeInstant(input.DateRangeEnd)
	if err != nil {
		return clockify.SummaryReportRequest{}, err
	}

	groups := input.Groups
	if len(groups) == 0 {
		groups = []string{"PROJECT"}
	}

	return clockify.SummaryReportRequest{
		DateRangeStart: start,
		DateRangeEnd:   end,
		SummaryFilter:  clockify.SummaryFilter{Groups: groups},
		ExportType:     input.ExportType,
		Users:          idFilter(input.Users),
		Clients:        idFilter(input.Clients),
		Projects:       idFilter(input.Projects),
		Tasks:          idFilter(input.Tasks),
		Tags:           idFilter(input.Tags),
	}, nil
}

// totalsDuration renders the aggregate duration from a report's totals
// array, defaulting to a zero duration when the service returned none.
func totalsDuration(totals []clockify.ReportTotals) string {
	if len(totals) == 0 {
		return "PT0S"
	}
	return formatSeconds(totals[0].TotalTime)
}
