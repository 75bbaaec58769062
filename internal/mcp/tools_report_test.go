package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestDetailedReport_PagingDefaultsAndClamp(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     float64
		wantPageSize float64
	}{
		{"defaults", 0, 0, 1, 50},
		{"explicit", 3, 200, 3, 200},
		{"clamped to ceiling", 1, 5000, 1, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doer := &fakeDoer{}
			handler := handleGetDetailedReport(newTestClient(doer))

			_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, GetDetailedReportInput{
				WorkspaceID:    "w1",
				DateRangeStart: "2024-01-01",
				DateRangeEnd:   "2024-01-31",
				Page:           tt.page,
				PageSize:       tt.pageSize,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			body := decodeBody(t, doer)
			filter, ok := body["detailedFilter"].(map[string]any)
			if !ok {
				t.Fatalf("detailedFilter missing from body: %v", body)
			}
			if filter["page"] != tt.wantPage {
				t.Errorf("page = %v, want %v", filter["page"], tt.wantPage)
			}
			if filter["pageSize"] != tt.wantPageSize {
				t.Errorf("pageSize = %v, want %v", filter["pageSize"], tt.wantPageSize)
			}
		})
	}
}

func TestDetailedReport_PayloadShape(t *testing.T) {
	doer := &fakeDoer{}
	handler := handleGetDetailedReport(newTestClient(doer))

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, GetDetailedReportInput{
		WorkspaceID:    "w1",
		DateRangeStart: "2024-01-01",
		DateRangeEnd:   "2024-01-31",
		Projects:       []string{"p1", "p2"},
		SortOrder:      "DESCENDING",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doer.lastURL != "https://reports.test/workspaces/w1/reports/detailed" {
		t.Errorf("URL = %q, want report service path", doer.lastURL)
	}

	body := decodeBody(t, doer)
	if body["dateRangeStart"] != "2024-01-01T00:00:00Z" {
		t.Errorf("dateRangeStart = %v, want expanded instant", body["dateRangeStart"])
	}

	// List filters are wrapped into {ids: [...]}; unset ones are absent.
	projects, ok := body["projects"].(map[string]any)
	if !ok {
		t.Fatalf("projects = %v, want ids wrapper", body["projects"])
	}
	ids, _ := projects["ids"].([]any)
	if len(ids) != 2 || ids[0] != "p1" {
		t.Errorf("projects.ids = %v", ids)
	}
	for _, key := range []string{"users", "clients", "tasks", "tags"} {
		if _, present := body[key]; present {
			t.Errorf("key %q present in body, want stripped", key)
		}
	}

	filter, _ := body["detailedFilter"].(map[string]any)
	options, _ := filter["options"].(map[string]any)
	if options["totals"] != "CALCULATE" {
		t.Errorf("options.totals = %v, want CALCULATE", options["totals"])
	}

	// Sorting nests under detailedFilter like the paging fields do.
	if filter["sortOrder"] != "DESCENDING" {
		t.Errorf("detailedFilter.sortOrder = %v, want DESCENDING", filter["sortOrder"])
	}
	if _, present := body["sortOrder"]; present {
		t.Error("sortOrder present at payload top level, want nested only")
	}
}

func TestDetailedReport_SummaryRendersTotals(t *testing.T) {
	doer := &fakeDoer{respBody: `{
		"totals": [{"totalTime": 5445, "entriesCount": 2}],
		"timeentries": [
			{"_id": "e1", "description": "standup"},
			{"_id": "e2", "description": "review"}
		]
	}`}
	handler := handleGetDetailedReport(newTestClient(doer))

	result, _, err := handler(context.Background(), &mcp.CallToolRequest{}, GetDetailedReportInput{
		WorkspaceID:    "w1",
		DateRangeStart: "2024-01-01T00:00:00Z",
		DateRangeEnd:   "2024-01-31T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "2 entries") {
		t.Errorf("summary = %q, want entry count", text)
	}
	if !strings.Contains(text, "PT1H30M45S") {
		t.Errorf("summary = %q, want formatted total", text)
	}
}

func TestSummaryReport_GroupsDefaultToProject(t *testing.T) {
	doer := &fakeDoer{}
	handler := handleGetSummaryReport(newTestClient(doer))

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, GetSummaryReportInput{
		WorkspaceID:    "w1",
		DateRangeStart: "2024-01-01",
		DateRangeEnd:   "2024-01-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doer.lastURL != "https://reports.test/workspaces/w1/reports/summary" {
		t.Errorf("URL = %q, want report service path", doer.lastURL)
	}
	body := decodeBody(t, doer)
	filter, ok := body["summaryFilter"].(map[string]any)
	if !ok {
		t.Fatalf("summaryFilter missing from body: %v", body)
	}
	groups, _ := filter["groups"].([]any)
	if len(groups) != 1 || groups[0] != "PROJECT" {
		t.Errorf("groups = %v, want default [PROJECT]", groups)
	}
}

func TestSummaryReport_ExplicitGroupsAndEmptyTotals(t *testing.T) {
	doer := &fakeDoer{respBody: `{"totals": [], "groupOne": []}`}
	handler := handleGetSummaryReport(newTestClient(doer))

	result, _, err := handler(context.Background(), &mcp.CallToolRequest{}, GetSummaryReportInput{
		WorkspaceID:    "w1",
		DateRangeStart: "2024-01-01",
		DateRangeEnd:   "2024-01-31",
		Groups:         []string{"CLIENT", "PROJECT"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := decodeBody(t, doer)
	filter, _ := body["summaryFilter"].(map[string]any)
	groups, _ := filter["groups"].([]any)
	if len(groups) != 2 || groups[0] != "CLIENT" {
		t.Errorf("groups = %v, want explicit list preserved", groups)
	}
	if !strings.Contains(resultText(t, result), "PT0S") {
		t.Errorf("summary = %q, want zero duration for empty totals", resultText(t, result))
	}
}
