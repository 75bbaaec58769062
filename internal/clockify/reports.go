package clockify

// Report request and response shapes for the report-service API.
// List-valued filters are wrapped into {ids: [...]} sub-objects; any
// filter left unset is stripped from the payload entirely.

// TotalsCalculate is the fixed totals option sent with every detailed
// report request.
const TotalsCalculate = "CALCULATE"

// MaxReportPageSize is the report service's page size ceiling.
const MaxReportPageSize = 1000

// IDFilter wraps a list of entity ids for report filtering.
type IDFilter struct {
	IDs []string `json:"ids"`
}

// DetailedOptions carries fixed per-request options.
type DetailedOptions struct {
	Totals string `json:"totals"`
}

// DetailedFilter nests the paging and sort fields of a detailed report.
type DetailedFilter struct {
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	SortColumn string          `json:"sortColumn,omitempty"`
	SortOrder  string          `json:"sortOrder,omitempty"`
	Options    DetailedOptions `json:"options"`
}

// DetailedReportRequest is the body for POST /workspaces/{id}/reports/detailed.
type DetailedReportRequest struct {
	DateRangeStart string         `json:"dateRangeStart"`
	DateRangeEnd   string         `json:"dateRangeEnd"`
	DetailedFilter DetailedFilter `json:"detailedFilter"`
	Users          *IDFilter      `json:"users,omitempty"`
	Clients        *IDFilter      `json:"clients,omitempty"`
	Projects       *IDFilter      `json:"projects,omitempty"`
	Tasks          *IDFilter      `json:"tasks,omitempty"`
	Tags           *IDFilter      `json:"tags,omitempty"`
}

// SummaryFilter nests the grouping fields of a summary report.
type SummaryFilter struct {
	Groups []string `json:"groups"`
}

// SummaryReportRequest is the body for POST /workspaces/{id}/reports/summary.
type SummaryReportRequest struct {
	DateRangeStart string        `json:"dateRangeStart"`
	DateRangeEnd   string        `json:"dateRangeEnd"`
	SummaryFilter  SummaryFilter `json:"summaryFilter"`
	ExportType     string        `json:"exportType,omitempty"`
	Users          *IDFilter     `json:"users,omitempty"`
	Clients        *IDFilter     `json:"clients,omitempty"`
	Projects       *IDFilter     `json:"projects,omitempty"`
	Tasks          *IDFilter     `json:"tasks,omitempty"`
	Tags           *IDFilter     `json:"tags,omitempty"`
}

// ReportTotals is one element of a report response's totals array.
// TotalTime is in seconds.
type ReportTotals struct {
	TotalTime    int64 `json:"totalTime"`
	EntriesCount int   `json:"entriesCount"`
}

// DetailedReportEntry is one row of a detailed report.
type DetailedReportEntry struct {
	ID           string       `json:"_id"`
	Description  string       `json:"description"`
	UserName     string       `json:"userName"`
	ProjectName  string       `json:"projectName"`
	TimeInterval TimeInterval `json:"timeInterval"`
}

// DetailedReportResponse is the detailed report payload.
type DetailedReportResponse struct {
	Totals      []ReportTotals        `json:"totals"`
	TimeEntries []DetailedReportEntry `json:"timeentries"`
}

// SummaryGroup is one grouped row of a summary report. Duration is in
// seconds. Children hold sub-groupings when more than one group was
// requested.
type SummaryGroup struct {
	ID       string         `json:"_id"`
	Name     string         `json:"name"`
	Duration int64          `json:"duration"`
	Children []SummaryGroup `json:"children"`
}

// SummaryReportResponse is the summary report payload.
type SummaryReportResponse struct {
	Totals   []ReportTotals `json:"totals"`
	GroupOne []SummaryGroup `json:"groupOne"`
}
