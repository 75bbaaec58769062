package mcp

import (
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timefold/clockify-mcp/internal/clockify"
	"github.com/timefold/clockify-mcp/internal/output"
)

// textResult wraps a human-readable summary as a tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// strPtr returns a pointer to s, or nil when s is empty. Used to build
// request bodies where unset optional fields must be stripped.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// requireID fails with an invalid-arguments error when a mandatory
// identifier is missing or empty. No network call happens after this.
func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return output.NewUserError(name + " is required")
	}
	return nil
}

// validateEnum checks that value (when set) is one of the allowed
// literals.
func validateEnum(name, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return output.NewUserError(fmt.Sprintf(
		"%s must be one of %s", name, strings.Join(allowed, ", ")))
}

// idFilter wraps ids into the report API's {ids: [...]} sub-object, or
// nil when the caller supplied none (the report service rejects empty
// filters).
func idFilter(ids []string) *clockify.IDFilter {
	if len(ids) == 0 {
		return nil
	}
	return &clockify.IDFilter{IDs: ids}
}

// formatSeconds renders a second count as an ISO-8601 duration string,
// e.g. 5445 -> "PT1H30M45S". Zero renders "PT0S".
func formatSeconds(seconds int64) string {
	if seconds <= 0 {
		return "PT0S"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	var sb strings.Builder
	sb.WriteString("PT")
	if hours > 0 {
		fmt.Fprintf(&sb, "%dH", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&sb, "%dM", minutes)
	}
	if secs > 0 || (hours == 0 && minutes == 0) {
		fmt.Fprintf(&sb, "%dS", secs)
	}
	return sb.String()
}

// plural returns "s" for counts other than one.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// endOrRunning renders a time entry's end instant, or "running" when
// the entry is still open.
func endOrRunning(interval clockify.TimeInterval) string {
	if interval.End == "" {
		return "running"
	}
	return interval.End
}

// formatTimeEntryLine renders one time entry as a list line.
func formatTimeEntryLine(entry clockify.TimeEntry) string {
	description := entry.Description
	if description == "" {
		description = "(no description)"
	}
	return fmt.Sprintf("- %s (id %s): %s -> %s",
		description, entry.ID, entry.TimeInterval.Start, endOrRunning(entry.TimeInterval))
}

// formatTimeEntry renders a single time entry in full.
func formatTimeEntry(verb string, entry clockify.TimeEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s time entry %s\n", verb, entry.ID)
	if entry.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", entry.Description)
	}
	fmt.Fprintf(&sb, "Start: %s\n", entry.TimeInterval.Start)
	fmt.Fprintf(&sb, "End: %s\n", endOrRunning(entry.TimeInterval))
	if entry.ProjectID != "" {
		fmt.Fprintf(&sb, "Project: %s\n", entry.ProjectID)
	}
	if entry.TaskID != "" {
		fmt.Fprintf(&sb, "Task: %s\n", entry.TaskID)
	}
	if len(entry.TagIDs) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(entry.TagIDs, ", "))
	}
	fmt.Fprintf(&sb, "Billable: %t", entry.Billable)
	return sb.String()
}

// formatProjectLine renders one project as a list line.
func formatProjectLine(project clockify.Project) string {
	line := fmt.Sprintf("- %s (id %s)", project.Name, project.ID)
	if project.ClientName != "" {
		line += fmt.Sprintf(" client=%s", project.ClientName)
	} else if project.ClientID != "" {
		line += fmt.Sprintf(" client=%s", project.ClientID)
	}
	if project.Archived {
		line += " [archived]"
	}
	return line
}

// formatTaskLine renders one task as a list line.
func formatTaskLine(task clockify.Task) string {
	line := fmt.Sprintf("- %s (id %s) status=%s", task.Name, task.ID, task.Status)
	if task.Estimate != "" {
		line += fmt.Sprintf(" estimate=%s", task.Estimate)
	}
	return line
}

// formatClientLine renders one client as a list line.
func formatClientLine(record clockify.ClientRecord) string {
	line := fmt.Sprintf("- %s (id %s)", record.Name, record.ID)
	if record.Archived {
		line += " [archived]"
	}
	return line
}

// formatTagLine renders one tag as a list line.
func formatTagLine(tag clockify.Tag) string {
	line := fmt.Sprintf("- %s (id %s)", tag.Name, tag.ID)
	if tag.Archived {
		line += " [archived]"
	}
	return line
}
