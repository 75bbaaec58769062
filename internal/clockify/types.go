package clockify

// Resource representations mirroring the Clockify API's JSON shapes.
// The adapter never persists these; each is fetched fresh per call and
// discarded after rendering.

// User is the authenticated Clockify user.
type User struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	ActiveWorkspace  string `json:"activeWorkspace"`
	DefaultWorkspace string `json:"defaultWorkspace"`
	Status           string `json:"status"`
}

// Workspace is a top-level tenant; nearly every resource is scoped
// under one.
type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project is a workspace-scoped project.
type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ClientID   string `json:"clientId"`
	ClientName string `json:"clientName"`
	Archived   bool   `json:"archived"`
	Billable   bool   `json:"billable"`
	Color      string `json:"color"`
	Note       string `json:"note"`
	Public     bool   `json:"public"`
}

// Task is a project-scoped task.
type Task struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ProjectID   string   `json:"projectId"`
	AssigneeIDs []string `json:"assigneeIds"`
	Estimate    string   `json:"estimate"`
	Status      string   `json:"status"`
	Billable    bool     `json:"billable"`
}

// ClientRecord is a workspace-scoped client (customer).
type ClientRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WorkspaceID string `json:"workspaceId"`
	Archived    bool   `json:"archived"`
	Note        string `json:"note"`
}

// Tag is a workspace-scoped tag.
type Tag struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WorkspaceID string `json:"workspaceId"`
	Archived    bool   `json:"archived"`
}

// TimeInterval is the start/end/duration block of a time entry.
// End is empty while the entry is still running.
type TimeInterval struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
}

// TimeEntry is a record of worked time.
type TimeEntry struct {
	ID           string       `json:"id"`
	Description  string       `json:"description"`
	UserID       string       `json:"userId"`
	WorkspaceID  string       `json:"workspaceId"`
	ProjectID    string       `json:"projectId"`
	TaskID       string       `json:"taskId"`
	TagIDs       []string     `json:"tagIds"`
	Billable     bool         `json:"billable"`
	TimeInterval TimeInterval `json:"timeInterval"`
}

// Request bodies. Optional fields are pointers with omitempty so unset
// values are stripped from the wire; the remote API rejects literal
// nulls.

// TimeEntryRequest is the body for creating or replacing a time entry.
type TimeEntryRequest struct {
	Start       string   `json:"start,omitempty"`
	End         *string  `json:"end,omitempty"`
	Description *string  `json:"description,omitempty"`
	ProjectID   *string  `json:"projectId,omitempty"`
	TaskID      *string  `json:"taskId,omitempty"`
	TagIDs      []string `json:"tagIds,omitempty"`
	Billable    *bool    `json:"billable,omitempty"`
}

// StopTimeEntryRequest sets the end instant on whatever entry is
// currently running for a user.
type StopTimeEntryRequest struct {
	End string `json:"end"`
}

// ProjectRequest is the body for creating or replacing a project.
type ProjectRequest struct {
	Name     *string `json:"name,omitempty"`
	ClientID *string `json:"clientId,omitempty"`
	IsPublic *bool   `json:"isPublic,omitempty"`
	Color    *string `json:"color,omitempty"`
	Note     *string `json:"note,omitempty"`
	Billable *bool   `json:"billable,omitempty"`
	Archived *bool   `json:"archived,omitempty"`
}

// TaskRequest is the body for creating or replacing a task.
type TaskRequest struct {
	Name        *string  `json:"name,omitempty"`
	AssigneeIDs []string `json:"assigneeIds,omitempty"`
	Estimate    *string  `json:"estimate,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Billable    *bool    `json:"billable,omitempty"`
}

// ClientRequest is the body for creating or replacing a client.
type ClientRequest struct {
	Name     *string `json:"name,omitempty"`
	Note     *string `json:"note,omitempty"`
	Archived *bool   `json:"archived,omitempty"`
}

// TagRequest is the body for creating or replacing a tag.
type TagRequest struct {
	Name     *string `json:"name,omitempty"`
	Archived *bool   `json:"archived,omitempty"`
}
