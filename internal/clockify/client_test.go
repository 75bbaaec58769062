package clockify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/timefold/clockify-mcp/internal/output"
)

func TestDo_MissingAPIKey(t *testing.T) {
	calls := 0
	doer := doerFunc(func(_ *http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("should not be reached")
	})
	client := NewWithDoer(Config{}, doer)

	err := client.Get(context.Background(), "/user", nil)

	if output.GetExitCode(err) != output.ExitConfigError {
		t.Errorf("exit code = %d, want config error", output.GetExitCode(err))
	}
	if calls != 0 {
		t.Errorf("network calls = %d, want 0", calls)
	}
}

func TestDo_SuccessParsesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Api-Key"); got != "test-key" {
			t.Errorf("X-Api-Key = %q, want test-key", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		_, _ = w.Write([]byte(`{"id":"u1","name":"Ada"}`))
	}))
	defer server.Close()

	client := New(Config{APIKey: "test-key", BaseURL: server.URL})

	var user User
	if err := client.Get(context.Background(), "/user", &user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" || user.Name != "Ada" {
		t.Errorf("user = %+v", user)
	}
}

func TestDo_EmptyBodyOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(Config{APIKey: "test-key", BaseURL: server.URL})

	var entry TimeEntry
	if err := client.Delete(context.Background(), "/workspaces/w1/time-entries/e1", &entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDo_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not found", http.StatusNotFound, "Not found"},
		{"unauthorized", http.StatusUnauthorized, `{"message":"Api key does not exist"}`},
		{"server error", http.StatusInternalServerError, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := New(Config{APIKey: "test-key", BaseURL: server.URL})
			err := client.Get(context.Background(), "/user", nil)

			exitErr := &output.ExitError{}
			if !errors.As(err, &exitErr) {
				t.Fatalf("error %v is not an ExitError", err)
			}
			if exitErr.Code != output.ExitRemoteError {
				t.Errorf("code = %d, want remote error", exitErr.Code)
			}
			if exitErr.Status != tt.status {
				t.Errorf("status = %d, want %d", exitErr.Status, tt.status)
			}
			if !strings.Contains(exitErr.Message, tt.body) {
				t.Errorf("message %q missing body text %q", exitErr.Message, tt.body)
			}
		})
	}
}

func TestDo_TransportFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	doer := doerFunc(func(_ *http.Request) (*http.Response, error) {
		return nil, cause
	})
	client := NewWithDoer(Config{APIKey: "test-key"}, doer)

	err := client.Get(context.Background(), "/user", nil)

	if output.GetExitCode(err) != output.ExitTransportError {
		t.Errorf("exit code = %d, want transport error", output.GetExitCode(err))
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("message %q missing underlying cause", err.Error())
	}
}

func TestDo_ReportsBaseURL(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(Config{
		APIKey:         "test-key",
		BaseURL:        "http://unused.invalid",
		ReportsBaseURL: server.URL,
	})

	body := DetailedReportRequest{DateRangeStart: "2024-01-01T00:00:00Z", DateRangeEnd: "2024-01-31T00:00:00Z"}
	if err := client.PostReports(context.Background(), "/workspaces/w1/reports/detailed", body, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/workspaces/w1/reports/detailed" {
		t.Errorf("path = %q", gotPath)
	}
}

// doerFunc adapts a function to the HTTPDoer interface.
type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}
