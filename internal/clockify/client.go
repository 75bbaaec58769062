// Package clockify provides a thin client for the Clockify REST API.
// It performs exactly one outbound HTTP request per call, with no
// retries and no caching; every failure is classified into the
// adapter's uniform error shape.
package clockify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/timefold/clockify-mcp/internal/output"
)

// Default API endpoints. Reports are served from a separate host.
const (
	DefaultBaseURL        = "https://api.clockify.me/api/v1"
	DefaultReportsBaseURL = "https://reports.api.clockify.me/v1"
)

// Config holds the process-wide client settings, established once at
// startup and read-only afterwards.
type Config struct {
	APIKey         string
	BaseURL        string
	ReportsBaseURL string
}

// HTTPDoer defines the HTTP operations required by Client.
// This allows injection of test doubles for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client issues authenticated requests against the Clockify API.
type Client struct {
	cfg        Config
	httpClient HTTPDoer
}

// New creates a Client with the default HTTP transport.
// Empty base URLs fall back to the public Clockify endpoints.
func New(cfg Config) *Client {
	return NewWithDoer(cfg, &http.Client{
		Timeout: 30 * time.Second,
	})
}

// NewWithDoer creates a Client with an injected HTTP transport.
func NewWithDoer(cfg Config, doer HTTPDoer) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ReportsBaseURL == "" {
		cfg.ReportsBaseURL = DefaultReportsBaseURL
	}
	return &Client{cfg: cfg, httpClient: doer}
}

// Get issues a GET against the primary API base.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, c.cfg.BaseURL, path, nil, out)
}

// Post issues a POST with a JSON body against the primary API base.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, c.cfg.BaseURL, path, body, out)
}

// Put issues a PUT with a JSON body against the primary API base.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, c.cfg.BaseURL, path, body, out)
}

// Patch issues a PATCH with a JSON body against the primary API base.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, c.cfg.BaseURL, path, body, out)
}

// Delete issues a DELETE with no body against the primary API base.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, c.cfg.BaseURL, path, nil, out)
}

// PostReports issues a POST against the report-service base.
func (c *Client) PostReports(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, c.cfg.ReportsBaseURL, path, body, out)
}

// do performs one authenticated request. Any 2xx status parses the
// response body into out (nil out and empty bodies are fine); any other
// status becomes a remote error carrying the status code and raw body
// text; network failures become transport errors.
func (c *Client) do(ctx context.Context, method, base, path string, body, out any) error {
	if c.cfg.APIKey == "" {
		return output.NewConfigError("CLOCKIFY_API_KEY environment variable not set")
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return output.NewTransportError("encoding request body", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, base+path, reader)
	if err != nil {
		return output.NewTransportError("creating request", err)
	}
	req.Header.Set("X-Api-Key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return output.NewTransportError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return output.NewTransportError("reading response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return output.NewRemoteError(resp.StatusCode, string(respBody))
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return output.NewTransportError("parsing response", err)
	}
	return nil
}
