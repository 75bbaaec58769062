// Package output provides the uniform error shape and terminal output
// for the clockify-mcp adapter. Every failure that crosses the adapter
// boundary is an *ExitError carrying a category and exit code.
package output

import (
	"errors"
	"fmt"
)

// Exit codes:
// 0 = Success
// 1 = User error (missing or invalid tool arguments)
// 2 = Configuration error (API key not set)
// 3 = Remote API error (non-success HTTP status from Clockify)
// 4 = Transport error (DNS, connection refused, malformed response)
const (
	ExitSuccess        = 0
	ExitUserError      = 1
	ExitConfigError    = 2
	ExitRemoteError    = 3
	ExitTransportError = 4
)

// ExitError is the adapter's single normalized error shape.
type ExitError struct {
	Code    int
	Message string
	Status  int // HTTP status for remote errors, zero otherwise
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for caller-caused issues (exit code 1).
// Use for: missing required arguments, values outside an enum.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewConfigError creates an error for configuration problems (exit code 2).
// Use for: CLOCKIFY_API_KEY not set. Raised before any network attempt.
func NewConfigError(message string) *ExitError {
	return &ExitError{
		Code:    ExitConfigError,
		Message: message,
	}
}

// NewRemoteError creates an error for a non-success response from the
// Clockify API (exit code 3). The status code and raw body text are
// surfaced verbatim.
func NewRemoteError(status int, body string) *ExitError {
	return &ExitError{
		Code:    ExitRemoteError,
		Status:  status,
		Message: fmt.Sprintf("Clockify API error (status %d): %s", status, body),
	}
}

// NewTransportError creates an error for a network-level failure (exit
// code 4), wrapping the underlying cause.
func NewTransportError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitTransportError,
		Message: fmt.Sprintf("%s: %v", message, cause),
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Default to user error for untyped errors
	return ExitUserError
}
