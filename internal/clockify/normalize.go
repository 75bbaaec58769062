package clockify

import (
	"fmt"
	"strings"
	"time"

	"github.com/timefold/clockify-mcp/internal/output"
)

// instantLayouts are tried in order when a date-like argument arrives
// without a time component.
var instantLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006",
}

// NormalizeInstant coerces a date-like argument into a full RFC 3339
// instant. Values already containing the ISO date/time separator pass
// through unchanged; anything else is reparsed as a date and
// reserialized in UTC. This guards against callers supplying date-only
// or locale strings, which the remote API rejects.
func NormalizeInstant(value string) (string, error) {
	if strings.Contains(value, "T") {
		return value, nil
	}
	for _, layout := range instantLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC().Format(time.RFC3339), nil
		}
	}
	return "", output.NewUserError(fmt.Sprintf("cannot parse %q as a date or instant", value))
}

// NowInstant returns the current UTC instant in RFC 3339 form.
func NowInstant() string {
	return time.Now().UTC().Format(time.RFC3339)
}
