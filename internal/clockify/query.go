package clockify

import (
	"net/url"
	"strconv"
	"strings"
)

// Query accumulates URL query parameters preserving insertion order.
// net/url.Values sorts keys on Encode, but the adapter's contract is
// that parameters appear in the order the arguments were supplied.
type Query struct {
	pairs []queryPair
}

type queryPair struct {
	key   string
	value string
}

// AddString appends key=value when value is non-empty.
func (q *Query) AddString(key, value string) {
	if value == "" {
		return
	}
	q.pairs = append(q.pairs, queryPair{key: key, value: value})
}

// AddBool appends key=true|false when value is set.
func (q *Query) AddBool(key string, value *bool) {
	if value == nil {
		return
	}
	q.pairs = append(q.pairs, queryPair{key: key, value: strconv.FormatBool(*value)})
}

// AddInt appends key=n when n is positive. Zero means the caller left
// the argument out; the remote API applies its own default.
func (q *Query) AddInt(key string, value int) {
	if value <= 0 {
		return
	}
	q.pairs = append(q.pairs, queryPair{key: key, value: strconv.Itoa(value)})
}

// Encode renders the accumulated parameters as "?k=v&…", or an empty
// string when nothing was added. Keys and values are URL-escaped.
func (q *Query) Encode() string {
	if len(q.pairs) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, p := range q.pairs {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}
