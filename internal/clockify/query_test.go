package clockify

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestQuery_Empty(t *testing.T) {
	var q Query
	if got := q.Encode(); got != "" {
		t.Errorf("Encode() = %q, want empty", got)
	}
}

func TestQuery_PreservesInsertionOrder(t *testing.T) {
	var q Query
	q.AddBool("archived", boolPtr(true))
	q.AddInt("pageSize", 10)
	q.AddString("name", "web")

	want := "?archived=true&pageSize=10&name=web"
	if got := q.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestQuery_SkipsUnsetValues(t *testing.T) {
	var q Query
	q.AddString("name", "")
	q.AddBool("archived", nil)
	q.AddInt("page", 0)
	q.AddString("description", "fix login")

	want := "?description=fix+login"
	if got := q.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestQuery_EscapesValues(t *testing.T) {
	var q Query
	q.AddString("start", "2024-01-15T09:00:00Z")

	want := "?start=2024-01-15T09%3A00%3A00Z"
	if got := q.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestQuery_FalseBoolStillSerialized(t *testing.T) {
	var q Query
	q.AddBool("archived", boolPtr(false))

	if got := q.Encode(); got != "?archived=false" {
		t.Errorf("Encode() = %q, want ?archived=false", got)
	}
}
