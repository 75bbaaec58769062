package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPrinter_ErrorPlain(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false)

	printer.Error(NewUserError("missing workspaceId"))

	got := buf.String()
	if got != "Error: missing workspaceId\n" {
		t.Errorf("output = %q, want plain error line", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Error("non-TTY output should contain no ANSI sequences")
	}
}

func TestPrinter_ErrorUntyped(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false)

	printer.Error(errors.New("something odd"))

	if !strings.Contains(buf.String(), "something odd") {
		t.Errorf("output = %q, want untyped error message", buf.String())
	}
}

func TestPrinter_StylesClearedWhenNotTTY(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false)

	empty := lipgloss.NewStyle()
	if printer.styles.Error.GetForeground() != empty.GetForeground() {
		t.Error("Error style should have no foreground color for non-TTY")
	}
	if printer.IsTTY() {
		t.Error("printer should report non-TTY")
	}
}

func TestPrinter_Warn(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false)

	printer.Warn("key %s unused", "X")

	if buf.String() != "Warning: key X unused\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) should return false")
	}
}
