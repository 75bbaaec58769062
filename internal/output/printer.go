package output

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes human-readable status and error lines to a terminal.
// The MCP protocol owns stdout while serving, so everything here goes
// to the error writer.
type Printer struct {
	errW   io.Writer
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for terminal output.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
}

// NewPrinter creates a Printer writing to errW.
// If isTTY is false, all styles are empty (no ANSI sequences).
func NewPrinter(errW io.Writer, isTTY bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
	}

	if !isTTY {
		styles.Error = lipgloss.NewStyle()
		styles.Warning = lipgloss.NewStyle()
		styles.Bold = lipgloss.NewStyle()
		styles.Muted = lipgloss.NewStyle()
	}

	return &Printer{
		errW:   errW,
		isTTY:  isTTY,
		styles: styles,
	}
}

// IsTTY returns true if the printer writes to a terminal.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Error writes a styled error line. Non-ExitError errors are presented
// as user errors.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn writes a styled warning line.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Status writes an unstyled status line (startup hints and the like).
func (p *Printer) Status(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.errW, format+"\n", args...))
}

// IsTTY checks if a writer is a terminal.
// Returns true only for os.File that is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// mustWrite panics if a write operation fails.
// Writes go to stderr or test buffers, which should never fail.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
