package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colour palette.
var (
	colorGreen   = lipgloss.Color("#50FA7B")
	colorRed     = lipgloss.Color("#FF5555")
	colorYellow  = lipgloss.Color("#F1FA8C")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorGray    = lipgloss.Color("#6272A4")
)

// Printer writes progress lines to Out and errors to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer

	successStyle lipgloss.Style
	warnStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	accentStyle  lipgloss.Style
	commandStyle lipgloss.Style
	subtleStyle  lipgloss.Style
}

// New returns a Printer whose styles are bound to the given writers.
func New(out, errOut io.Writer) *Printer {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	return &Printer{
		Out:          out,
		Err:          errOut,
		successStyle: outR.NewStyle().Foreground(colorGreen),
		warnStyle:    errR.NewStyle().Foreground(colorYellow).Bold(true),
		errorStyle:   errR.NewStyle().Foreground(colorRed).Bold(true),
		accentStyle:  outR.NewStyle().Foreground(colorMagenta),
		commandStyle: outR.NewStyle().Foreground(colorGreen),
		subtleStyle:  outR.NewStyle().Foreground(colorGray),
	}
}

// Stdio returns a Printer on os.Stdout and os.Stderr.
func Stdio() *Printer {
	return New(os.Stdout, os.Stderr)
}

// Success prints "✓ message".
func (p *Printer) Success(message string) {
	fmt.Fprintf(p.Out, "%s %s\n", p.successStyle.Render("✓"), message)
}

// Warn prints "Warning: message" to the error stream.
func (p *Printer) Warn(message string) {
	fmt.Fprintf(p.Err, "%s %s\n", p.warnStyle.Render("Warning:"), message)
}

// Info prints a plain line.
func (p *Printer) Info(message string) {
	fmt.Fprintln(p.Out, message)
}

// Error prints "Error: message" to the error stream. Exiting is left to the
// caller so there is exactly one place that terminates the process.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.Err, "%s %v\n", p.errorStyle.Render("Error:"), err)
}

// Accent renders s in the accent colour.
func (p *Printer) Accent(s string) string { return p.accentStyle.Render(s) }

// Command renders s as a shell command hint.
func (p *Printer) Command(s string) string { return p.commandStyle.Render(s) }

// Subtle renders s de-emphasized.
func (p *Printer) Subtle(s string) string { return p.subtleStyle.Render(s) }
