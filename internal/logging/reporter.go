// Package logging prints the progress of a scaffolding run.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes emoji-prefixed progress lines. Colours are dropped
// automatically when the writer is not a terminal.
type Reporter struct {
	out   io.Writer
	debug bool

	stepStyle    lipgloss.Style
	successStyle lipgloss.Style
	warnStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	debugStyle   lipgloss.Style
}

// New creates a reporter; debug enables Debugf output
func New(out io.Writer, debug bool) *Reporter {
	renderer := lipgloss.NewRenderer(out)
	return &Reporter{
		out:          out,
		debug:        debug,
		stepStyle:    renderer.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		successStyle: renderer.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		warnStyle:    renderer.NewStyle().Foreground(lipgloss.Color("11")),
		errorStyle:   renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		debugStyle:   renderer.NewStyle().Faint(true),
	}
}

// Discard returns a reporter that prints nothing
func Discard() *Reporter {
	return New(io.Discard, false)
}

// Debug reports whether verbose output is enabled
func (r *Reporter) Debug() bool {
	return r.debug
}

// Step announces the start of a pipeline step
func (r *Reporter) Step(format string, args ...interface{}) {
	r.line(r.stepStyle, format, args...)
}

// Success reports a finished step
func (r *Reporter) Success(format string, args ...interface{}) {
	r.line(r.successStyle, "✅ "+format, args...)
}

// Warn reports a recoverable problem
func (r *Reporter) Warn(format string, args ...interface{}) {
	r.line(r.warnStyle, "⚠️  "+format, args...)
}

// Error reports a fatal problem
func (r *Reporter) Error(format string, args ...interface{}) {
	r.line(r.errorStyle, "❌ "+format, args...)
}

// Debugf prints only when debug output is enabled
func (r *Reporter) Debugf(format string, args ...interface{}) {
	if !r.debug {
		return
	}
	r.line(r.debugStyle, "🔍 "+format, args...)
}

// Println prints an unstyled line
func (r *Reporter) Println(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Reporter) line(style lipgloss.Style, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(r.out, style.Render(strings.TrimRight(msg, "\n")))
}
