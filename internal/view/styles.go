package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// palette is a set of styles bound to one output's color profile, so text
// written to files or buffers stays plain.
type palette struct {
	title   lipgloss.Style
	success lipgloss.Style
	pending lipgloss.Style
	accent  lipgloss.Style
	muted   lipgloss.Style
	err     lipgloss.Style
	border  lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		title:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		pending: r.NewStyle().Foreground(lipgloss.Color("214")),
		accent:  r.NewStyle().Foreground(lipgloss.Color("12")),
		muted:   r.NewStyle().Faint(true),
		err:     r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		border: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
	}
}

var styles = newPalette(lipgloss.DefaultRenderer())

func paletteFor(w io.Writer) palette {
	return newPalette(lipgloss.NewRenderer(w))
}

func (p palette) ok(msg string) string   { return p.success.Render("✔ " + msg) }
func (p palette) fail(msg string) string { return p.err.Render("✖ " + msg) }

// result picks a style per outcome.
func (p palette) result(text string, won, lost bool) string {
	switch {
	case won:
		return p.ok(text)
	case lost:
		return p.fail(text)
	}
	return p.pending.Render("• " + text)
}

func (p palette) panel(lines []string) string {
	return p.border.Render(strings.Join(lines, "\n"))
}

func fprintln(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}
