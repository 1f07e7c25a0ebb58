// Package render draws rectangular analysis results as aligned console
// tables. It wraps go-pretty for the frame and lipgloss for the bits of
// markup the report uses (dim NaN markers, banners, notices).
package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used across the report output. They are
// bound to a renderer for the target writer, so piping the report strips
// all escape sequences automatically.
type Styles struct {
	Banner  lipgloss.Style
	Section lipgloss.Style
	Dim     lipgloss.Style
	Notice  lipgloss.Style
}

// NewStyles builds the style set for w. With noColor set the termenv
// profile is forced to Ascii regardless of the terminal.
func NewStyles(w io.Writer, noColor bool) *Styles {
	var r *lipgloss.Renderer
	if noColor {
		r = lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
	} else {
		r = lipgloss.NewRenderer(w, termenv.WithColorCache(true))
	}
	return &Styles{
		Banner:  r.NewStyle().Bold(true),
		Section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Dim:     r.NewStyle().Faint(true),
		Notice:  r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}
