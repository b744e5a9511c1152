// Package preview renders the bar as a styled line on a terminal, for
// running pulsebar interactively while tuning configuration. It is an
// alternative Renderer; the real bar consumes the i3bar stream instead.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/pulsebar/pkg/theme"
	"gitlab.com/tinyland/lab/pulsebar/pkg/widget"
)

// Renderer writes one styled line per render.
type Renderer struct {
	w     io.Writer
	th    theme.Theme
	color bool
}

// New returns a preview renderer. Styling is skipped entirely when the
// terminal reports no color support.
func New(w io.Writer, th theme.Theme) *Renderer {
	return &Renderer{
		w:     w,
		th:    th,
		color: termenv.EnvColorProfile() != termenv.Ascii,
	}
}

// Render implements the scheduler's Renderer interface.
func (r *Renderer) Render(ws []*widget.Widget) error {
	parts := make([]string, 0, len(ws))
	for _, w := range ws {
		parts = append(parts, r.segment(w))
	}
	sep := " | "
	if r.color {
		sep = lipgloss.NewStyle().
			Foreground(lipgloss.Color(r.th.Separator.FG)).
			Render(" | ")
	}
	_, err := fmt.Fprintln(r.w, strings.Join(parts, sep))
	return err
}

func (r *Renderer) segment(w *widget.Widget) string {
	text := w.Text()
	if icon := r.th.Icon(w.Icon()); icon != "" {
		if text == "" {
			text = icon
		} else {
			text = icon + " " + text
		}
	}
	if !r.color {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(r.th.StateColors(w.State()).FG)).
		Render(text)
}
