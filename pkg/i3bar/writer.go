// Package i3bar adapts the core's widget views and event routing to the
// i3bar JSON protocol: an endless array of status lines on stdout, click
// events as JSON objects on stdin. The scheduler never sees any of this;
// it talks to a Renderer and an event channel.
package i3bar

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gitlab.com/tinyland/lab/pulsebar/pkg/theme"
	"gitlab.com/tinyland/lab/pulsebar/pkg/widget"
)

// segment is one rendered widget in a status line.
type segment struct {
	FullText            string `json:"full_text"`
	Name                string `json:"name"`
	Color               string `json:"color,omitempty"`
	Background          string `json:"background,omitempty"`
	Separator           bool   `json:"separator"`
	SeparatorBlockWidth int    `json:"separator_block_width"`
}

// Writer emits the i3bar protocol stream. The header is written before
// the first status line.
type Writer struct {
	w          io.Writer
	th         theme.Theme
	headerDone bool
}

// NewWriter returns a Writer emitting to w with the given theme.
func NewWriter(w io.Writer, th theme.Theme) *Writer {
	return &Writer{w: w, th: th}
}

// Render writes one status line for the widget views, in order. It
// satisfies the scheduler's Renderer interface.
func (wr *Writer) Render(ws []*widget.Widget) error {
	if !wr.headerDone {
		if _, err := fmt.Fprint(wr.w, "{\"version\":1,\"click_events\":true}\n[\n"); err != nil {
			return err
		}
		wr.headerDone = true
	}

	segments := make([]segment, 0, len(ws))
	for _, w := range ws {
		segments = append(segments, wr.segment(w))
	}
	line, err := json.Marshal(segments)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(wr.w, "%s,\n", line)
	return err
}

func (wr *Writer) segment(w *widget.Widget) segment {
	colors := wr.th.StateColors(w.State())
	seg := segment{
		FullText:            wr.fullText(w),
		Name:                w.ID(),
		Color:               colors.FG,
		Background:          colors.BG,
		Separator:           true,
		SeparatorBlockWidth: 9,
	}
	if w.Spacing() == widget.SpacingHidden {
		seg.Separator = false
		seg.SeparatorBlockWidth = 0
	}
	return seg
}

func (wr *Writer) fullText(w *widget.Widget) string {
	icon := wr.th.Icon(w.Icon())
	parts := make([]string, 0, 2)
	if icon != "" {
		parts = append(parts, icon)
	}
	if w.Text() != "" {
		parts = append(parts, w.Text())
	}
	return strings.Join(parts, " ")
}
