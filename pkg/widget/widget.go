// Package widget provides the renderable unit a block exposes: a short
// text segment with a severity state, a visibility/spacing mode, and the
// stable identity used to route click events back to the owning block.
package widget

// Spacing controls how a widget occupies space in the bar.
type Spacing int

const (
	// SpacingNormal renders the widget with its usual padding.
	SpacingNormal Spacing = iota

	// SpacingHidden collapses the widget to its icon with no padding,
	// used by blocks in their collapsed display mode.
	SpacingHidden
)

// Widget is a single renderable segment. Each widget is exclusively
// owned by its block; only that block mutates it, serialized by the
// scheduler's single-loop discipline.
type Widget struct {
	id      string
	icon    string
	text    string
	state   State
	spacing Spacing
}

// New returns a widget bound to the given block identity.
func New(id string) *Widget {
	return &Widget{id: id}
}

// WithIcon sets the icon name and returns the widget for chaining.
func (w *Widget) WithIcon(icon string) *Widget {
	w.icon = icon
	return w
}

// WithText sets the initial text and returns the widget for chaining.
func (w *Widget) WithText(text string) *Widget {
	w.text = text
	return w
}

// WithSpacing sets the initial spacing and returns the widget for chaining.
func (w *Widget) WithSpacing(s Spacing) *Widget {
	w.spacing = s
	return w
}

// ID returns the owning block's identity. Immutable.
func (w *Widget) ID() string { return w.id }

// Icon returns the icon name, or "" if the widget has none.
func (w *Widget) Icon() string { return w.icon }

// Text returns the current display text; may be empty.
func (w *Widget) Text() string { return w.text }

// State returns the current severity state.
func (w *Widget) State() State { return w.state }

// Spacing returns the current spacing mode.
func (w *Widget) Spacing() Spacing { return w.spacing }

// SetText replaces the display text.
func (w *Widget) SetText(text string) { w.text = text }

// SetState replaces the severity state.
func (w *Widget) SetState(s State) { w.state = s }

// SetSpacing replaces the spacing mode.
func (w *Widget) SetSpacing(s Spacing) { w.spacing = s }
