// Package blocks defines the lifecycle contract every pulsebar block
// implements and the ordered registry the scheduler drives. Concrete
// blocks (temperature, clock, loadavg) live in sub-packages and are
// constructed from their own configuration tables at startup; the
// scheduler only ever sees this interface, so new block kinds plug in
// without touching it.
package blocks

import (
	"context"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/pulsebar/pkg/input"
	"gitlab.com/tinyland/lab/pulsebar/pkg/theme"
	"gitlab.com/tinyland/lab/pulsebar/pkg/widget"
)

// Block is the lifecycle contract. A block owns its widgets exclusively
// and mutates them only from Update and Click, both serialized by the
// scheduler's single loop.
type Block interface {
	// ID returns the block's process-unique identity, assigned at
	// construction and immutable for the block's lifetime. It is the
	// sole correlation key between a click event and its target.
	ID() string

	// Update performs one polling cycle and returns the delay before
	// the next automatic call. A zero duration means the block wants no
	// further automatic polling; it stays registered and clickable.
	// A non-nil error leaves the widgets in their prior state; the
	// returned duration is still honored so a failing block keeps its
	// cadence instead of dropping off the bar.
	Update(ctx context.Context) (time.Duration, error)

	// Click handles a routed pointer event. Events whose Name does not
	// match this block's identity must be ignored without error.
	Click(ev input.Event) error

	// View returns the block's renderable widgets in display order.
	View() []*widget.Widget
}

// Context is the shared construction context handed to every block:
// theming, a handle to request an early scheduler re-check, and the
// host logger. Constructors must not block on I/O beyond identity
// generation.
type Context struct {
	Theme theme.Theme

	// Wake asks the scheduler to update the named block before its due
	// time. May be nil (e.g. in tests); blocks must tolerate that.
	Wake func(id string)

	Log *slog.Logger
}

// Logger returns the context logger, or slog.Default if unset, so
// blocks never need a nil check before logging.
func (c Context) Logger() *slog.Logger {
	if c.Log != nil {
		return c.Log
	}
	return slog.Default()
}
