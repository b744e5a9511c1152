// Package scheduler drives the registered blocks: it times automatic
// updates, routes click events, and asks the renderer collaborator for a
// redraw after any mutation. One loop serializes everything, so blocks
// never see concurrent calls; external invocations inside a block are
// expected to bound themselves (the sensors reader carries a timeout)
// so a hung command degrades to a per-cycle error instead of wedging
// the bar.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/pulsebar/pkg/blocks"
	"gitlab.com/tinyland/lab/pulsebar/pkg/input"
	"gitlab.com/tinyland/lab/pulsebar/pkg/widget"
)

// Renderer receives the aggregate view after every mutation: the
// concatenation of all blocks' widgets in registration order. The wire
// protocol behind it is not the scheduler's business.
type Renderer interface {
	Render(ws []*widget.Widget) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ws []*widget.Widget) error

// Render implements Renderer.
func (f RendererFunc) Render(ws []*widget.Widget) error { return f(ws) }

// entry tracks one block's cadence. due is the absolute next update
// time; auto turns false when the block declines further polling.
type entry struct {
	b        blocks.Block
	due      time.Time
	interval time.Duration
	auto     bool
}

// Scheduler owns the block set for the life of the process.
type Scheduler struct {
	reg      *blocks.Registry
	renderer Renderer
	log      *slog.Logger

	entries []*entry
	events  chan input.Event
	wake    chan string
}

// New returns a scheduler over the registry's blocks. Registration
// order fixes both the update tie-break order and click delivery order.
func New(reg *blocks.Registry, renderer Renderer, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	s := &Scheduler{
		reg:      reg,
		renderer: renderer,
		log:      log,
		events:   make(chan input.Event, 16),
		wake:     make(chan string, 16),
	}
	now := time.Now()
	for _, b := range reg.Blocks() {
		s.entries = append(s.entries, &entry{b: b, due: now, auto: true})
	}
	return s
}

// Events returns the channel external click sources feed.
func (s *Scheduler) Events() chan<- input.Event { return s.events }

// Wake asks the scheduler to update the identified block before its due
// time. Safe from any goroutine; drops the request rather than block if
// the scheduler is flooded.
func (s *Scheduler) Wake(id string) {
	select {
	case s.wake <- id:
	default:
	}
}

// Run executes the scheduling loop until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	// First paint before any update so the bar appears immediately.
	s.render()

	for {
		var timerC <-chan time.Time
		var timer *time.Timer
		if due, ok := s.nextDue(); ok {
			timer = time.NewTimer(time.Until(due))
			timerC = timer.C
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case <-timerC:
			s.updateDue(ctx, time.Now())
		case ev := <-s.events:
			s.deliver(ev)
		case id := <-s.wake:
			s.updateOne(ctx, id)
		}
		if timer != nil {
			timer.Stop()
		}
		s.render()
	}
}

// RunOnce performs a single update cycle for every block followed by
// one render, for one-shot invocations.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.updateDue(ctx, time.Now())
	s.render()
}

// nextDue returns the earliest due time among auto-polled entries.
func (s *Scheduler) nextDue() (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, e := range s.entries {
		if !e.auto {
			continue
		}
		if !found || e.due.Before(earliest) {
			earliest = e.due
			found = true
		}
	}
	return earliest, found
}

// updateDue runs every elapsed entry in registration order. The next
// due time advances from now, not from the missed due time, so a stall
// never triggers a catch-up burst.
func (s *Scheduler) updateDue(ctx context.Context, now time.Time) {
	for _, e := range s.entries {
		if e.auto && !e.due.After(now) {
			s.runUpdate(ctx, e, now)
		}
	}
}

// updateOne services an early-wake request for a single block.
func (s *Scheduler) updateOne(ctx context.Context, id string) {
	for _, e := range s.entries {
		if e.b.ID() == id {
			s.runUpdate(ctx, e, time.Now())
			return
		}
	}
}

// runUpdate performs one update cycle and reschedules the entry. An
// error is reported and the block keeps its previous cadence; its
// widgets are whatever the block left them as (the conservative
// "report and keep previous state" policy).
func (s *Scheduler) runUpdate(ctx context.Context, e *entry, now time.Time) {
	start := time.Now()
	next, err := e.b.Update(ctx)
	latency := time.Since(start)

	s.reg.UpdateStatus(e.b.ID(), func(st *blocks.Status) {
		st.RunCount++
		st.LastRun = now
		st.LastLatency = latency
		st.LastError = err
		st.Healthy = err == nil
		if err != nil {
			st.ErrorCount++
		}
	})

	if err != nil {
		s.log.Error("block update failed", "block", e.b.ID(), "err", err)
		if next > 0 {
			e.interval = next
		}
		if e.interval <= 0 {
			// Never successfully scheduled; stop polling rather than
			// spin on a broken block.
			e.auto = false
			return
		}
		e.due = now.Add(e.interval)
		return
	}

	if next <= 0 {
		e.auto = false
		return
	}
	e.interval = next
	e.due = now.Add(next)
}

// deliver routes a click to every block in registration order. Blocks
// ignore non-matching events, so this is cheap; a block's click error
// is reported and never stops delivery to the rest.
func (s *Scheduler) deliver(ev input.Event) {
	for _, e := range s.entries {
		if err := e.b.Click(ev); err != nil {
			s.log.Error("block click failed", "block", e.b.ID(), "err", err)
		}
	}
}

// render hands the aggregate view to the renderer.
func (s *Scheduler) render() {
	var ws []*widget.Widget
	for _, e := range s.entries {
		ws = append(ws, e.b.View()...)
	}
	if err := s.renderer.Render(ws); err != nil {
		s.log.Error("render failed", "err", err)
	}
}
