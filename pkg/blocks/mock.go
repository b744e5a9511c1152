package blocks

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"gitlab.com/tinyland/lab/pulsebar/pkg/input"
	"gitlab.com/tinyland/lab/pulsebar/pkg/widget"
)

// MockBlock implements Block for tests. Its interval, error, and click
// behavior are configurable, and it counts Update and Click calls.
type MockBlock struct {
	id       string
	interval time.Duration
	err      error

	mu          sync.Mutex
	w           *widget.Widget
	updateCount atomic.Int64
	clickCount  atomic.Int64
	matched     atomic.Int64

	// UpdateFunc, if set, overrides the default Update behavior so a
	// test can vary intervals or block until signaled.
	UpdateFunc func(ctx context.Context) (time.Duration, error)
}

// MockOption configures a MockBlock.
type MockOption func(*MockBlock)

// WithID fixes the mock's identity instead of generating one.
func WithID(id string) MockOption {
	return func(m *MockBlock) { m.id = id }
}

// WithError sets the error returned by Update.
func WithError(err error) MockOption {
	return func(m *MockBlock) { m.err = err }
}

// WithUpdateFunc sets a custom function for Update.
func WithUpdateFunc(fn func(ctx context.Context) (time.Duration, error)) MockOption {
	return func(m *MockBlock) { m.UpdateFunc = fn }
}

// NewMockBlock creates a mock block with the given interval. A zero
// interval makes the mock decline automatic polling after its first
// update, like a real block entering its terminal cadence state.
func NewMockBlock(interval time.Duration, opts ...MockOption) *MockBlock {
	m := &MockBlock{
		id:       uuid.NewString(),
		interval: interval,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.w = widget.New(m.id)
	return m
}

func (m *MockBlock) ID() string { return m.id }

func (m *MockBlock) Update(ctx context.Context) (time.Duration, error) {
	m.updateCount.Add(1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx)
	}
	if m.err != nil {
		return m.interval, m.err
	}
	m.mu.Lock()
	m.w.SetText("update " + time.Now().Format(time.RFC3339Nano))
	m.mu.Unlock()
	return m.interval, nil
}

func (m *MockBlock) Click(ev input.Event) error {
	m.clickCount.Add(1)
	if ev.Name != m.id {
		return nil
	}
	m.matched.Add(1)
	m.mu.Lock()
	m.w.SetText("clicked")
	m.mu.Unlock()
	return nil
}

func (m *MockBlock) View() []*widget.Widget {
	return []*widget.Widget{m.w}
}

// UpdateCount returns how many times Update has been called.
func (m *MockBlock) UpdateCount() int64 { return m.updateCount.Load() }

// ClickCount returns how many times Click has been called, matching or not.
func (m *MockBlock) ClickCount() int64 { return m.clickCount.Load() }

// MatchedClicks returns how many delivered events matched this block.
func (m *MockBlock) MatchedClicks() int64 { return m.matched.Load() }
