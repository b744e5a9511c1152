package blocks

import (
	"fmt"
	"sync"
	"time"
)

// Status tracks the runtime state of a single block. The scheduler
// updates this after every update cycle.
type Status struct {
	ID          string
	Healthy     bool
	LastRun     time.Time
	LastError   error
	RunCount    int64
	ErrorCount  int64
	LastLatency time.Duration
}

// Registry holds the live blocks in registration order. Registration
// order is load-bearing: it is both the update tie-break order and the
// click delivery order, and it fixes the left-to-right order of the
// rendered bar. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	order    []Block
	statuses map[string]*Status
}

// NewRegistry returns an empty registry ready for block registration.
func NewRegistry() *Registry {
	return &Registry{statuses: make(map[string]*Status)}
}

// Register appends a block. It returns an error if a block with the
// same identity is already registered; identities never collide within
// a process, so a duplicate means the same block was registered twice.
func (r *Registry) Register(b Block) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := b.ID()
	if _, exists := r.statuses[id]; exists {
		return fmt.Errorf("block %q already registered", id)
	}
	r.order = append(r.order, b)
	r.statuses[id] = &Status{ID: id, Healthy: true}
	return nil
}

// Blocks returns the registered blocks in registration order. The
// returned slice is a copy; the blocks themselves are shared.
func (r *Registry) Blocks() []Block {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Block, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered blocks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Get returns the block with the given identity, or false if not found.
func (r *Registry) Get(id string) (Block, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.order {
		if b.ID() == id {
			return b, true
		}
	}
	return nil, false
}

// Status returns a copy of the runtime status for the identified block,
// or false if it is not registered.
func (r *Registry) Status(id string) (Status, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.statuses[id]
	if !ok {
		return Status{}, false
	}
	return *s, true
}

// AllStatus returns a copy of all block statuses in registration order.
func (r *Registry) AllStatus() []Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Status, 0, len(r.order))
	for _, b := range r.order {
		out = append(out, *r.statuses[b.ID()])
	}
	return out
}

// UpdateStatus applies fn to the status entry for the identified block.
// No-op for unknown identities.
func (r *Registry) UpdateStatus(id string, fn func(s *Status)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.statuses[id]; ok {
		fn(s)
	}
}
