// Package theme provides the shared formatting context handed to blocks
// at construction: a named color palette keyed by severity state and an
// icon set. Themes are registered in a package registry and looked up by
// name from configuration.
package theme

import (
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/pulsebar/pkg/widget"
)

// Colors is a foreground/background pair for one severity state.
type Colors struct {
	FG string // hex color e.g. "#d4d4d4"
	BG string
}

// Theme is the complete shared context a block needs to render: per-state
// colors plus an icon set. Immutable once handed to blocks.
type Theme struct {
	Name string

	// Separator colors between bar segments.
	Separator Colors

	// Per-state segment colors.
	Good     Colors
	Idle     Colors
	Info     Colors
	Warning  Colors
	Critical Colors

	// Icons maps icon names (e.g. "thermometer", "time") to glyphs.
	// A missing name renders as no icon.
	Icons map[string]string
}

// StateColors returns the color pair for a severity state.
func (t Theme) StateColors(s widget.State) Colors {
	switch s {
	case widget.StateGood:
		return t.Good
	case widget.StateIdle:
		return t.Idle
	case widget.StateInfo:
		return t.Info
	case widget.StateWarning:
		return t.Warning
	case widget.StateCritical:
		return t.Critical
	default:
		return t.Idle
	}
}

// Icon returns the glyph for an icon name, or "" if the set has none.
func (t Theme) Icon(name string) string {
	return t.Icons[name]
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	for _, t := range builtins() {
		register(t)
	}
}

func register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

// Get returns a named theme, falling back to "plain" if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["plain"]
}

// Names returns all registered theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
