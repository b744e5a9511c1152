// Package clock implements the wall-clock block: strftime-style
// rendering of the current instant with optional fixed-timezone and
// locale overrides, and an optional shell command spawned on left click.
package clock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/google/uuid"
	"github.com/ncruces/go-strftime"

	"gitlab.com/tinyland/lab/pulsebar/pkg/blocks"
	"gitlab.com/tinyland/lab/pulsebar/pkg/config"
	"gitlab.com/tinyland/lab/pulsebar/pkg/input"
	"gitlab.com/tinyland/lab/pulsebar/pkg/subprocess"
	"gitlab.com/tinyland/lab/pulsebar/pkg/widget"
)

// Config is the time block's TOML table.
type Config struct {
	Format   string          `toml:"format"`
	Interval config.Duration `toml:"interval"`
	OnClick  string          `toml:"on_click"`
	Timezone string          `toml:"timezone"`
	Locale   string          `toml:"locale"`
}

// DefaultConfig returns the documented defaults: "%a %d/%m %R" at 5s,
// system-local zone, locale-neutral formatting, no click command.
func DefaultConfig() Config {
	return Config{
		Format:   "%a %d/%m %R",
		Interval: config.Duration{Duration: 5 * time.Second},
	}
}

// Block is the time block. It owns exactly one widget.
type Block struct {
	id       string
	w        *widget.Widget
	interval time.Duration
	format   string
	layout   string // Go layout, used only on the locale path
	onClick  string
	loc      *time.Location
	locale   monday.Locale

	// now and spawn are swappable for tests.
	now   func() time.Time
	spawn func(command string) error
}

// New builds the block. Invalid format, timezone, or locale strings are
// construction errors; the block never goes live with any of them.
func New(cfg Config, cc blocks.Context) (*Block, error) {
	if cfg.Interval.Duration <= 0 {
		return nil, fmt.Errorf("clock: interval must be positive")
	}

	b := &Block{
		id:       uuid.NewString(),
		interval: cfg.Interval.Duration,
		format:   expandCompound(cfg.Format),
		onClick:  cfg.OnClick,
		now:      time.Now,
		spawn:    subprocess.Spawn,
	}
	b.w = widget.New(b.id).WithIcon("time")

	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("clock: invalid timezone %q: %w", cfg.Timezone, err)
		}
		b.loc = loc
	}

	if cfg.Locale != "" {
		loc, err := lookupLocale(cfg.Locale)
		if err != nil {
			return nil, err
		}
		b.locale = loc
		// Localized rendering goes through a Go layout, so the pattern
		// must be convertible up front.
		layout, err := strftime.Layout(expandCompound(cfg.Format))
		if err != nil {
			return nil, fmt.Errorf("clock: format %q not usable with a locale: %w", cfg.Format, err)
		}
		b.layout = layout
	}

	return b, nil
}

// lookupLocale validates a locale name against the supported set.
func lookupLocale(name string) (monday.Locale, error) {
	for _, l := range monday.ListLocales() {
		if string(l) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("clock: invalid locale %q", name)
}

// expandCompound rewrites composite strftime specifiers into their
// primitive forms before layout conversion.
var compoundReplacer = strings.NewReplacer(
	"%R", "%H:%M",
	"%T", "%H:%M:%S",
	"%D", "%m/%d/%y",
	"%F", "%Y-%m-%d",
)

func expandCompound(pattern string) string {
	return compoundReplacer.Replace(pattern)
}

// ID implements blocks.Block.
func (b *Block) ID() string { return b.id }

// View implements blocks.Block.
func (b *Block) View() []*widget.Widget { return []*widget.Widget{b.w} }

// Update renders the current instant and always returns the configured
// interval.
func (b *Block) Update(ctx context.Context) (time.Duration, error) {
	t := b.now()
	if b.loc != nil {
		t = t.In(b.loc)
	}
	if b.locale != "" {
		b.w.SetText(monday.Format(t, b.layout, b.locale))
	} else {
		b.w.SetText(strftime.Format(b.format, t))
	}
	return b.interval, nil
}

// Click spawns the configured command on a matching left click,
// fire-and-forget. Spawn failure is reported but never mutates the
// widget.
func (b *Block) Click(ev input.Event) error {
	if ev.Name != b.id || ev.Button != input.ButtonLeft {
		return nil
	}
	if b.onClick == "" {
		return nil
	}
	if err := b.spawn(b.onClick); err != nil {
		return fmt.Errorf("clock: on_click: %w", err)
	}
	return nil
}
