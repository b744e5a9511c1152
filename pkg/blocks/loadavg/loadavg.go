// Package loadavg implements the system load block: 1/5/15-minute load
// averages via gopsutil, classified against thresholds expressed as
// fractions of the logical CPU count so the same configuration behaves
// sensibly on machines of any size.
package loadavg

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"

	"gitlab.com/tinyland/lab/pulsebar/pkg/blocks"
	"gitlab.com/tinyland/lab/pulsebar/pkg/config"
	"gitlab.com/tinyland/lab/pulsebar/pkg/format"
	"gitlab.com/tinyland/lab/pulsebar/pkg/input"
	"gitlab.com/tinyland/lab/pulsebar/pkg/widget"
)

// Config is the load block's TOML table. Threshold fields are fractions
// of the logical CPU count applied to the 1-minute average.
type Config struct {
	Interval config.Duration `toml:"interval"`
	Format   string          `toml:"format"`
	Good     float64         `toml:"good"`
	Idle     float64         `toml:"idle"`
	Info     float64         `toml:"info"`
	Warning  float64         `toml:"warning"`
}

// DefaultConfig returns the defaults: "{1min}" at 5s, thresholds at
// 20/40/60/80 percent of the CPU count.
func DefaultConfig() Config {
	return Config{
		Interval: config.Duration{Duration: 5 * time.Second},
		Format:   "{1min}",
		Good:     0.2,
		Idle:     0.4,
		Info:     0.6,
		Warning:  0.8,
	}
}

// Block is the load block. Update-only; clicks are ignored.
type Block struct {
	id         string
	w          *widget.Widget
	interval   time.Duration
	thresholds widget.Thresholds
	format     *format.Template

	// avg is swappable for tests.
	avg func(ctx context.Context) (*load.AvgStat, error)
}

// New builds the block. The CPU count is read once here; logical CPUs
// do not come and go under a status bar.
func New(cfg Config, cc blocks.Context) (*Block, error) {
	tpl, err := format.Parse(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("loadavg: invalid format: %w", err)
	}
	if cfg.Interval.Duration <= 0 {
		return nil, fmt.Errorf("loadavg: interval must be positive")
	}

	cpus, err := cpu.Counts(true)
	if err != nil || cpus < 1 {
		cpus = 1
	}
	n := float64(cpus)

	id := uuid.NewString()
	return &Block{
		id:       id,
		w:        widget.New(id).WithIcon("load"),
		interval: cfg.Interval.Duration,
		thresholds: widget.Thresholds{
			Good:    cfg.Good * n,
			Idle:    cfg.Idle * n,
			Info:    cfg.Info * n,
			Warning: cfg.Warning * n,
		},
		format: tpl,
		avg:    load.AvgWithContext,
	}, nil
}

// ID implements blocks.Block.
func (b *Block) ID() string { return b.id }

// View implements blocks.Block.
func (b *Block) View() []*widget.Widget { return []*widget.Widget{b.w} }

// Update samples the load averages and refreshes the widget. A failed
// sample leaves the widget untouched.
func (b *Block) Update(ctx context.Context) (time.Duration, error) {
	st, err := b.avg(ctx)
	if err != nil {
		return b.interval, fmt.Errorf("loadavg: %w", err)
	}

	rendered, err := b.format.Render(map[string]string{
		"1min":  strconv.FormatFloat(st.Load1, 'f', 2, 64),
		"5min":  strconv.FormatFloat(st.Load5, 'f', 2, 64),
		"15min": strconv.FormatFloat(st.Load15, 'f', 2, 64),
	})
	if err != nil {
		return b.interval, fmt.Errorf("loadavg: %w", err)
	}

	b.w.SetText(rendered)
	b.w.SetState(widget.Classify(st.Load1, b.thresholds))
	return b.interval, nil
}

// Click implements blocks.Block; the load block has no click behavior.
func (b *Block) Click(ev input.Event) error { return nil }
