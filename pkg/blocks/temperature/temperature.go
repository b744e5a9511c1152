// Package temperature implements the multi-sensor temperature block: it
// polls the sensors collaborator, aggregates every plausible temperature
// input into min/max/average, classifies severity from the hottest
// reading, and renders a single collapsible widget.
package temperature

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"gitlab.com/tinyland/lab/pulsebar/pkg/blocks"
	"gitlab.com/tinyland/lab/pulsebar/pkg/config"
	"gitlab.com/tinyland/lab/pulsebar/pkg/format"
	"gitlab.com/tinyland/lab/pulsebar/pkg/input"
	"gitlab.com/tinyland/lab/pulsebar/pkg/sensors"
	"gitlab.com/tinyland/lab/pulsebar/pkg/widget"
)

// Readings outside this open range are sensor noise and are discarded
// rather than folded into the aggregate.
const (
	minPlausible = -101.0
	maxPlausible = 151.0
)

// Config is the temperature block's TOML table. Every field defaults
// independently when omitted.
type Config struct {
	Interval  config.Duration `toml:"interval"`
	Collapsed bool            `toml:"collapsed"`
	Good      int64           `toml:"good"`
	Idle      int64           `toml:"idle"`
	Info      int64           `toml:"info"`
	Warning   int64           `toml:"warning"`
	Format    string          `toml:"format"`
	Chip      string          `toml:"chip"`
	Inputs    []string        `toml:"inputs"`
}

// DefaultConfig returns the documented defaults: 5s cadence, collapsed,
// 20/45/60/80 thresholds.
func DefaultConfig() Config {
	return Config{
		Interval:  config.Duration{Duration: 5 * time.Second},
		Collapsed: true,
		Good:      20,
		Idle:      45,
		Info:      60,
		Warning:   80,
		Format:    "{average}° avg, {max}° max",
	}
}

// Block is the temperature block. It owns exactly one widget.
type Block struct {
	id         string
	w          *widget.Widget
	output     string
	collapsed  bool
	interval   time.Duration
	thresholds widget.Thresholds
	format     *format.Template
	chip       string
	inputs     []string
	reader     sensors.Reader
	cc         blocks.Context
}

// New builds the block from a defaulted config snapshot and the shared
// context. reader may be nil, in which case the lm-sensors CLI is used.
// The format template is validated here so a bad template never becomes
// a live block.
func New(cfg Config, cc blocks.Context, reader sensors.Reader) (*Block, error) {
	tpl, err := format.Parse(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("temperature: invalid format: %w", err)
	}
	if cfg.Interval.Duration <= 0 {
		return nil, fmt.Errorf("temperature: interval must be positive")
	}
	if reader == nil {
		reader = &sensors.CLI{}
	}

	id := uuid.NewString()
	spacing := widget.SpacingNormal
	if cfg.Collapsed {
		spacing = widget.SpacingHidden
	}
	return &Block{
		id:        id,
		w:         widget.New(id).WithIcon("thermometer").WithSpacing(spacing),
		collapsed: cfg.Collapsed,
		interval:  cfg.Interval.Duration,
		thresholds: widget.Thresholds{
			Good:    float64(cfg.Good),
			Idle:    float64(cfg.Idle),
			Info:    float64(cfg.Info),
			Warning: float64(cfg.Warning),
		},
		format: tpl,
		chip:   cfg.Chip,
		inputs: cfg.Inputs,
		reader: reader,
		cc:     cc,
	}, nil
}

// ID implements blocks.Block.
func (b *Block) ID() string { return b.id }

// View implements blocks.Block.
func (b *Block) View() []*widget.Widget { return []*widget.Widget{b.w} }

// Update polls the sensors collaborator and refreshes the widget. A
// cycle that produces no valid readings leaves the widget exactly as it
// was; out-of-range readings are logged and dropped without affecting
// the rest of the cycle.
func (b *Block) Update(ctx context.Context) (time.Duration, error) {
	out, err := b.reader.Read(ctx, b.chip)
	if err != nil {
		return b.interval, fmt.Errorf("temperature: %w", err)
	}

	temps := b.collect(out)
	if len(temps) == 0 {
		return b.interval, nil
	}

	coldest := slices.Min(temps)
	hottest := slices.Max(temps)
	var sum int64
	for _, t := range temps {
		sum += t
	}
	avg := int64(math.Round(float64(sum) / float64(len(temps))))

	rendered, err := b.format.Render(map[string]string{
		"average": strconv.FormatInt(avg, 10),
		"min":     strconv.FormatInt(coldest, 10),
		"max":     strconv.FormatInt(hottest, 10),
	})
	if err != nil {
		return b.interval, fmt.Errorf("temperature: %w", err)
	}

	b.output = rendered
	if !b.collapsed {
		b.w.SetText(b.output)
	}
	b.w.SetState(widget.Classify(float64(hottest), b.thresholds))
	return b.interval, nil
}

// collect walks the chip/input/sub-field hierarchy and returns the
// truncated in-range temperatures.
func (b *Block) collect(out sensors.Output) []int64 {
	var temps []int64
	for _, inputs := range out {
		for inputName, raw := range inputs {
			if len(b.inputs) > 0 && !slices.Contains(b.inputs, inputName) {
				continue
			}
			// Non-numeric readings (the "Adapter" descriptor and
			// friends) are not sensor inputs: skip quietly.
			values, ok := sensors.Readings(raw)
			if !ok {
				continue
			}
			for name, value := range values {
				if !strings.HasPrefix(name, "temp") || !strings.HasSuffix(name, "input") {
					continue
				}
				if value > minPlausible && value < maxPlausible {
					temps = append(temps, int64(value))
				} else {
					b.cc.Logger().Warn("temperature outside of range [-100, 150], dropped",
						"field", name, "value", value)
				}
			}
		}
	}
	return temps
}

// Click toggles collapsed display on a matching left click. Collapsing
// empties the visible text while keeping the last computed output, so
// expanding restores it without waiting for the next poll.
func (b *Block) Click(ev input.Event) error {
	if ev.Name != b.id || ev.Button != input.ButtonLeft {
		return nil
	}
	b.collapsed = !b.collapsed
	if b.collapsed {
		b.w.SetText("")
		b.w.SetSpacing(widget.SpacingHidden)
	} else {
		b.w.SetText(b.output)
		b.w.SetSpacing(widget.SpacingNormal)
	}
	return nil
}
