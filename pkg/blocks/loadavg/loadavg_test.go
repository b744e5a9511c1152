package loadavg

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v4/load"

	"gitlab.com/tinyland/lab/pulsebar/pkg/blocks"
	"gitlab.com/tinyland/lab/pulsebar/pkg/input"
	"gitlab.com/tinyland/lab/pulsebar/pkg/widget"
)

func newBlock(t *testing.T, cfg Config, st *load.AvgStat, err error) *Block {
	t.Helper()
	b, nerr := New(cfg, blocks.Context{})
	if nerr != nil {
		t.Fatalf("New failed: %v", nerr)
	}
	b.avg = func(ctx context.Context) (*load.AvgStat, error) { return st, err }
	// Pin thresholds independent of the host's CPU count.
	b.thresholds = widget.Thresholds{Good: 0.5, Idle: 1, Info: 2, Warning: 4}
	return b
}

func TestUpdateRendersAverages(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "{1min} {5min} {15min}"
	b := newBlock(t, cfg, &load.AvgStat{Load1: 0.42, Load5: 1.5, Load15: 2.25}, nil)

	next, err := b.Update(context.Background())
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if next != cfg.Interval.Duration {
		t.Errorf("interval = %v", next)
	}
	if got := b.View()[0].Text(); got != "0.42 1.50 2.25" {
		t.Errorf("text = %q", got)
	}
	if got := b.View()[0].State(); got != widget.StateGood {
		t.Errorf("state = %v, want good for load1 0.42", got)
	}
}

func TestUpdateClassifiesOnOneMinute(t *testing.T) {
	b := newBlock(t, DefaultConfig(), &load.AvgStat{Load1: 3.0, Load5: 0.1, Load15: 0.1}, nil)
	if _, err := b.Update(context.Background()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got := b.View()[0].State(); got != widget.StateWarning {
		t.Errorf("state = %v, want warning for load1 3.0", got)
	}
}

func TestUpdateErrorLeavesWidget(t *testing.T) {
	avgErr := errors.New("no /proc")
	b := newBlock(t, DefaultConfig(), nil, avgErr)

	next, err := b.Update(context.Background())
	if !errors.Is(err, avgErr) {
		t.Fatalf("Update error = %v", err)
	}
	if next == 0 {
		t.Error("interval should still be returned on error")
	}
	if b.View()[0].Text() != "" {
		t.Errorf("widget mutated on error: %q", b.View()[0].Text())
	}
}

func TestClickIsNoop(t *testing.T) {
	b := newBlock(t, DefaultConfig(), &load.AvgStat{Load1: 1}, nil)
	if err := b.Click(input.Event{Name: b.ID(), Button: input.ButtonLeft}); err != nil {
		t.Errorf("Click errored: %v", err)
	}
}

func TestNewRejectsBadFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "{1min"
	if _, err := New(cfg, blocks.Context{}); err == nil {
		t.Fatal("New should reject an unterminated format")
	}
}
