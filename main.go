// pulsebar is a status-bar block host. Each configured block samples a
// piece of system state on its own cadence (hardware temperatures, the
// wall clock, load averages), renders a short segment with a severity
// classification, and reacts to routed click events. Output speaks the
// i3bar JSON protocol on stdout, or a styled preview line when stdout
// is a terminal.
//
// Usage:
//
//	pulsebar [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/pulsebar/config.toml)
//	-once           Update every block once, render, and exit
//	-preview        Force the terminal preview renderer
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"gitlab.com/tinyland/lab/pulsebar/pkg/blocks"
	"gitlab.com/tinyland/lab/pulsebar/pkg/blocks/clock"
	"gitlab.com/tinyland/lab/pulsebar/pkg/blocks/loadavg"
	"gitlab.com/tinyland/lab/pulsebar/pkg/blocks/temperature"
	"gitlab.com/tinyland/lab/pulsebar/pkg/config"
	"gitlab.com/tinyland/lab/pulsebar/pkg/i3bar"
	"gitlab.com/tinyland/lab/pulsebar/pkg/preview"
	"gitlab.com/tinyland/lab/pulsebar/pkg/scheduler"
	"gitlab.com/tinyland/lab/pulsebar/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Path to configuration file")
		runOnce      = flag.Bool("once", false, "Update every block once, render, and exit")
		forcePreview = flag.Bool("preview", false, "Force the terminal preview renderer")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion  = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("pulsebar %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal("loading config: %v", err)
	}

	logger := newLogger(cfg.General.LogLevel, *verbose)
	slog.SetDefault(logger)

	th, err := buildTheme(cfg.Theme)
	if err != nil {
		fatal("%v", err)
	}

	reg := blocks.NewRegistry()
	var sched *scheduler.Scheduler
	cc := blocks.Context{
		Theme: th,
		Log:   logger,
		// The scheduler does not exist yet while blocks are being
		// constructed; the closure resolves it at call time.
		Wake: func(id string) {
			if sched != nil {
				sched.Wake(id)
			}
		},
	}

	if err := buildBlocks(cfg, cc, reg); err != nil {
		fatal("%v", err)
	}
	if keys := cfg.UndecodedKeys(); len(keys) > 0 {
		fatal("unknown configuration keys: %v", keys)
	}

	usePreview := *forcePreview || isatty.IsTerminal(os.Stdout.Fd())
	var renderer scheduler.Renderer
	if usePreview {
		renderer = preview.New(os.Stdout, th)
	} else {
		renderer = i3bar.NewWriter(os.Stdout, th)
	}

	sched = scheduler.New(reg, renderer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *runOnce {
		sched.RunOnce(ctx)
		return
	}

	// Click events arrive on stdin only in protocol mode; a preview
	// terminal's stdin belongs to the shell.
	if !usePreview {
		go i3bar.ReadClicks(bufio.NewScanner(os.Stdin), sched.Events())
	}

	logger.Info("pulsebar starting", "version", version, "blocks", reg.Len(), "theme", th.Name)
	if err := sched.Run(ctx); err != nil {
		fatal("scheduler: %v", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func newLogger(level string, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func buildTheme(tc config.ThemeConfig) (theme.Theme, error) {
	th := theme.Get(tc.Name)
	if tc.Icons != "" {
		th.Icons = theme.IconSet(tc.Icons)
	}
	th, err := theme.Apply(th, tc.Overrides)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("theme: %w", err)
	}
	return th, nil
}

// buildBlocks constructs and registers every configured block in file
// order. With no blocks configured the bar gets a lone clock so the
// binary still does something useful out of the box.
func buildBlocks(cfg *config.Config, cc blocks.Context, reg *blocks.Registry) error {
	if len(cfg.Blocks) == 0 {
		b, err := clock.New(clock.DefaultConfig(), cc)
		if err != nil {
			return err
		}
		return reg.Register(b)
	}

	for i, entry := range cfg.Blocks {
		b, err := buildBlock(cfg, entry, cc)
		if err != nil {
			return fmt.Errorf("block %d (%s): %w", i, entry.Kind, err)
		}
		if err := reg.Register(b); err != nil {
			return err
		}
	}
	return nil
}

func buildBlock(cfg *config.Config, entry config.BlockEntry, cc blocks.Context) (blocks.Block, error) {
	switch entry.Kind {
	case "temperature":
		c := temperature.DefaultConfig()
		if err := cfg.DecodeBlock(entry, &c); err != nil {
			return nil, err
		}
		return temperature.New(c, cc, nil)
	case "time":
		c := clock.DefaultConfig()
		if err := cfg.DecodeBlock(entry, &c); err != nil {
			return nil, err
		}
		return clock.New(c, cc)
	case "load":
		c := loadavg.DefaultConfig()
		if err := cfg.DecodeBlock(entry, &c); err != nil {
			return nil, err
		}
		return loadavg.New(c, cc)
	default:
		return nil, fmt.Errorf("unknown block kind %q", entry.Kind)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "pulsebar: "+format+"\n", args...)
	os.Exit(1)
}
