package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

// Config is the decoded top-level configuration. Block tables are held
// as undecoded TOML primitives; each block constructor decodes its own
// table so that defaults and unknown-key rejection stay per-block.
type Config struct {
	General GeneralConfig
	Theme   ThemeConfig
	Blocks  []BlockEntry

	md *toml.MetaData
}

// GeneralConfig holds host-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// ThemeConfig selects the shared theme and icon set handed to blocks.
type ThemeConfig struct {
	Name  string `toml:"name"`
	Icons string `toml:"icons"`

	// Overrides replaces individual state colors of the named theme,
	// keyed "good"/"idle"/"info"/"warning"/"critical", values hex.
	Overrides map[string]string `toml:"overrides"`
}

// BlockEntry is one [[block]] table: its kind plus the still-undecoded
// body. Decode the body with Config.DecodeBlock.
type BlockEntry struct {
	Kind string
	prim toml.Primitive
}

// rawConfig mirrors the TOML file shape.
type rawConfig struct {
	General GeneralConfig    `toml:"general"`
	Theme   ThemeConfig      `toml:"theme"`
	Block   []toml.Primitive `toml:"block"`
}

// blockHeader extracts only the dispatch key from a block table.
type blockHeader struct {
	Block string `toml:"block"`
}

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/pulsebar/config.toml
//  2. ~/.config/pulsebar/config.toml
//
// If no file exists, returns DefaultConfig().
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	return DefaultConfig(), nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	var raw rawConfig
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	cfg.md = &md
	if raw.General.LogLevel != "" {
		cfg.General.LogLevel = raw.General.LogLevel
	}
	if raw.Theme.Name != "" {
		cfg.Theme.Name = raw.Theme.Name
	}
	if raw.Theme.Icons != "" {
		cfg.Theme.Icons = raw.Theme.Icons
	}
	cfg.Theme.Overrides = raw.Theme.Overrides

	for i, prim := range raw.Block {
		var hdr blockHeader
		if err := md.PrimitiveDecode(prim, &hdr); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		if hdr.Block == "" {
			return nil, fmt.Errorf("block %d: missing required \"block\" key", i)
		}
		cfg.Blocks = append(cfg.Blocks, BlockEntry{Kind: hdr.Block, prim: prim})
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration: no blocks, plain
// theme, ascii icons, info logging.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{LogLevel: "info"},
		Theme:   ThemeConfig{Name: "plain", Icons: "ascii"},
	}
}

// DecodeBlock decodes one block table body into the block's own config
// struct. v should be pre-filled with that block's defaults so omitted
// fields default independently.
func (c *Config) DecodeBlock(b BlockEntry, v interface{}) error {
	if c.md == nil {
		return fmt.Errorf("config was not loaded from TOML")
	}
	return c.md.PrimitiveDecode(b.prim, v)
}

// UndecodedKeys returns configuration keys no decode step consumed,
// sorted. Call after every block table has been decoded; a non-empty
// result means a typo somewhere in the file and is treated as a hard
// construction error by the caller (fail fast on typos).
func (c *Config) UndecodedKeys() []string {
	if c.md == nil {
		return nil
	}
	var keys []string
	for _, k := range c.md.Undecoded() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return keys
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "pulsebar", "config.toml"))

	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "pulsebar", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
