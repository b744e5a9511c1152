// Package sensors reads hardware temperature data through the lm-sensors
// CLI. The output contract is deliberately loose: a two-level mapping of
// chip name to input name to an opaque reading, where a reading is
// usually a flat map of sub-field to numeric value but may be an
// unrelated descriptor (e.g. the "Adapter" entry). Interpretation is the
// consumer's job; this package only shells out and decodes JSON.
package sensors

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Chip is one sensor chip's inputs, each an undecoded JSON reading.
type Chip map[string]json.RawMessage

// Output maps chip name to that chip's inputs.
type Output map[string]Chip

// Reader is the collaborator blocks poll for sensor data. Chip may be
// empty to read every chip.
type Reader interface {
	Read(ctx context.Context, chip string) (Output, error)
}

// DefaultTimeout bounds one sensors invocation so a hung external
// command degrades to a per-cycle error instead of stalling the
// scheduler loop.
const DefaultTimeout = 5 * time.Second

// CLI reads sensors via `sensors -j [chip]`.
type CLI struct {
	// Timeout bounds one invocation. Zero means DefaultTimeout.
	Timeout time.Duration

	// Command overrides the executable name, for tests. Empty means
	// "sensors".
	Command string
}

// Read invokes the sensors CLI and decodes its JSON output.
func (c *CLI) Read(ctx context.Context, chip string) (Output, error) {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	name := c.Command
	if name == "" {
		name = "sensors"
	}
	args := []string{"-j"}
	if chip != "" {
		args = append(args, chip)
	}

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", name, err)
	}
	return Parse(out)
}

// Parse decodes `sensors -j` output. Readings stay raw; only the two
// mapping levels are validated here.
func Parse(data []byte) (Output, error) {
	var out Output
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &out); err != nil {
		return nil, fmt.Errorf("sensors output is invalid: %w", err)
	}
	return out, nil
}

// Readings attempts to interpret one raw reading as a flat map of
// sub-field name to numeric value. The second return is false when the
// reading is some other shape, which callers treat as "not a sensor
// input, skip it".
func Readings(raw json.RawMessage) (map[string]float64, bool) {
	var values map[string]float64
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, false
	}
	return values, true
}
