// Package subprocess launches click-triggered shell commands without
// tying up the caller. Spawn failures are captured synchronously; the
// command's eventual exit status is not.
package subprocess

import (
	"fmt"
	"os/exec"
)

// Spawn starts `sh -c command` and returns once the process is running.
// A goroutine reaps the child so it never zombies; its outcome is
// discarded (fire-and-forget by contract).
func Spawn(command string) error {
	if command == "" {
		return fmt.Errorf("empty command")
	}
	cmd := exec.Command("sh", "-c", command)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawning %q: %w", command, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
