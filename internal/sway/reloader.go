// SPDX-License-Identifier: MPL-2.0

package sway

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// DefaultReloadCommand asks sway to re-read its configuration.
var DefaultReloadCommand = []string{"swaymsg", "reload"}

type (
	// Reloader triggers a live configuration reload. The switcher treats a
	// reload failure as a warning, never as a reason to roll back the file
	// mutation that already succeeded.
	Reloader interface {
		Reload(ctx context.Context) error
	}

	// CommandReloader reloads by running an external command, by default
	// `swaymsg reload`.
	CommandReloader struct {
		// Command is the argv to run. When empty, DefaultReloadCommand is used.
		Command []string
	}

	// NopReloader does nothing. Used by tests and by --no-reload.
	NopReloader struct{}
)

// NewCommandReloader returns a CommandReloader for the given argv,
// falling back to DefaultReloadCommand when argv is empty.
func NewCommandReloader(argv []string) *CommandReloader {
	return &CommandReloader{Command: argv}
}

// Reload runs the reload command and folds its combined output into the
// returned error on failure.
func (r *CommandReloader) Reload(ctx context.Context) error {
	argv := r.Command
	if len(argv) == 0 {
		argv = DefaultReloadCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if trimmed := bytes.TrimSpace(out); len(trimmed) > 0 {
			return fmt.Errorf("%s: %w: %s", argv[0], err, trimmed)
		}
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	return nil
}

// Reload implements Reloader as a no-op.
func (NopReloader) Reload(context.Context) error { return nil }
