// SPDX-License-Identifier: MPL-2.0

// Package switcher wires the display-switch pipeline: read the sway config,
// locate and parse the display section, let a selector pick a profile,
// rewrite the section, atomically replace the file, and ask sway to reload.
package switcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"swayout/internal/issue"
	"swayout/internal/profile"
	"swayout/internal/sway"
)

// ErrNoProfiles is returned when the display section contains no parsable
// configuration blocks.
var ErrNoProfiles = errors.New("no display configurations found in the section")

type (
	// Selector chooses one profile index. ok is false when the user
	// cancelled; a cancel must leave the file untouched and is not an error.
	Selector interface {
		Choose(profiles []profile.Profile) (index int, ok bool, err error)
	}

	// Options configures a Switcher. All fields are explicit so tests can
	// point the pipeline at fixture files.
	Options struct {
		// ConfigPath is the sway config file to edit.
		ConfigPath string
		// Markers delimit the display section. Zero value means the defaults.
		Markers profile.Markers
		// Out receives user-facing status messages. Defaults to os.Stdout.
		Out io.Writer
	}

	// Switcher is the composition root of the pipeline. Collaborators are
	// injected; the zero-effect guarantees (cancel, fatal error) hold because
	// nothing touches the file until a selection has been made.
	Switcher struct {
		opts     Options
		selector Selector
		reloader sway.Reloader
	}
)

// New builds a Switcher. Missing option fields get their defaults.
func New(opts Options, selector Selector, reloader sway.Reloader) *Switcher {
	if opts.Markers == (profile.Markers{}) {
		opts.Markers = profile.DefaultMarkers()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if reloader == nil {
		reloader = sway.NopReloader{}
	}
	return &Switcher{opts: opts, selector: selector, reloader: reloader}
}

// Profiles reads the config file and returns the parsed display profiles
// without mutating anything.
func (s *Switcher) Profiles() ([]profile.Profile, error) {
	_, _, _, profiles, err := s.loadSection()
	return profiles, err
}

// Run executes the interactive pipeline. A selector cancel returns nil with
// the file untouched. A reload failure after a successful write is logged as
// a warning and does not fail the run.
func (s *Switcher) Run(ctx context.Context) error {
	lines, start, end, profiles, err := s.loadSection()
	if err != nil {
		return err
	}

	if active := profile.ActiveIndex(profiles); active >= 0 {
		fmt.Fprintf(s.opts.Out, "Current active configuration: %s\n", profiles[active].Description)
	} else {
		fmt.Fprintln(s.opts.Out, "No configuration is currently enabled.")
	}

	index, ok, err := s.selector.Choose(profiles)
	if err != nil {
		return issue.WrapWithOperation(err, "select display configuration")
	}
	if !ok {
		fmt.Fprintln(s.opts.Out, "Exiting without making changes.")
		return nil
	}

	return s.commit(ctx, lines, start, end, profiles, index)
}

// SetActive enables the profile at the given 0-based index without
// prompting. Used by the non-interactive `set` command.
func (s *Switcher) SetActive(ctx context.Context, index int) error {
	lines, start, end, profiles, err := s.loadSection()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(profiles) {
		return fmt.Errorf("selection %d out of range: there are %d display configurations", index+1, len(profiles))
	}
	return s.commit(ctx, lines, start, end, profiles, index)
}

// commit is the destructive tail of the pipeline: toggle, re-serialize,
// splice, atomic replace, reload.
func (s *Switcher) commit(ctx context.Context, lines []string, start, end int, profiles []profile.Profile, index int) error {
	profile.Activate(profiles, index)

	section := profile.RenderSection(profiles)
	updated := profile.Splice(lines, start, end, section)

	if err := writeLinesAtomic(s.opts.ConfigPath, updated); err != nil {
		return issue.NewErrorContext().
			WithOperation("update sway config").
			WithResource(s.opts.ConfigPath).
			WithSuggestion("Check permissions on the config file and its directory").
			Wrap(err).
			BuildError()
	}

	fmt.Fprintf(s.opts.Out, "Activated display configuration: %s\n", profiles[index].Description)

	if err := s.reloader.Reload(ctx); err != nil {
		// The file mutation already succeeded; a reload failure must not
		// undo it or fail the run.
		slog.Warn("failed to reload sway configuration", "error", err)
		return nil
	}
	fmt.Fprintln(s.opts.Out, "Successfully reloaded sway configuration.")
	return nil
}

// loadSection reads the config file and parses the display section.
func (s *Switcher) loadSection() (lines []string, start, end int, profiles []profile.Profile, err error) {
	lines, err = readLines(s.opts.ConfigPath)
	if err != nil {
		return nil, 0, 0, nil, issue.NewErrorContext().
			WithOperation("read sway config").
			WithResource(s.opts.ConfigPath).
			WithSuggestion("Check that the file exists and is readable").
			WithSuggestion("Use --sway-config or sway_config_path to point at a different file").
			Wrap(err).
			BuildError()
	}

	start, end, err = profile.LocateSection(lines, s.opts.Markers)
	if err != nil {
		return nil, 0, 0, nil, err
	}

	profiles = profile.ParseSection(lines[start+1 : end])
	if len(profiles) == 0 {
		return nil, 0, 0, nil, fmt.Errorf("%w (between %q and %q)", ErrNoProfiles, s.opts.Markers.Start, s.opts.Markers.End)
	}
	return lines, start, end, profiles, nil
}
