// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"swayout/internal/config"
	"swayout/internal/issue"
	"swayout/internal/profile"
	"swayout/internal/prompt"
	"swayout/internal/sway"
	"swayout/internal/switcher"
	"swayout/internal/tui"
)

// runSwitch executes the interactive pipeline behind the bare `swayout`
// invocation.
func runSwitch(ctx context.Context) error {
	sw, err := buildSwitcher(currentConfig())
	if err != nil {
		return err
	}
	if err := sw.Run(ctx); err != nil {
		renderIssueFor(err)
		return err
	}
	return nil
}

// buildSwitcher assembles the pipeline from the loaded settings and flags.
func buildSwitcher(cfg *config.Config) (*switcher.Switcher, error) {
	path := swayConfigFlag
	if path == "" {
		path = cfg.SwayConfigPath.String()
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, issue.WrapWithContext(err, "resolve sway config path", path)
	}

	var reloader sway.Reloader = sway.NewCommandReloader(cfg.ReloadCommand)
	if noReload {
		reloader = sway.NopReloader{}
	}

	opts := switcher.Options{
		ConfigPath: expanded,
		Markers:    cfg.Markers.Profile(),
		Out:        os.Stdout,
	}
	return switcher.New(opts, newSelector(), reloader), nil
}

// newSelector picks the prompt implementation: the TUI select when stdin is a
// terminal, the numbered prompt otherwise or when --plain is set.
func newSelector() switcher.Selector {
	if plain || !isTerminal(os.Stdin) {
		return &prompt.NumberSelector{In: os.Stdin, Out: os.Stdout}
	}
	return &tui.ProfileSelector{}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// renderIssueFor prints the rendered issue card for failures the user can
// act on. Unknown errors get no card; fang prints the message either way.
func renderIssueFor(err error) {
	var id issue.Id
	switch {
	case errors.Is(err, profile.ErrMarkersInverted):
		id = issue.MarkersInvertedId
	case errors.Is(err, profile.ErrMarkerNotFound):
		id = issue.MarkerNotFoundId
	case errors.Is(err, switcher.ErrNoProfiles):
		id = issue.NoProfilesId
	case errors.Is(err, fs.ErrNotExist):
		id = issue.ConfigFileNotFoundId
	default:
		return
	}
	if rendered, renderErr := issue.Get(id).Render("dark"); renderErr == nil {
		fmt.Fprint(os.Stderr, rendered)
	}
}
