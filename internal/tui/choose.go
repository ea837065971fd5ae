// SPDX-License-Identifier: EPL-2.0

// Package tui holds the interactive terminal prompts, built on
// charmbracelet/huh.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"swayout/internal/profile"
)

type (
	// Option represents a selectable option with a display title and value.
	Option[T comparable] struct {
		// Title is the display text for the option.
		Title string
		// Value is the underlying value of the option.
		Value T
	}

	// ChooseOptions configures the Choose prompt.
	ChooseOptions[T comparable] struct {
		// Title is the title/prompt displayed above the options.
		Title string
		// Description provides additional context below the title.
		Description string
		// Options is the list of options to choose from.
		Options []Option[T]
		// Height limits the number of visible options (0 for auto).
		Height int
	}
)

// Choose prompts the user to select one option from a list. ok is false when
// the prompt was cancelled (esc or ctrl-c).
func Choose[T comparable](opts ChooseOptions[T]) (value T, ok bool, err error) {
	var result T

	huhOpts := make([]huh.Option[T], len(opts.Options))
	for i, opt := range opts.Options {
		huhOpts[i] = huh.NewOption(opt.Title, opt.Value)
	}

	sel := huh.NewSelect[T]().
		Title(opts.Title).
		Description(opts.Description).
		Options(huhOpts...).
		Value(&result)

	if opts.Height > 0 {
		sel = sel.Height(opts.Height)
	}

	form := huh.NewForm(huh.NewGroup(sel))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return result, false, nil
		}
		return result, false, err
	}
	return result, true, nil
}

// ProfileSelector presents the display profiles as a select prompt.
// It satisfies the switcher's Selector interface.
type ProfileSelector struct {
	// Title overrides the default prompt title when non-empty.
	Title string
}

// Choose shows the profile menu and returns the selected index.
func (s *ProfileSelector) Choose(profiles []profile.Profile) (index int, ok bool, err error) {
	title := s.Title
	if title == "" {
		title = "Select a display configuration"
	}

	opts := make([]Option[int], len(profiles))
	for i, p := range profiles {
		opts[i] = Option[int]{
			Title: fmt.Sprintf("%s [%s]", p.Description, p.Status),
			Value: i,
		}
	}

	return Choose(ChooseOptions[int]{
		Title:       title,
		Description: "Enter activates, esc quits without changes",
		Options:     opts,
	})
}
