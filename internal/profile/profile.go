// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	// StatusEnabled marks the profile whose output directives are active.
	StatusEnabled Status = "Enabled"
	// StatusDisabled marks a profile whose output directives are commented out.
	StatusDisabled Status = "Disabled"
)

var (
	// ErrMarkerNotFound is the sentinel error wrapped by MarkerNotFoundError.
	ErrMarkerNotFound = errors.New("display section marker not found")
	// ErrMarkersInverted is returned when the end marker appears at or before
	// the start marker.
	ErrMarkersInverted = errors.New("display section end marker precedes start marker")
	// ErrInvalidStatus is the sentinel error wrapped by InvalidStatusError.
	ErrInvalidStatus = errors.New("invalid profile status")
)

type (
	// Status is the enablement state of a profile. Only the canonical values
	// StatusEnabled and StatusDisabled are ever produced by this package;
	// arbitrary casing is accepted on input via ParseStatus.
	Status string

	// InvalidStatusError is returned when a Status value is not one of the
	// canonical values. It wraps ErrInvalidStatus for errors.Is() compatibility.
	InvalidStatusError struct {
		Value Status
	}

	// Profile is one display configuration block from the section: a header
	// line carrying a description and status, followed by zero or more output
	// directives. Outputs are stored comment-stripped, in source order.
	Profile struct {
		// Description is the free-text label from the header line, trimmed.
		Description string
		// Status reports whether this profile's outputs are active.
		Status Status
		// Outputs holds the directive lines belonging to this profile,
		// with leading comment markers stripped.
		Outputs []string
	}
)

// ParseStatus canonicalizes a raw status field. Any casing of "enabled" maps
// to StatusEnabled; everything else is treated as StatusDisabled, matching
// the enablement check the switcher has always used.
func ParseStatus(raw string) Status {
	if strings.EqualFold(strings.TrimSpace(raw), string(StatusEnabled)) {
		return StatusEnabled
	}
	return StatusDisabled
}

// String returns the string representation of the Status.
func (s Status) String() string { return string(s) }

// Enabled reports whether the status means "active", ignoring case.
func (s Status) Enabled() bool {
	return strings.EqualFold(string(s), string(StatusEnabled))
}

// IsValid returns whether the Status is one of the canonical values,
// and a list of validation errors if it is not.
func (s Status) IsValid() (bool, []error) {
	switch s {
	case StatusEnabled, StatusDisabled:
		return true, nil
	default:
		return false, []error{&InvalidStatusError{Value: s}}
	}
}

// Error implements the error interface for InvalidStatusError.
func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid profile status %q (valid: Enabled, Disabled)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidStatusError) Unwrap() error { return ErrInvalidStatus }

// Equal reports whether two profiles are semantically equal: same
// description, same enablement, same outputs in the same order.
func (p Profile) Equal(o Profile) bool {
	return p.Description == o.Description &&
		p.Status.Enabled() == o.Status.Enabled() &&
		slices.Equal(p.Outputs, o.Outputs)
}

// Activate marks the profile at index i as enabled and every other profile
// as disabled. After a successful call exactly one profile is enabled.
// The slice is mutated in place; order is never changed.
func Activate(profiles []Profile, i int) {
	for j := range profiles {
		if j == i {
			profiles[j].Status = StatusEnabled
		} else {
			profiles[j].Status = StatusDisabled
		}
	}
}

// ActiveIndex returns the index of the first enabled profile, or -1 when no
// profile is enabled.
func ActiveIndex(profiles []Profile) int {
	for i := range profiles {
		if profiles[i].Status.Enabled() {
			return i
		}
	}
	return -1
}
