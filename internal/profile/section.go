// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"fmt"
	"strings"
)

const (
	// DefaultStartMarker is the substring that opens the display section.
	DefaultStartMarker = "Display Start"
	// DefaultEndMarker is the substring that closes the display section.
	DefaultEndMarker = "Display End"
)

type (
	// Markers are the sentinel substrings delimiting the display section.
	// They are matched by containment, not exact equality, so the markers can
	// live inside ordinary comment lines.
	Markers struct {
		Start string
		End   string
	}

	// MarkerNotFoundError is returned when a marker substring does not occur
	// in the file. It wraps ErrMarkerNotFound for errors.Is() compatibility.
	MarkerNotFoundError struct {
		Marker string
	}
)

// DefaultMarkers returns the standard section markers.
func DefaultMarkers() Markers {
	return Markers{Start: DefaultStartMarker, End: DefaultEndMarker}
}

// IsValid returns whether both markers are non-empty.
func (m Markers) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(m.Start) == "" {
		errs = append(errs, fmt.Errorf("%w: empty start marker", ErrMarkerNotFound))
	}
	if strings.TrimSpace(m.End) == "" {
		errs = append(errs, fmt.Errorf("%w: empty end marker", ErrMarkerNotFound))
	}
	return len(errs) == 0, errs
}

// Error implements the error interface for MarkerNotFoundError.
func (e *MarkerNotFoundError) Error() string {
	return fmt.Sprintf("marker %q not found in the config file", e.Marker)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *MarkerNotFoundError) Unwrap() error { return ErrMarkerNotFound }

// LocateSection finds the display section inside the full line sequence and
// returns the indices of the start and end marker lines. When a marker
// substring occurs on several lines, the first occurrence in document order
// wins. An end marker at or before the start marker is rejected with
// ErrMarkersInverted.
func LocateSection(lines []string, m Markers) (start, end int, err error) {
	start = indexContaining(lines, m.Start)
	if start < 0 {
		return 0, 0, &MarkerNotFoundError{Marker: m.Start}
	}
	end = indexContaining(lines, m.End)
	if end < 0 {
		return 0, 0, &MarkerNotFoundError{Marker: m.End}
	}
	if end <= start {
		return 0, 0, fmt.Errorf("%w: start at line %d, end at line %d", ErrMarkersInverted, start+1, end+1)
	}
	return start, end, nil
}

// Splice replaces the lines strictly between the markers with the given
// section. The marker lines themselves, and everything outside them, are
// copied through unchanged. A fresh slice is returned; the input is not
// mutated.
func Splice(lines []string, start, end int, section []string) []string {
	out := make([]string, 0, start+1+len(section)+len(lines)-end)
	out = append(out, lines[:start+1]...)
	out = append(out, section...)
	out = append(out, lines[end:]...)
	return out
}

func indexContaining(lines []string, substr string) int {
	for i, line := range lines {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}
