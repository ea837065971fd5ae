// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"errors"
	"slices"
	"testing"
)

func TestLocateSection(t *testing.T) {
	lines := []string{
		"set $mod Mod4",
		"### Display Start ###",
		"# Description = Desk, Status = Enabled",
		"output DP-1 res 2560x1440",
		"### Display End ###",
		"bar { position top }",
	}

	start, end, err := LocateSection(lines, DefaultMarkers())
	if err != nil {
		t.Fatalf("LocateSection returned error: %v", err)
	}
	if start != 1 {
		t.Errorf("expected start index 1, got %d", start)
	}
	if end != 4 {
		t.Errorf("expected end index 4, got %d", end)
	}
}

func TestLocateSectionFirstOccurrenceWins(t *testing.T) {
	lines := []string{
		"# Display Start",
		"# Display Start (again)",
		"# Display End",
		"# Display End (again)",
	}

	start, end, err := LocateSection(lines, DefaultMarkers())
	if err != nil {
		t.Fatalf("LocateSection returned error: %v", err)
	}
	if start != 0 || end != 2 {
		t.Errorf("expected first occurrences (0, 2), got (%d, %d)", start, end)
	}
}

func TestLocateSectionMissingMarkers(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		missing string
	}{
		{
			name:    "missing start",
			lines:   []string{"output DP-1", "# Display End"},
			missing: DefaultStartMarker,
		},
		{
			name:    "missing end",
			lines:   []string{"# Display Start", "output DP-1"},
			missing: DefaultEndMarker,
		},
		{
			name:    "empty file",
			lines:   nil,
			missing: DefaultStartMarker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LocateSection(tt.lines, DefaultMarkers())
			if !errors.Is(err, ErrMarkerNotFound) {
				t.Fatalf("expected ErrMarkerNotFound, got %v", err)
			}
			var mnf *MarkerNotFoundError
			if !errors.As(err, &mnf) {
				t.Fatalf("expected MarkerNotFoundError, got %T", err)
			}
			if mnf.Marker != tt.missing {
				t.Errorf("expected missing marker %q, got %q", tt.missing, mnf.Marker)
			}
		})
	}
}

func TestLocateSectionInvertedMarkers(t *testing.T) {
	lines := []string{
		"# Display End",
		"output DP-1",
		"# Display Start",
	}

	_, _, err := LocateSection(lines, DefaultMarkers())
	if !errors.Is(err, ErrMarkersInverted) {
		t.Fatalf("expected ErrMarkersInverted, got %v", err)
	}
}

func TestMarkersIsValid(t *testing.T) {
	if ok, _ := DefaultMarkers().IsValid(); !ok {
		t.Error("expected default markers to be valid")
	}
	if ok, errs := (Markers{Start: " ", End: "Display End"}).IsValid(); ok || len(errs) != 1 {
		t.Errorf("expected one validation error for blank start marker, got ok=%v errs=%v", ok, errs)
	}
	if ok, errs := (Markers{}).IsValid(); ok || len(errs) != 2 {
		t.Errorf("expected two validation errors for empty markers, got ok=%v errs=%v", ok, errs)
	}
}

func TestSplice(t *testing.T) {
	lines := []string{
		"before",
		"# Display Start",
		"old section line 1",
		"old section line 2",
		"# Display End",
		"after",
	}

	got := Splice(lines, 1, 4, []string{"new A", "new B", "new C"})

	want := []string{
		"before",
		"# Display Start",
		"new A",
		"new B",
		"new C",
		"# Display End",
		"after",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Splice mismatch:\ngot  %q\nwant %q", got, want)
	}

	// The input slice must not be mutated.
	if lines[2] != "old section line 1" {
		t.Error("Splice mutated its input")
	}
}

func TestSpliceEmptySection(t *testing.T) {
	lines := []string{"# Display Start", "x", "# Display End"}
	got := Splice(lines, 0, 2, nil)
	want := []string{"# Display Start", "# Display End"}
	if !slices.Equal(got, want) {
		t.Errorf("Splice mismatch: got %q, want %q", got, want)
	}
}
