// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"slices"
	"testing"
)

func TestRenderSection(t *testing.T) {
	profiles := []Profile{
		{
			Description: "Desk setup",
			Status:      StatusEnabled,
			Outputs:     []string{"output DP-1 res 2560x1440", "output DP-2 res 1920x1080"},
		},
		{
			Description: "Laptop only",
			Status:      StatusDisabled,
			Outputs:     []string{"output eDP-1 res 1920x1080"},
		},
	}

	got := RenderSection(profiles)
	want := []string{
		"# Description = Desk setup, Status = Enabled",
		"output DP-1 res 2560x1440",
		"output DP-2 res 1920x1080",
		"# Description = Laptop only, Status = Disabled",
		"# output eDP-1 res 1920x1080",
	}
	if !slices.Equal(got, want) {
		t.Errorf("RenderSection mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderSectionCanonicalizesStatus(t *testing.T) {
	profiles := []Profile{
		{Description: "A", Status: "enabled", Outputs: []string{"out a"}},
		{Description: "B", Status: "anything else", Outputs: []string{"out b"}},
	}

	got := RenderSection(profiles)
	want := []string{
		"# Description = A, Status = Enabled",
		"out a",
		"# Description = B, Status = Disabled",
		"# out b",
	}
	if !slices.Equal(got, want) {
		t.Errorf("RenderSection mismatch:\ngot  %q\nwant %q", got, want)
	}
}

// A toggle on the spec's two-record example: enabling the second profile must
// disable the first and normalize the comment prefixes in both directions.
func TestToggleNormalizesComments(t *testing.T) {
	section := []string{
		"# Description = A, Status = Enabled",
		"output X res 1920x1080",
		"# Description = B, Status = Disabled",
		"##output Y res 1280x720",
	}

	profiles := ParseSection(section)
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}

	Activate(profiles, 1)

	got := RenderSection(profiles)
	want := []string{
		"# Description = A, Status = Disabled",
		"# output X res 1920x1080",
		"# Description = B, Status = Enabled",
		"output Y res 1280x720",
	}
	if !slices.Equal(got, want) {
		t.Errorf("toggle mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestActivateSingleEnabledInvariant(t *testing.T) {
	profiles := []Profile{
		{Description: "A", Status: StatusEnabled},
		{Description: "B", Status: StatusEnabled},
		{Description: "C", Status: StatusDisabled},
	}

	for target := range profiles {
		Activate(profiles, target)

		enabled := 0
		for i, p := range profiles {
			if p.Status.Enabled() {
				enabled++
				if i != target {
					t.Errorf("profile %d enabled, expected only %d", i, target)
				}
			}
		}
		if enabled != 1 {
			t.Errorf("expected exactly one enabled profile, got %d", enabled)
		}
	}
}

func TestActivateOutOfRangeDisablesAll(t *testing.T) {
	profiles := []Profile{
		{Description: "A", Status: StatusEnabled},
		{Description: "B", Status: StatusDisabled},
	}

	Activate(profiles, -1)
	if ActiveIndex(profiles) != -1 {
		t.Error("expected no enabled profile after activating index -1")
	}
}

func TestActiveIndex(t *testing.T) {
	profiles := []Profile{
		{Description: "A", Status: StatusDisabled},
		{Description: "B", Status: StatusEnabled},
		{Description: "C", Status: StatusDisabled},
	}
	if got := ActiveIndex(profiles); got != 1 {
		t.Errorf("expected active index 1, got %d", got)
	}

	Activate(profiles, 2)
	if got := ActiveIndex(profiles); got != 2 {
		t.Errorf("expected active index 2 after toggle, got %d", got)
	}

	if got := ActiveIndex(nil); got != -1 {
		t.Errorf("expected -1 for empty profiles, got %d", got)
	}
}

// Serializing and re-parsing must be stable under repeated toggles: the
// profiles that produced a section are semantically equal to the profiles
// parsed back from it.
func TestRoundTripIdempotence(t *testing.T) {
	tests := []struct {
		name     string
		profiles []Profile
	}{
		{
			name: "mixed statuses",
			profiles: []Profile{
				{Description: "Desk", Status: StatusEnabled, Outputs: []string{"output DP-1 res 2560x1440", "output DP-2 transform 90"}},
				{Description: "Laptop", Status: StatusDisabled, Outputs: []string{"output eDP-1 res 1920x1080"}},
				{Description: "TV", Status: StatusDisabled, Outputs: []string{"output HDMI-A-1 res 3840x2160", "output HDMI-A-1 scale 2"}},
			},
		},
		{
			name: "no outputs",
			profiles: []Profile{
				{Description: "Empty", Status: StatusDisabled},
				{Description: "Also empty", Status: StatusEnabled},
			},
		},
		{
			name: "all disabled",
			profiles: []Profile{
				{Description: "A", Status: StatusDisabled, Outputs: []string{"output X"}},
				{Description: "B", Status: StatusDisabled, Outputs: []string{"output Y"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := RenderSection(tt.profiles)
			reparsed := ParseSection(rendered)
			if len(reparsed) != len(tt.profiles) {
				t.Fatalf("round trip changed profile count: %d -> %d", len(tt.profiles), len(reparsed))
			}
			for i := range tt.profiles {
				if !tt.profiles[i].Equal(reparsed[i]) {
					t.Errorf("profile %d not preserved:\nbefore %+v\nafter  %+v", i, tt.profiles[i], reparsed[i])
				}
			}

			// A second render of the reparsed profiles must be byte-identical.
			if again := RenderSection(reparsed); !slices.Equal(again, rendered) {
				t.Errorf("second render differs:\nfirst  %q\nsecond %q", rendered, again)
			}
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	if !ParseStatus(" Enabled ").Enabled() {
		t.Error("expected padded Enabled to parse as enabled")
	}
	if ParseStatus("off").Enabled() {
		t.Error("expected unrecognized status to parse as disabled")
	}
	if ok, _ := StatusEnabled.IsValid(); !ok {
		t.Error("expected StatusEnabled to be valid")
	}
	if ok, errs := Status("on").IsValid(); ok || len(errs) != 1 {
		t.Errorf("expected invalid status error, got ok=%v errs=%v", ok, errs)
	}
}
