// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"

	"swayout/internal/profile"
)

func TestSwayConfigPathIsValid(t *testing.T) {
	tests := []struct {
		path  SwayConfigPath
		valid bool
	}{
		{"~/.config/sway/config", true},
		{"/etc/sway/config", true},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		valid, errs := tt.path.IsValid()
		if valid != tt.valid {
			t.Errorf("SwayConfigPath(%q).IsValid() = %v, want %v", tt.path, valid, tt.valid)
		}
		if !tt.valid {
			if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidSwayConfigPath) {
				t.Errorf("expected ErrInvalidSwayConfigPath for %q, got %v", tt.path, errs)
			}
		}
	}
}

func TestMarkersConfigIsValid(t *testing.T) {
	if valid, _ := (MarkersConfig{Start: "a", End: "b"}).IsValid(); !valid {
		t.Error("expected markers with both fields to be valid")
	}

	valid, errs := (MarkersConfig{Start: "a"}).IsValid()
	if valid {
		t.Error("expected markers with empty end to be invalid")
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidMarkers) {
		t.Errorf("expected wrapped ErrInvalidMarkers, got %v", errs)
	}
}

func TestMarkersConfigProfile(t *testing.T) {
	m := MarkersConfig{Start: "S", End: "E"}
	got := m.Profile()
	if got != (profile.Markers{Start: "S", End: "E"}) {
		t.Errorf("unexpected conversion %+v", got)
	}
}

func TestConfigIsValidCollectsFieldErrors(t *testing.T) {
	cfg := Config{
		SwayConfigPath: " ",
		ReloadCommand:  []string{""},
		Markers:        MarkersConfig{},
	}

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("expected invalid config")
	}
	if len(errs) != 1 {
		t.Fatalf("expected a single wrapping error, got %d", len(errs))
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", errs[0])
	}

	var ice *InvalidConfigError
	if !errors.As(errs[0], &ice) {
		t.Fatalf("expected InvalidConfigError, got %T", errs[0])
	}
	// Path, markers, and reload command are each invalid.
	if len(ice.FieldErrors) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(ice.FieldErrors), ice.FieldErrors)
	}
}

func TestEmptyReloadCommandIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReloadCommand = nil
	if valid, errs := cfg.IsValid(); !valid {
		t.Errorf("empty reload command must be valid (means default), got %v", errs)
	}
}
