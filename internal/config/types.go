// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"swayout/internal/profile"
)

var (
	// ErrInvalidSwayConfigPath is the sentinel error wrapped by InvalidSwayConfigPathError.
	ErrInvalidSwayConfigPath = errors.New("invalid sway config path")
	// ErrInvalidMarkers is the sentinel error wrapped by InvalidMarkersError.
	ErrInvalidMarkers = errors.New("invalid section markers")
	// ErrInvalidReloadCommand is returned when the reload command is present but has no argv[0].
	ErrInvalidReloadCommand = errors.New("invalid reload command")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// SwayConfigPath is the filesystem path of the sway config file to edit.
	// A "~/" prefix is expanded to the user's home directory at use time.
	// A valid path must be non-empty and not whitespace-only.
	SwayConfigPath string

	// InvalidSwayConfigPathError is returned when a SwayConfigPath value is
	// empty or whitespace-only. It wraps ErrInvalidSwayConfigPath for errors.Is().
	InvalidSwayConfigPathError struct {
		Value SwayConfigPath
	}

	// MarkersConfig holds the section marker substrings.
	MarkersConfig struct {
		// Start is the substring identifying the section start line.
		Start string `json:"start" mapstructure:"start"`
		// End is the substring identifying the section end line.
		End string `json:"end" mapstructure:"end"`
	}

	// InvalidMarkersError is returned when a marker is whitespace-only.
	// It wraps ErrInvalidMarkers for errors.Is() compatibility.
	InvalidMarkersError struct {
		FieldErrors []error
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Plain forces the numbered stdin prompt instead of the TUI selector.
		Plain bool `json:"plain" mapstructure:"plain"`
		// Verbose enables verbose output.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// Config holds the application configuration.
	Config struct {
		// SwayConfigPath is the sway config file to edit.
		SwayConfigPath SwayConfigPath `json:"sway_config_path" mapstructure:"sway_config_path"`
		// ReloadCommand is the argv run after a successful write.
		ReloadCommand []string `json:"reload_command" mapstructure:"reload_command"`
		// Markers delimit the display section in the sway config.
		Markers MarkersConfig `json:"markers" mapstructure:"markers"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SwayConfigPath: "~/.config/sway/config",
		ReloadCommand:  []string{"swaymsg", "reload"},
		Markers: MarkersConfig{
			Start: profile.DefaultStartMarker,
			End:   profile.DefaultEndMarker,
		},
		UI: UIConfig{
			Plain:   false,
			Verbose: false,
		},
	}
}

// String returns the string representation of the SwayConfigPath.
func (p SwayConfigPath) String() string { return string(p) }

// IsValid returns whether the SwayConfigPath is valid.
// A valid path must be non-empty and not whitespace-only.
func (p SwayConfigPath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidSwayConfigPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSwayConfigPathError.
func (e *InvalidSwayConfigPathError) Error() string {
	return fmt.Sprintf("invalid sway config path %q: must be non-empty", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidSwayConfigPathError) Unwrap() error { return ErrInvalidSwayConfigPath }

// Profile converts the marker settings to the profile package's Markers.
func (m MarkersConfig) Profile() profile.Markers {
	return profile.Markers{Start: m.Start, End: m.End}
}

// IsValid returns whether both markers are non-empty.
func (m MarkersConfig) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(m.Start) == "" {
		errs = append(errs, fmt.Errorf("%w: empty start marker", ErrInvalidMarkers))
	}
	if strings.TrimSpace(m.End) == "" {
		errs = append(errs, fmt.Errorf("%w: empty end marker", ErrInvalidMarkers))
	}
	if len(errs) > 0 {
		return false, []error{&InvalidMarkersError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidMarkersError.
func (e *InvalidMarkersError) Error() string {
	return fmt.Sprintf("invalid section markers: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidMarkers for errors.Is() compatibility.
func (e *InvalidMarkersError) Unwrap() error { return ErrInvalidMarkers }

// IsValid returns whether the Config has valid fields.
// It delegates to SwayConfigPath.IsValid() and Markers.IsValid(), and checks
// that a non-empty reload command has a non-blank argv[0].
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.SwayConfigPath.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Markers.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(c.ReloadCommand) > 0 && strings.TrimSpace(c.ReloadCommand[0]) == "" {
		errs = append(errs, fmt.Errorf("%w: empty command name", ErrInvalidReloadCommand))
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
