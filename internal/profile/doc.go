// SPDX-License-Identifier: MPL-2.0

// Package profile implements the display-section dialect of the sway config
// file: locating the marker-delimited section, parsing its blocks into
// profiles, toggling which profile is enabled, and regenerating the section
// lines. The package is pure; file I/O, prompting, and reloading live in
// their own packages.
package profile
