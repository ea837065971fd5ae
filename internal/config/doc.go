// SPDX-License-Identifier: MPL-2.0

// Package config loads and persists the swayout application settings: the
// path of the sway config to edit, the section markers, the reload command,
// and UI preferences. Settings live in a CUE file validated against an
// embedded schema and merged through Viper, so defaults, file values, and
// overrides compose predictably.
package config
