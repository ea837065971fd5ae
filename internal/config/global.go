// SPDX-License-Identifier: MPL-2.0

package config

// Package-level overrides, set before Load is called. The file path override
// backs the --config flag; the directory override lets tests point Load at a
// fixture directory.
var (
	configFilePathOverride string
	configDirOverride      string
)

// SetConfigFilePathOverride makes Load read exactly the given file,
// bypassing the platform config directory lookup. An empty value clears the
// override.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// SetConfigDirOverride makes ConfigDir return the given directory.
// An empty value clears the override.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
