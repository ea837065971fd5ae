// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for swayout.
//
// This package implements the Cobra command hierarchy: the root command runs
// the interactive display switch, with subcommands for listing profiles,
// non-interactive activation, and configuration management.
package cmd
