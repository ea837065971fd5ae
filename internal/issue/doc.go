// SPDX-License-Identifier: EPL-2.0

// Package issue provides user-facing error infrastructure: ActionableError
// carries operation/resource/suggestion context for one-line diagnostics, and
// the issue catalog holds rendered markdown cards for the fatal conditions a
// user can actually fix (missing markers, missing config, failed reload).
package issue
