// SPDX-License-Identifier: MPL-2.0

// Package sway talks to the running sway instance. Today that is limited to
// asking it to reload its configuration after the config file has been
// rewritten.
package sway
