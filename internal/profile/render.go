// SPDX-License-Identifier: MPL-2.0

package profile

import "fmt"

// RenderSection regenerates the section lines from the given profiles. Each
// profile contributes exactly one header line with its status canonicalized,
// followed by its outputs: bare when the profile is enabled, prefixed with
// "# " when disabled. The disabled prefix is a normalization, not a
// preservation of whatever commenting the input carried. No blank separator
// lines are emitted, so repeated toggles never introduce whitespace drift.
//
// Re-parsing the result with ParseSection yields profiles semantically equal
// to the input.
func RenderSection(profiles []Profile) []string {
	n := len(profiles)
	for _, p := range profiles {
		n += len(p.Outputs)
	}

	lines := make([]string, 0, n)
	for _, p := range profiles {
		status := StatusDisabled
		if p.Status.Enabled() {
			status = StatusEnabled
		}
		lines = append(lines, fmt.Sprintf("# Description = %s, Status = %s", p.Description, status))
		for _, out := range p.Outputs {
			if status == StatusEnabled {
				lines = append(lines, out)
			} else {
				lines = append(lines, "# "+out)
			}
		}
	}
	return lines
}
