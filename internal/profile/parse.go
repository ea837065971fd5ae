// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"regexp"
	"strings"
)

// headerPattern matches a profile header line. The description capture stops
// at the first comma, so a description containing a comma is truncated there;
// this matches the format RenderSection writes and keeps files produced by
// earlier versions of the tool round-tripping cleanly.
var headerPattern = regexp.MustCompile(`# Description = ([^,]+), Status = ([^,]+)`)

// ParseSection converts the lines strictly between the section markers into
// an ordered list of profiles. It is a single forward pass:
//
//   - a line matching the header pattern finalizes the profile being
//     accumulated (if any) and starts a new one;
//   - any other line, while a profile is being accumulated, has its leading
//     '#' run and leading whitespace stripped and is appended to the
//     profile's outputs when non-empty (lines that strip to nothing are
//     formatting, not data);
//   - lines before the first header are ignored.
//
// A '#' line that fails the header pattern is treated as an ordinary output
// line of the profile being accumulated.
func ParseSection(lines []string) []Profile {
	var profiles []Profile
	var current *Profile

	for _, line := range lines {
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			if current != nil {
				profiles = append(profiles, *current)
			}
			current = &Profile{
				Description: strings.TrimSpace(m[1]),
				Status:      ParseStatus(m[2]),
			}
			continue
		}
		if current == nil {
			continue
		}
		if text := stripComment(line); text != "" {
			current.Outputs = append(current.Outputs, text)
		}
	}

	if current != nil {
		profiles = append(profiles, *current)
	}
	return profiles
}

// stripComment removes the leading '#' run and the whitespace that follows
// it. Trailing whitespace is preserved so output directives survive verbatim.
func stripComment(line string) string {
	text := strings.TrimLeft(line, "#")
	return strings.TrimLeft(text, " \t")
}
