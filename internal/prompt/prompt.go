// SPDX-License-Identifier: MPL-2.0

// Package prompt implements the plain numbered selection menu used when the
// terminal cannot host the TUI selector (or when --plain is given).
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"swayout/internal/profile"
)

// NumberSelector reads a 1-based selection from In. Invalid or out-of-range
// input re-prompts; "q" (any case) or end of input cancels.
type NumberSelector struct {
	In  io.Reader
	Out io.Writer
}

// Choose prints the numbered menu and returns the selected 0-based index.
// ok is false when the user cancelled; in that case no error is returned and
// the caller must not mutate anything.
func (s *NumberSelector) Choose(profiles []profile.Profile) (index int, ok bool, err error) {
	fmt.Fprintln(s.Out, "\nAvailable display configurations:")
	for i, p := range profiles {
		fmt.Fprintf(s.Out, "%d. %s [%s]\n", i+1, p.Description, p.Status)
	}

	scanner := bufio.NewScanner(s.In)
	for {
		fmt.Fprintln(s.Out, "Enter the number of the configuration you want to activate, or 'q' to quit:")

		if !scanner.Scan() {
			// End of input counts as a cancel, not a failure.
			return 0, false, scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())

		if strings.EqualFold(input, "q") {
			return 0, false, nil
		}
		if n, convErr := strconv.Atoi(input); convErr == nil && n >= 1 && n <= len(profiles) {
			return n - 1, true, nil
		}

		fmt.Fprintf(s.Out, "Invalid selection. Please enter a number between 1 and %d, or 'q' to quit.\n", len(profiles))
	}
}
