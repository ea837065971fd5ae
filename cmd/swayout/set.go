// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <number>",
	Short: "Activate a display configuration without prompting",
	Long: `Activate a display configuration without prompting.

The number is the 1-based position shown by 'swayout list'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return &ExitError{Code: 2, Err: fmt.Errorf("invalid selection %q: expected a number", args[0])}
		}

		sw, err := buildSwitcher(currentConfig())
		if err != nil {
			return err
		}
		if err := sw.SetActive(cmd.Context(), n-1); err != nil {
			renderIssueFor(err)
			return err
		}
		return nil
	},
}
