// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"swayout/internal/profile"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the display configurations in the sway config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList()
	},
}

func runList() error {
	sw, err := buildSwitcher(currentConfig())
	if err != nil {
		return err
	}

	profiles, err := sw.Profiles()
	if err != nil {
		renderIssueFor(err)
		return err
	}

	fmt.Println(TitleStyle.Render("Available display configurations"))
	fmt.Println()
	for i, p := range profiles {
		status := SubtitleStyle.Render(fmt.Sprintf("[%s]", p.Status))
		if p.Status.Enabled() {
			status = SuccessStyle.Render(fmt.Sprintf("[%s]", p.Status))
		}
		fmt.Printf("%d. %s %s\n", i+1, p.Description, status)
	}

	if profile.ActiveIndex(profiles) < 0 {
		fmt.Println()
		fmt.Println(WarningStyle.Render("No configuration is currently enabled."))
	}
	return nil
}
