// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"swayout/internal/config"
	"swayout/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// plain forces the numbered stdin prompt instead of the TUI selector
	plain bool
	// noReload skips the sway reload after a successful write
	noReload bool
	// cfgFile allows specifying a custom swayout config file
	cfgFile string
	// swayConfigFlag overrides the sway config file to edit
	swayConfigFlag string

	// appConfig is the loaded swayout configuration, set by initRootConfig.
	appConfig *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "swayout",
		Short: "Switch the active sway display configuration",
		Long: TitleStyle.Render("swayout") + SubtitleStyle.Render(" - switch the active sway display configuration") + `

swayout edits the marker-delimited display section of your sway config,
enables the display configuration you pick, disables all others, and asks
sway to reload. Everything outside the markers is left byte-for-byte intact.

` + SubtitleStyle.Render("Config file layout:") + `
  ### Display Start ###
  # Description = Desk setup, Status = Enabled
  output DP-1 res 2560x1440 pos 0 0
  # Description = Laptop only, Status = Disabled
  # output eDP-1 res 1920x1080
  ### Display End ###

` + SubtitleStyle.Render("Examples:") + `
  swayout               Pick a configuration interactively
  swayout list          List available configurations
  swayout set 2         Activate configuration 2 without prompting
  swayout config show   Show current swayout settings`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(cmd.Context())
		},
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "swayout config file (default is $HOME/.config/swayout/config.cue)")
	rootCmd.PersistentFlags().StringVar(&swayConfigFlag, "sway-config", "", "sway config file to edit (default from swayout config)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "use the numbered stdin prompt instead of the TUI selector")
	rootCmd.PersistentFlags().BoolVar(&noReload, "no-reload", false, "do not reload sway after updating the config")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig installs the logger and reads the config file if present.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appConfig = cfg

	// Apply settings from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if !plain {
		plain = cfg.UI.Plain
	}

	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	slog.SetDefault(slog.New(log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})))
}

// currentConfig returns the loaded configuration, falling back to defaults
// when the subcommand runs before initialization (as in tests).
func currentConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
