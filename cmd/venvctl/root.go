// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"venvctl/internal/config"
	"venvctl/internal/issue"
	"venvctl/internal/project"
	"venvctl/internal/venv"
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
	// cfgFile allows specifying a custom config file
	cfgFile string

	// appConfig is the effective configuration, loaded by initRootConfig.
	appConfig *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "venvctl",
		Short: "Discover and activate Python environments",
		Long: TitleStyle.Render("venvctl") + SubtitleStyle.Render(" - Discover and activate Python environments") + `

venvctl finds virtualenv, conda, pyenv and project-local Python
environments, selects one by name (exactly, by substring, or fuzzily)
and activates it for processes it spawns.

` + SubtitleStyle.Render("Quick Start:") + `
  venvctl list              Show every discoverable environment
  venvctl use myenv         Activate the closest match for "myenv"
  venvctl pick              Choose interactively
  venvctl auto              Activate what the current project asks for
  venvctl run -- pytest     Run a command inside the activated env`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/venvctl/config.toml)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
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

// initRootConfig reads the config file before any command runs.
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

	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// newManager builds the process-wide environment manager: it captures PATH,
// resolves any inherited environment, and wires the project-root capability.
func newManager() *venv.Manager {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "venvctl",
		Level:  level,
	})

	return venv.New(appConfig,
		venv.WithLogger(logger),
		venv.WithProjectRoot(func() (string, error) {
			return project.Find("", appConfig.ProjectMarkers)
		}),
	)
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their Format method; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
