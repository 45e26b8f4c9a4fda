// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"venvctl/internal/config"
	"venvctl/internal/issue"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage venvctl configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Render(appConfig)
		if err != nil {
			return issue.WrapWithOperation(err, "render configuration")
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.WriteDefault()
		if err != nil {
			return issue.NewErrorContext().
				WithOperation("initialize configuration").
				WithResource(path).
				Wrap(err).
				Build()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", SuccessStyle.Render("Wrote"), path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.FilePath()
		if err != nil {
			return issue.WrapWithOperation(err, "resolve config path")
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
