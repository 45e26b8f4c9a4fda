// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"venvctl/internal/issue"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every discoverable environment",
	Long: `List all Python environments venvctl can see, in discovery order:
project-local, working directory, the configured venvs root, conda, pyenv.
Duplicate paths are collapsed into their first occurrence.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newManager()
		candidates := m.Candidates()
		if len(candidates) == 0 {
			return printGuidance(cmd, issue.NoEnvironmentsFoundId)
		}

		active, hasActive := m.Current()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, TitleStyle.Render("Environments"))
		for _, c := range candidates {
			marker := "  "
			if hasActive && c.Path == active.Path {
				marker = SuccessStyle.Render("* ")
			}
			fmt.Fprintf(out, "%s%s %s %s\n",
				marker,
				NameStyle.Render(c.Name),
				SubtitleStyle.Render("("+c.Source.String()+")"),
				SubtitleStyle.Render(c.Path),
			)
		}
		return nil
	},
}

// printGuidance renders a guidance document to the command's stdout,
// falling back to the raw markdown if rendering fails.
func printGuidance(cmd *cobra.Command, id issue.Id) error {
	g := issue.Lookup(id)
	if g == nil {
		return nil
	}
	rendered, err := g.Render()
	if err != nil {
		rendered = g.Markdown()
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}
