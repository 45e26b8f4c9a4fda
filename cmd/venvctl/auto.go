// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Activate the environment the current project asks for",
	Long: `Resolve the current project's environment without prompting:
find the project root, prefer the name stored in its .venv file, and fall
back to the first environment directory found inside the project. When
nothing resolves, nothing changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newManager()
		if err := m.AutoResolve(); err != nil {
			return err
		}

		if st, ok := m.Current(); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				SuccessStyle.Render("Active"),
				NameStyle.Render(st.Name),
				SubtitleStyle.Render("("+st.Source.String()+") "+st.Path),
			)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("Nothing to activate for this project."))
		}
		return nil
	},
}
