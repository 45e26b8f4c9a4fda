// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active environment",
	Long: `Show the environment this process inherited from its parent, if
any: VIRTUAL_ENV for virtualenv-style activations, CONDA_DEFAULT_ENV and
CONDA_PREFIX for conda, with PATH position breaking ties when both are set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newManager()
		st, ok := m.Current()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("No environment is active."))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
			NameStyle.Render(st.Name),
			SubtitleStyle.Render("("+st.Source.String()+")"),
			SubtitleStyle.Render(st.Path),
		)
		return nil
	},
}
