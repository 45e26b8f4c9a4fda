// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"venvctl/internal/issue"
	"venvctl/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose an environment interactively",
	Long: `Present every discoverable environment in a filterable list and
activate the selection. Cancelling the picker (esc or ctrl+c) leaves the
process environment untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newManager()
		candidates := m.Candidates()
		if len(candidates) == 0 {
			return printGuidance(cmd, issue.NoEnvironmentsFoundId)
		}

		choice, err := tui.Pick(tui.PickerOptions{
			Title: "Select a Python environment",
			Items: candidates,
		})
		if err != nil {
			return issue.WrapWithOperation(err, "run environment picker")
		}
		if choice == nil {
			// Cancellation is a silent no-op.
			return nil
		}

		st, ok := m.Activate(*choice)
		if !ok {
			return issue.NewErrorContext().
				WithOperation("activate environment").
				WithResource(choice.Name).
				Build()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
			SuccessStyle.Render("Activated"),
			NameStyle.Render(st.Name),
			SubtitleStyle.Render("("+st.Source.String()+") "+st.Path),
		)
		return nil
	},
}
