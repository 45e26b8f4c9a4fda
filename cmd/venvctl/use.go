// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"venvctl/internal/issue"
)

var usePrint bool

var useCmd = &cobra.Command{
	Use:   "use <query>",
	Short: "Activate the environment best matching a query",
	Long: `Activate the environment whose name or path best matches the query.
An exact name always wins; otherwise the shortest name containing the query,
then a fuzzy match over names.

Activation only affects this process and its children. To carry it into the
calling shell, eval the --print output:

  eval "$(venvctl use myenv --print)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newManager()
		st, ok := m.ActivateByName(args[0])
		if !ok {
			if err := printGuidance(cmd, issue.NoMatchFoundId); err != nil {
				return err
			}
			return issue.NewErrorContext().
				WithOperation("activate environment").
				WithResource(args[0]).
				WithSuggestion("Run 'venvctl list' to see what was discovered").
				Build()
		}

		if usePrint {
			emitExports(cmd.OutOrStdout())
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
			SuccessStyle.Render("Activated"),
			NameStyle.Render(st.Name),
			SubtitleStyle.Render("("+st.Source.String()+") "+st.Path),
		)
		return nil
	},
}

func init() {
	useCmd.Flags().BoolVar(&usePrint, "print", false, "print POSIX export lines for eval instead of a summary")
}
