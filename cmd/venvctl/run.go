// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"venvctl/internal/issue"
	"venvctl/internal/runtime"
)

var runEnvQuery string

var runCmd = &cobra.Command{
	Use:   "run [--env <query>] -- <command>...",
	Short: "Run a command line inside the activated environment",
	Long: `Execute a command line with the embedded shell interpreter, under
the environment variables of the current activation. With --env the named
environment is activated first, so the command resolves its interpreter from
that environment's bin directory.

Example:
  venvctl run --env myenv -- python -m pytest`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newManager()
		if runEnvQuery != "" {
			if _, ok := m.ActivateByName(runEnvQuery); !ok {
				return issue.NewErrorContext().
					WithOperation("activate environment").
					WithResource(runEnvQuery).
					WithSuggestion("Run 'venvctl list' to see what was discovered").
					Build()
			}
		}

		code, err := runtime.Run(cmd.Context(), strings.Join(args, " "), runtime.StdIO())
		if err != nil {
			return issue.WrapWithOperation(err, "run command")
		}
		if code != 0 {
			return &ExitError{Code: code}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runEnvQuery, "env", "", "environment to activate before running")
}
