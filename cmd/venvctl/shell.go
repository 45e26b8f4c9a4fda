// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"venvctl/internal/issue"
)

var shellEnvQuery string

var shellCmd = &cobra.Command{
	Use:   "shell [--env <query>]",
	Short: "Spawn a subshell inside the activated environment",
	Long: `Start $SHELL as a child process inheriting the activated
environment variables. Exit the subshell to return to the unmodified parent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newManager()
		if shellEnvQuery != "" {
			if _, ok := m.ActivateByName(shellEnvQuery); !ok {
				return issue.NewErrorContext().
					WithOperation("activate environment").
					WithResource(shellEnvQuery).
					WithSuggestion("Run 'venvctl list' to see what was discovered").
					Build()
			}
		}

		shell := os.Getenv("SHELL")
		if shell == "" {
			shell = "/bin/sh"
		}

		if st, ok := m.Current(); ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n",
				SubtitleStyle.Render("Entering subshell for"),
				NameStyle.Render(st.Name),
			)
		}

		child := exec.CommandContext(cmd.Context(), shell)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		child.Env = os.Environ()

		if err := child.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return &ExitError{Code: exitErr.ExitCode()}
			}
			return issue.WrapWithOperation(err, "start subshell")
		}
		return nil
	},
}

func init() {
	shellCmd.Flags().StringVar(&shellEnvQuery, "env", "", "environment to activate before spawning the shell")
}
