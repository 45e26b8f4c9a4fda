// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"venvctl/internal/venv"
)

// exportedVars are the variables activation owns, in a stable output order.
var exportedVars = []string{
	"PATH",
	venv.VirtualEnvVar,
	venv.CondaPrefixVar,
	venv.CondaDefaultEnvVar,
	venv.CondaPromptModifierVar,
	venv.CondaShlvlVar,
}

// emitExports writes POSIX export lines for the activation-owned variables,
// suitable for eval in the calling shell.
func emitExports(w io.Writer) {
	for _, key := range exportedVars {
		fmt.Fprintf(w, "export %s=%s\n", key, shellQuote(os.Getenv(key)))
	}
}

// shellQuote single-quotes s for POSIX shells, escaping embedded quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
