// SPDX-License-Identifier: MPL-2.0

// Package runtime executes a command line under the process environment
// using the mvdan/sh embedded shell interpreter. After an activation has
// rewritten PATH and VIRTUAL_ENV/CONDA_*, commands run here resolve
// binaries and see variables exactly as a spawned child would.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// IO bundles the standard streams for a run.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdIO returns the process's own streams.
func StdIO() IO {
	return IO{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run parses and executes line with the current process environment and
// working directory. It returns the command's exit code; a non-zero exit is
// not an error, only parse and interpreter setup failures are.
func Run(ctx context.Context, line string, stdio IO) (int, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(line), "cmdline")
	if err != nil {
		return 1, fmt.Errorf("failed to parse command line: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return 1, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	runner, err := interp.New(
		interp.Dir(cwd),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(stdio.Stdin, stdio.Stdout, stdio.Stderr),
	)
	if err != nil {
		return 1, fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return int(status), nil
		}
		return 1, err
	}
	return 0, nil
}
