// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

// ExitError carries a child process exit code through the cobra/fang error
// path so Execute can propagate it as the venvctl exit status.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
