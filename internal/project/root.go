// SPDX-License-Identifier: MPL-2.0

// Package project locates the root directory of the project containing a
// given path. It is the default implementation of the Manager's
// project-root capability; hosts embedding venvctl as a library can supply
// their own.
package project

import (
	"os"
	"path/filepath"
)

// DefaultMarkers are the entries whose presence marks a project root.
var DefaultMarkers = []string{
	".git",
	"pyproject.toml",
	"setup.py",
	"setup.cfg",
	"requirements.txt",
}

// Find walks up from start (the working directory when start is "") until a
// directory contains one of the markers. It returns "" when no ancestor
// qualifies; that is a normal outcome, not an error.
func Find(start string, markers []string) (string, error) {
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		start = cwd
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	if len(markers) == 0 {
		markers = DefaultMarkers
	}

	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
