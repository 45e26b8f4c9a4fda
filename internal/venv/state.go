// SPDX-License-Identifier: MPL-2.0

package venv

import "venvctl/internal/discovery"

// State records the most recent activation. It is a memory of the last
// transition this Manager applied, not of external reality: it can go stale
// if a third party rewrites the process environment directly.
type State struct {
	// Name is the display label of the active environment.
	Name string
	// Path is the environment directory.
	Path string
	// Source is the enumerator kind the environment came from.
	Source discovery.Source
}
