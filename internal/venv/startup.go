// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"os"
	"path/filepath"

	"venvctl/internal/discovery"
)

// resolveStartup inspects the variables inherited from the parent process
// and seeds the active slot. Runs once, from New, before any activation.
//
// When both a virtualenv and a conda environment appear active, whichever
// environment's directory occurs earlier in the captured PATH wins; if only
// one is findable in PATH it wins; if neither is, the virtualenv does.
func (m *Manager) resolveStartup() {
	venvPath := os.Getenv(VirtualEnvVar)
	condaName := os.Getenv(CondaDefaultEnvVar)
	condaPrefix := os.Getenv(CondaPrefixVar)

	venvActive := venvPath != ""
	condaActive := condaName != ""

	switch {
	case !venvActive && !condaActive:
		return
	case condaActive && (!venvActive || m.originalPath.HasHigherPriority(condaPrefix, venvPath)):
		m.active = &State{Name: condaName, Path: condaPrefix, Source: discovery.SourceConda}
	default:
		m.active = &State{Name: filepath.Base(venvPath), Path: venvPath, Source: discovery.SourceVenv}
	}
}
