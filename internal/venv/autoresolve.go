// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"path/filepath"

	"venvctl/internal/discovery"
	"venvctl/internal/issue"
	"venvctl/internal/match"
)

// AutoResolve activates the environment a project asks for without user
// input. It resolves the project root, prefers the name stored in the
// project's .venv file, and falls back to the first project-local
// environment. Every absence along the way is a silent no-op; only a
// missing project-root capability is reported, since without it no
// project-local resolution is possible.
func (m *Manager) AutoResolve() error {
	if m.projectRoot == nil {
		return issue.NewErrorContext().
			WithOperation("auto-resolve project environment").
			WithSuggestion("Construct the manager with a project-root capability (venv.WithProjectRoot)").
			Build()
	}

	root, err := m.projectRoot()
	if err != nil {
		return issue.WrapWithOperation(err, "detect project root")
	}
	if root == "" {
		m.logger.Debug("no project root; nothing to auto-resolve")
		return nil
	}

	if name, ok := discovery.StoredName(root); ok {
		if d, ok := match.Best(m.Candidates(), name); ok {
			m.Activate(d)
		} else {
			m.logger.Debug("stored environment name has no candidate", "name", name)
		}
		return nil
	}

	if locals := discovery.LocalEnvs(root, filepath.Base(root)); len(locals) > 0 {
		m.Activate(locals[0])
	}
	return nil
}
