// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"fmt"
	"os"
	"path/filepath"

	"venvctl/internal/discovery"
)

// Environment variables owned by activation.
const (
	VirtualEnvVar          = "VIRTUAL_ENV"
	CondaPrefixVar         = "CONDA_PREFIX"
	CondaDefaultEnvVar     = "CONDA_DEFAULT_ENV"
	CondaPromptModifierVar = "CONDA_PROMPT_MODIFIER"
	CondaShlvlVar          = "CONDA_SHLVL"
)

// envVar is one assignment of an activation variable set. Cleared variables
// carry an empty value rather than being unset, since some tools distinguish
// unset from empty.
type envVar struct {
	key   string
	value string
}

// Activate applies the variable set for the descriptor's kind, flips the
// active slot, then runs the post-activation hook. A descriptor without a
// path is a logged no-op. The three steps happen in that order, so a hook
// observing the slot always sees a fully-applied transition.
func (m *Manager) Activate(d discovery.Descriptor) (State, bool) {
	if d.Path == "" {
		m.logger.Warn("ignoring environment with empty path", "name", d.Name)
		return State{}, false
	}

	name := d.Name
	if name == "" {
		name = filepath.Base(d.Path)
	}

	for _, v := range m.variableSet(d, name) {
		if err := os.Setenv(v.key, v.value); err != nil {
			m.logger.Warn("failed to set variable", "key", v.key, "err", err)
		}
	}

	st := State{Name: name, Path: d.Path, Source: d.Source}
	m.active = &st
	m.runPostSet(st)
	return st, true
}

// variableSet produces the assignments for the descriptor's kind. PATH is
// always the environment's bin directory prepended to the captured baseline.
func (m *Manager) variableSet(d discovery.Descriptor, name string) []envVar {
	path := m.originalPath.Prepend(filepath.Join(d.Path, "bin"))

	switch d.Source.Kind() {
	case discovery.KindConda:
		return []envVar{
			{CondaPrefixVar, d.Path},
			{CondaDefaultEnvVar, name},
			{CondaPromptModifierVar, "(" + name + ")"},
			{CondaShlvlVar, "1"},
			{VirtualEnvVar, ""},
			{"PATH", path},
		}
	default:
		vars := []envVar{{VirtualEnvVar, d.Path}}
		// With conda installed, leaving a venv returns conda to its base
		// environment; otherwise the conda variables are cleared.
		if base := discovery.CondaBase(); base != "" {
			vars = append(vars,
				envVar{CondaPrefixVar, base},
				envVar{CondaDefaultEnvVar, "base"},
			)
		} else {
			vars = append(vars,
				envVar{CondaPrefixVar, ""},
				envVar{CondaDefaultEnvVar, ""},
			)
		}
		return append(vars,
			envVar{CondaShlvlVar, "0"},
			envVar{CondaPromptModifierVar, ""},
			envVar{"PATH", path},
		)
	}
}

// runPostSet invokes the hook inside an error-isolating boundary: returned
// errors and panics are logged, never propagated.
func (m *Manager) runPostSet(st State) {
	if m.postSet == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("post-activation hook panicked", "err", fmt.Sprint(r))
		}
	}()
	if err := m.postSet(st); err != nil {
		m.logger.Error("post-activation hook failed", "err", err)
	}
}
