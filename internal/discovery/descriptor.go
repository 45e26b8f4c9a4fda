// SPDX-License-Identifier: MPL-2.0

package discovery

// Source indicates which enumerator produced a descriptor.
type Source int

const (
	// SourceVenv is an environment under the configured virtualenvs root.
	SourceVenv Source = iota
	// SourceConda is a conda base installation or named conda env.
	SourceConda
	// SourcePyenv is an entry under $PYENV_ROOT/versions.
	SourcePyenv
	// SourceLocal is a project-local directory carrying a pyvenv.cfg marker.
	SourceLocal
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceVenv:
		return "venv"
	case SourceConda:
		return "conda"
	case SourcePyenv:
		return "pyenv"
	case SourceLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Kind groups sources by the environment-variable set activation must apply.
type Kind int

const (
	// KindVenv covers virtualenv-like layouts (venv, pyenv, local).
	KindVenv Kind = iota
	// KindConda covers conda-managed environments.
	KindConda
)

// Kind returns the activation kind for the source.
func (s Source) Kind() Kind {
	if s == SourceConda {
		return KindConda
	}
	return KindVenv
}

// Descriptor identifies one discoverable environment. Descriptors are
// immutable values; two descriptors with equal Path denote the same
// environment regardless of Name or Source.
type Descriptor struct {
	// Name is the display label: a path relative to its source root, a
	// pyvenv.cfg prompt value, or the directory base name.
	Name string
	// Path is the absolute environment directory. It existed at
	// enumeration time; no liveness is guaranteed afterwards.
	Path string
	// Source indicates which enumerator found the environment.
	Source Source
}
