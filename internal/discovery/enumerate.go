// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"
)

const (
	// CondaExeVar points at the conda executable of an installation.
	CondaExeVar = "CONDA_EXE"
	// PyenvRootVar points at the pyenv installation root.
	PyenvRootVar = "PYENV_ROOT"
)

// VenvRootEnvs lists the immediate subdirectories of the configured
// virtualenvs root as venv candidates. An empty or missing root yields nil.
func VenvRootEnvs(root string) []Descriptor {
	if root == "" {
		return nil
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil
	}

	var envs []Descriptor
	for _, entry := range readDir(absRoot) {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(absRoot, entry.Name())
		name, err := filepath.Rel(absRoot, path)
		if err != nil {
			name = entry.Name()
		}
		envs = append(envs, Descriptor{Name: name, Path: path, Source: SourceVenv})
	}
	return envs
}

// CondaBase returns the base directory of the conda installation referenced
// by CONDA_EXE (two levels up from the executable), or "" when conda is not
// present.
func CondaBase() string {
	exe := os.Getenv(CondaExeVar)
	if exe == "" {
		return ""
	}
	base := filepath.Dir(filepath.Dir(exe))
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		return ""
	}
	return base
}

// CondaEnvs lists the conda base environment followed by the installation's
// named environments (immediate subdirectories of <base>/envs). Without a
// CONDA_EXE variable there is no base entry either.
func CondaEnvs() []Descriptor {
	base := CondaBase()
	if base == "" {
		return nil
	}

	envs := []Descriptor{{Name: "base", Path: base, Source: SourceConda}}
	envsDir := filepath.Join(base, "envs")
	for _, entry := range readDir(envsDir) {
		if !entry.IsDir() {
			continue
		}
		envs = append(envs, Descriptor{
			Name:   entry.Name(),
			Path:   filepath.Join(envsDir, entry.Name()),
			Source: SourceConda,
		})
	}
	return envs
}

// PyenvEnvs lists entries under $PYENV_ROOT/versions: directories first,
// then plain files, since pyenv version markers may be either.
func PyenvEnvs() []Descriptor {
	root := os.Getenv(PyenvRootVar)
	if root == "" {
		return nil
	}
	versions := filepath.Join(root, "versions")
	entries := readDir(versions)

	var envs []Descriptor
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		envs = append(envs, Descriptor{
			Name:   entry.Name(),
			Path:   filepath.Join(versions, entry.Name()),
			Source: SourcePyenv,
		})
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		envs = append(envs, Descriptor{
			Name:   entry.Name(),
			Path:   filepath.Join(versions, entry.Name()),
			Source: SourcePyenv,
		})
	}
	return envs
}

// LocalEnvs lists subdirectories of dir (hidden ones included) that carry a
// pyvenv.cfg marker. The display name is the marker's prompt value, else the
// caller-supplied hint, else the directory base name.
func LocalEnvs(dir, hint string) []Descriptor {
	if dir == "" {
		return nil
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil
	}

	var envs []Descriptor
	for _, entry := range readDir(absDir) {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(absDir, entry.Name())
		if !HasMarker(path) {
			continue
		}
		name := ReadPrompt(path)
		if name == "" {
			name = hint
		}
		if name == "" {
			name = entry.Name()
		}
		envs = append(envs, Descriptor{Name: name, Path: path, Source: SourceLocal})
	}
	return envs
}

// readDir lists dir, treating any error as an empty directory.
func readDir(dir string) []os.DirEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	return entries
}
