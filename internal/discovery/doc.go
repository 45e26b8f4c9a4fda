// SPDX-License-Identifier: MPL-2.0

// Package discovery enumerates Python environments from heterogeneous sources.
//
// Four enumerators contribute candidates:
//   - VenvRootEnvs: immediate subdirectories of a configured virtualenvs root
//   - CondaEnvs: the conda base installation plus its named envs, located
//     through the CONDA_EXE variable
//   - PyenvEnvs: entries under $PYENV_ROOT/versions (directories and plain
//     version files)
//   - LocalEnvs: subdirectories of a project or working directory that carry
//     a pyvenv.cfg marker
//
// Candidates merges all of them into one ordered, path-deduplicated slice.
// Enumerators never fail: an unset variable or missing directory contributes
// zero candidates.
package discovery
