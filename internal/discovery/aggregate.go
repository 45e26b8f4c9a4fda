// SPDX-License-Identifier: MPL-2.0

package discovery

import "path/filepath"

// Candidates merges all enumerator outputs into one ordered slice:
// local environments of the project root, local environments of the working
// directory, the virtualenvs root, conda (base first), then pyenv. The
// ordering fixes deduplication precedence and the default presentation
// order; it carries no ranking semantics for matching.
func Candidates(venvsRoot, projectRoot, cwd string) []Descriptor {
	var all []Descriptor
	if projectRoot != "" {
		all = append(all, LocalEnvs(projectRoot, filepath.Base(projectRoot))...)
	}
	if cwd != "" {
		all = append(all, LocalEnvs(cwd, "")...)
	}
	all = append(all, VenvRootEnvs(venvsRoot)...)
	all = append(all, CondaEnvs()...)
	all = append(all, PyenvEnvs()...)
	return Dedup(all)
}

// Dedup collapses descriptors sharing a Path, keeping the first occurrence
// (its Name and Source win).
func Dedup(envs []Descriptor) []Descriptor {
	seen := make(map[string]bool, len(envs))
	out := envs[:0:0]
	for _, e := range envs {
		if seen[e.Path] {
			continue
		}
		seen[e.Path] = true
		out = append(out, e)
	}
	return out
}
