// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"path/filepath"
	"testing"

	"venvctl/internal/testutil"
)

func TestDedup_KeepsFirstOccurrence(t *testing.T) {
	envs := []Descriptor{
		{Name: "first", Path: "/envs/a", Source: SourceLocal},
		{Name: "other", Path: "/envs/b", Source: SourceVenv},
		{Name: "duplicate", Path: "/envs/a", Source: SourceConda},
	}

	got := Dedup(envs)
	if len(got) != 2 {
		t.Fatalf("Dedup() returned %d envs, want 2", len(got))
	}
	if got[0].Name != "first" || got[0].Source != SourceLocal {
		t.Errorf("Dedup() kept %+v, want the first occurrence's name and source", got[0])
	}
}

func TestDedup_Empty(t *testing.T) {
	if got := Dedup(nil); len(got) != 0 {
		t.Errorf("Dedup(nil) = %v, want empty", got)
	}
}

func TestCandidates_OrderAndDedup(t *testing.T) {
	defer testutil.MustUnsetenv(t, CondaExeVar)()
	defer testutil.MustUnsetenv(t, PyenvRootVar)()

	// Project root with one local env, also reachable through the venvs root
	// to exercise dedup precedence.
	project := t.TempDir()
	envDir := filepath.Join(project, "envs-holder")
	testutil.MustMkdirAll(t, envDir, 0o755)
	writeMarker(t, envDir, "prompt = proj\n")

	venvsRoot := t.TempDir()
	testutil.MustMkdirAll(t, filepath.Join(venvsRoot, "global"), 0o755)

	pyenvRoot := t.TempDir()
	testutil.MustMkdirAll(t, filepath.Join(pyenvRoot, "versions", "3.12.1"), 0o755)
	defer testutil.MustSetenv(t, PyenvRootVar, pyenvRoot)()

	got := Candidates(venvsRoot, project, project)
	if len(got) != 3 {
		t.Fatalf("Candidates() returned %d envs, want 3: %+v", len(got), got)
	}

	// Project-local entry first, and the cwd pass over the same directory
	// must collapse into it.
	if got[0].Name != "proj" || got[0].Source != SourceLocal {
		t.Errorf("first candidate = %+v, want the project-local env", got[0])
	}
	if got[1].Name != "global" || got[1].Source != SourceVenv {
		t.Errorf("second candidate = %+v, want the venvs-root env", got[1])
	}
	if got[2].Name != "3.12.1" || got[2].Source != SourcePyenv {
		t.Errorf("third candidate = %+v, want the pyenv version", got[2])
	}
}

func TestCandidates_AllSourcesAbsent(t *testing.T) {
	defer testutil.MustUnsetenv(t, CondaExeVar)()
	defer testutil.MustUnsetenv(t, PyenvRootVar)()

	if got := Candidates("", "", t.TempDir()); len(got) != 0 {
		t.Errorf("Candidates() with no sources = %v, want empty", got)
	}
}
