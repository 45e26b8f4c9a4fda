// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"strings"
	"testing"
)

func TestParsePathList_Tokenizes(t *testing.T) {
	p := ParsePathList("/usr/local/bin:/usr/bin:/bin")
	if got := p.String(); got != "/usr/local/bin:/usr/bin:/bin" {
		t.Errorf("String() = %q, want round-trip", got)
	}
}

func TestIndexOf(t *testing.T) {
	p := ParsePathList("/usr/bin:/opt/conda/bin:/home/u/venvs/a/bin")

	tests := []struct {
		dir  string
		want int
	}{
		{"/opt/conda", 1},            // directory-prefix match on /opt/conda/bin
		{"/opt/conda/bin", 1},        // identity match
		{"/home/u/venvs/a", 2},       // prefix match
		{"/usr", 0},                  // prefix of /usr/bin
		{"/opt/cond", -1},            // not a path-segment boundary
		{"/missing", -1},             // absent
		{"", -1},                     // empty value never matches
	}
	for _, tt := range tests {
		if got := p.IndexOf(tt.dir); got != tt.want {
			t.Errorf("IndexOf(%q) = %d, want %d", tt.dir, got, tt.want)
		}
	}
}

func TestHasHigherPriority(t *testing.T) {
	p := ParsePathList("/b/bin:/a/bin")

	if !p.HasHigherPriority("/b", "/a") {
		t.Error("HasHigherPriority(/b, /a) = false, want true (earlier token)")
	}
	if p.HasHigherPriority("/a", "/b") {
		t.Error("HasHigherPriority(/a, /b) = true, want false")
	}
	if !p.HasHigherPriority("/a", "/missing") {
		t.Error("HasHigherPriority(/a, absent) = false, want true")
	}
	if p.HasHigherPriority("/missing", "/a") {
		t.Error("HasHigherPriority(absent, /a) = true, want false")
	}
	if p.HasHigherPriority("", "/a") {
		t.Error("HasHigherPriority with empty value = true, want false")
	}
}

func TestPrepend_UsesBaselineOnly(t *testing.T) {
	p := ParsePathList("/usr/bin:/bin")

	first := p.Prepend("/envs/a/bin")
	second := p.Prepend("/envs/b/bin")

	if !strings.HasPrefix(first, "/envs/a/bin:") {
		t.Errorf("Prepend() = %q, want the bin dir first", first)
	}
	if strings.Contains(second, "/envs/a/bin") {
		t.Errorf("Prepend() after a previous call leaked the old prefix: %q", second)
	}
	if second != "/envs/b/bin:/usr/bin:/bin" {
		t.Errorf("Prepend() = %q, want reconstruction from the baseline", second)
	}
}
