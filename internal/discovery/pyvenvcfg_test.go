// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"path/filepath"
	"testing"

	"venvctl/internal/testutil"
)

func TestReadPrompt(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain", "home = /usr/bin\nprompt = staging\n", "staging"},
		{"single quoted", "prompt = 'data-sci'\n", "data-sci"},
		{"double quoted", "prompt = \"web\"\n", "web"},
		{"no prompt key", "home = /usr/bin\nversion = 3.12.1\n", ""},
		{"no spaces", "prompt=tight\n", "tight"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeMarker(t, dir, tt.content)
			if got := ReadPrompt(dir); got != tt.want {
				t.Errorf("ReadPrompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadPrompt_MissingFile(t *testing.T) {
	if got := ReadPrompt(t.TempDir()); got != "" {
		t.Errorf("ReadPrompt() on empty dir = %q, want empty", got)
	}
}

func TestHasMarker(t *testing.T) {
	dir := t.TempDir()
	if HasMarker(dir) {
		t.Error("HasMarker() = true for directory without pyvenv.cfg")
	}
	writeMarker(t, dir, "home = /usr/bin\n")
	if !HasMarker(dir) {
		t.Error("HasMarker() = false for directory with pyvenv.cfg")
	}
}

func TestStoredName(t *testing.T) {
	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, ".venv"), []byte("science\nsecond line ignored\n"), 0o644)

	name, ok := StoredName(root)
	if !ok || name != "science" {
		t.Errorf("StoredName() = (%q, %v), want (science, true)", name, ok)
	}
}

func TestStoredName_Absent(t *testing.T) {
	if name, ok := StoredName(t.TempDir()); ok {
		t.Errorf("StoredName() on empty project = (%q, true), want not found", name)
	}
}

func TestStoredName_DirectoryIsNotAMarker(t *testing.T) {
	// A .venv directory is an environment layout, not a stored name.
	root := t.TempDir()
	testutil.MustMkdirAll(t, filepath.Join(root, ".venv"), 0o755)

	if name, ok := StoredName(root); ok {
		t.Errorf("StoredName() with .venv directory = (%q, true), want not found", name)
	}
}

func TestStoredName_EmptyFile(t *testing.T) {
	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, ".venv"), []byte("  \n"), 0o644)

	if name, ok := StoredName(root); ok {
		t.Errorf("StoredName() with blank file = (%q, true), want not found", name)
	}
}
