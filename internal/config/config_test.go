// SPDX-License-Identifier: MPL-2.0

package config

import (
	"path/filepath"
	"strings"
	"testing"

	"venvctl/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	home := t.TempDir()
	defer testutil.SetHomeDir(t, home)()

	cfg := DefaultConfig()
	if cfg.VenvsPath != filepath.Join(home, ".virtualenvs") {
		t.Errorf("VenvsPath = %q, want ~/.virtualenvs", cfg.VenvsPath)
	}
	if cfg.UI.Verbose {
		t.Error("Verbose should default to false")
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	home := t.TempDir()
	defer testutil.SetHomeDir(t, home)()
	defer SetConfigDirOverride(t.TempDir())()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.VenvsPath != filepath.Join(home, ".virtualenvs") {
		t.Errorf("VenvsPath = %q, want the default", cfg.VenvsPath)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	defer SetConfigDirOverride(dir)()

	content := "venvs_path = \"/opt/venvs\"\n\n[ui]\nverbose = true\n"
	testutil.MustWriteFile(t, filepath.Join(dir, "config.toml"), []byte(content), 0o644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.VenvsPath != "/opt/venvs" {
		t.Errorf("VenvsPath = %q, want /opt/venvs", cfg.VenvsPath)
	}
	if !cfg.UI.Verbose {
		t.Error("Verbose = false, want true from file")
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.toml"))
	defer SetConfigFilePathOverride("")

	if _, err := Load(); err == nil {
		t.Error("Load() with missing explicit config file should fail")
	}
}

func TestRender_RoundTrips(t *testing.T) {
	cfg := &Config{VenvsPath: "/opt/venvs"}
	data, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(string(data), "venvs_path = '/opt/venvs'") &&
		!strings.Contains(string(data), "venvs_path = \"/opt/venvs\"") {
		t.Errorf("Render() output missing venvs_path: %s", data)
	}
}

func TestWriteDefault(t *testing.T) {
	home := t.TempDir()
	defer testutil.SetHomeDir(t, home)()
	defer SetConfigDirOverride(filepath.Join(t.TempDir(), "cfg"))()

	path, err := WriteDefault()
	if err != nil {
		t.Fatalf("WriteDefault() returned error: %v", err)
	}
	if !fileExists(path) {
		t.Fatalf("WriteDefault() did not create %s", path)
	}

	if _, err := WriteDefault(); err == nil {
		t.Error("WriteDefault() should refuse to overwrite an existing file")
	}
}
