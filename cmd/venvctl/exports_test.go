// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"venvctl/internal/testutil"
	"venvctl/internal/venv"
)

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "'plain'"},
		{"", "''"},
		{"/path with space", "'/path with space'"},
		{"it's", `'it'"'"'s'`},
	}
	for _, tt := range tests {
		if got := shellQuote(tt.in); got != tt.want {
			t.Errorf("shellQuote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestEmitExports(t *testing.T) {
	defer testutil.MustSetenv(t, venv.VirtualEnvVar, "/envs/demo")()
	defer testutil.MustSetenv(t, venv.CondaPrefixVar, "")()

	var buf bytes.Buffer
	emitExports(&buf)
	out := buf.String()

	if !strings.Contains(out, "export VIRTUAL_ENV='/envs/demo'\n") {
		t.Errorf("emitExports() missing VIRTUAL_ENV line:\n%s", out)
	}
	if !strings.Contains(out, "export CONDA_PREFIX=''\n") {
		t.Errorf("emitExports() should export cleared variables as empty:\n%s", out)
	}
	if !strings.HasPrefix(out, "export PATH=") {
		t.Errorf("emitExports() should lead with PATH:\n%s", out)
	}
}
