// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"venvctl/internal/issue"
)

func TestGetVersionString_Dev(t *testing.T) {
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q, want the dev marker", got)
	}
}

func TestGetVersionString_Release(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	defer func() { Version, Commit, BuildDate = origVersion, origCommit, origDate }()

	Version, Commit, BuildDate = "1.2.3", "abc123", "2026-01-01"
	got := getVersionString()
	if !strings.Contains(got, "1.2.3") || !strings.Contains(got, "abc123") {
		t.Errorf("getVersionString() = %q, want version and commit", got)
	}
}

func TestFormatErrorForDisplay_Actionable(t *testing.T) {
	err := issue.NewErrorContext().
		WithOperation("activate environment").
		WithSuggestion("Run 'venvctl list'").
		Build()

	got := formatErrorForDisplay(err, false)
	if !strings.Contains(got, "• Run 'venvctl list'") {
		t.Errorf("formatErrorForDisplay() = %q, want the actionable format", got)
	}
}

func TestFormatErrorForDisplay_Plain(t *testing.T) {
	err := errors.New("boom")
	if got := formatErrorForDisplay(err, false); got != "boom" {
		t.Errorf("formatErrorForDisplay() = %q, want boom", got)
	}
}
