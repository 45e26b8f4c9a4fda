// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"os"
	"path/filepath"
	"strings"
)

// PathList is a PATH value tokenized into its ordered directory segments.
// Priority questions are answered per token (identity or directory-prefix),
// never by raw substring search over the joined string, which would
// false-positive on values that happen to be substrings of unrelated
// segments.
type PathList struct {
	tokens []string
}

// ParsePathList tokenizes a raw PATH value.
func ParsePathList(raw string) PathList {
	return PathList{tokens: filepath.SplitList(raw)}
}

// String joins the tokens back into a PATH value.
func (p PathList) String() string {
	return strings.Join(p.tokens, string(os.PathListSeparator))
}

// IndexOf returns the position of the first token that is dir itself or a
// directory beneath it (e.g. dir "/opt/conda" matches token
// "/opt/conda/bin" but not "/opt/condax"). It returns -1 when dir is empty
// or absent.
func (p PathList) IndexOf(dir string) int {
	if dir == "" {
		return -1
	}
	prefix := strings.TrimSuffix(dir, string(filepath.Separator)) + string(filepath.Separator)
	for i, token := range p.tokens {
		if token == dir || strings.HasPrefix(token, prefix) {
			return i
		}
	}
	return -1
}

// HasHigherPriority reports whether a is non-empty, present in the list,
// and either b is absent or a's first occurrence precedes b's.
func (p PathList) HasHigherPriority(a, b string) bool {
	ia := p.IndexOf(a)
	if ia < 0 {
		return false
	}
	ib := p.IndexOf(b)
	return ib < 0 || ia < ib
}

// Prepend returns a PATH value consisting of dir followed by the captured
// tokens. The receiver is the immutable baseline, so the result never
// contains bin prefixes from earlier activations.
func (p PathList) Prepend(dir string) string {
	segments := make([]string, 0, len(p.tokens)+1)
	segments = append(segments, dir)
	segments = append(segments, p.tokens...)
	return strings.Join(segments, string(os.PathListSeparator))
}
