// SPDX-License-Identifier: MPL-2.0

// Package match selects the single best environment for a free-text query.
//
// The scoring policy, in order:
//  1. Exact (case-sensitive) Name match.
//  2. Exact Path match.
//  3. Name-substring match, shortest Name winning; ties keep the earliest
//     candidate.
//  4. Path-substring match with the same tie-break.
//  5. Fuzzy fallback over Names via github.com/sahilm/fuzzy. The top-scored
//     match is accepted only when the query is an in-order subsequence of
//     the name and the score is non-negative; anything weaker returns no
//     match rather than guessing.
//
// The result is deterministic for a fixed candidate order and query.
package match

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"venvctl/internal/discovery"
)

// Best returns the candidate whose Name or Path most closely corresponds to
// query. The second return is false when nothing matches acceptably.
func Best(candidates []discovery.Descriptor, query string) (discovery.Descriptor, bool) {
	if query == "" || len(candidates) == 0 {
		return discovery.Descriptor{}, false
	}

	for _, c := range candidates {
		if c.Name == query {
			return c, true
		}
	}
	for _, c := range candidates {
		if c.Path == query {
			return c, true
		}
	}

	if c, ok := shortestContaining(candidates, query, func(c discovery.Descriptor) string { return c.Name }); ok {
		return c, true
	}
	if c, ok := shortestContaining(candidates, query, func(c discovery.Descriptor) string { return c.Path }); ok {
		return c, true
	}

	return fuzzyBest(candidates, query)
}

// shortestContaining picks the candidate whose keyed string contains query
// as a substring, preferring the shortest key; earlier candidates win ties.
func shortestContaining(candidates []discovery.Descriptor, query string, key func(discovery.Descriptor) string) (discovery.Descriptor, bool) {
	best := -1
	for i, c := range candidates {
		k := key(c)
		if !strings.Contains(k, query) {
			continue
		}
		if best < 0 || len(k) < len(key(candidates[best])) {
			best = i
		}
	}
	if best < 0 {
		return discovery.Descriptor{}, false
	}
	return candidates[best], true
}

// minFuzzyScore is the acceptance threshold for the fuzzy fallback.
// sahilm/fuzzy only reports in-order subsequence matches and penalizes
// unmatched characters; a negative score means the overlap is too thin to
// act on.
const minFuzzyScore = 0

func fuzzyBest(candidates []discovery.Descriptor, query string) (discovery.Descriptor, bool) {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}

	matches := fuzzy.Find(query, names)
	if len(matches) == 0 || matches[0].Score < minFuzzyScore {
		return discovery.Descriptor{}, false
	}
	return candidates[matches[0].Index], true
}
