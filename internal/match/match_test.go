// SPDX-License-Identifier: MPL-2.0

package match

import (
	"testing"

	"venvctl/internal/discovery"
)

func descriptors(names ...string) []discovery.Descriptor {
	ds := make([]discovery.Descriptor, len(names))
	for i, n := range names {
		ds[i] = discovery.Descriptor{Name: n, Path: "/envs/" + n, Source: discovery.SourceVenv}
	}
	return ds
}

func TestBest_ExactNameWins(t *testing.T) {
	ds := descriptors("foobar", "foo")

	got, ok := Best(ds, "foo")
	if !ok || got.Name != "foo" {
		t.Errorf("Best() = (%+v, %v), want the exact match foo", got, ok)
	}
}

func TestBest_SubstringPrefersShortestName(t *testing.T) {
	ds := descriptors("project-foo", "foo-test")

	got, ok := Best(ds, "foo")
	if !ok || got.Name != "foo-test" {
		t.Errorf("Best() = (%+v, %v), want foo-test (shortest containing name)", got, ok)
	}
}

func TestBest_SubstringTieKeepsFirst(t *testing.T) {
	ds := descriptors("env-aaa", "env-bbb")

	got, ok := Best(ds, "env")
	if !ok || got.Name != "env-aaa" {
		t.Errorf("Best() = (%+v, %v), want the earlier candidate on a length tie", got, ok)
	}
}

func TestBest_ExactPathMatch(t *testing.T) {
	ds := []discovery.Descriptor{
		{Name: "contains-envs-a", Path: "/x/contains-envs-a", Source: discovery.SourceVenv},
		{Name: "b", Path: "/envs/a", Source: discovery.SourceLocal},
	}

	got, ok := Best(ds, "/envs/a")
	if !ok || got.Name != "b" {
		t.Errorf("Best() = (%+v, %v), want the path-exact candidate", got, ok)
	}
}

func TestBest_FuzzyFallback(t *testing.T) {
	ds := descriptors("data-science", "webserver")

	got, ok := Best(ds, "dtscnce")
	if !ok || got.Name != "data-science" {
		t.Errorf("Best() = (%+v, %v), want the fuzzy match data-science", got, ok)
	}
}

func TestBest_NoMatch(t *testing.T) {
	if got, ok := Best(nil, "anything"); ok {
		t.Errorf("Best(nil) = (%+v, true), want no match", got)
	}
	if got, ok := Best(descriptors("bar"), "zzz"); ok {
		t.Errorf("Best() with unrelated query = (%+v, true), want no match", got)
	}
	if got, ok := Best(descriptors("bar"), ""); ok {
		t.Errorf("Best() with empty query = (%+v, true), want no match", got)
	}
}

func TestBest_Deterministic(t *testing.T) {
	ds := descriptors("alpha-env", "beta-env", "alpha-dev")

	first, ok := Best(ds, "alph")
	if !ok {
		t.Fatal("Best() found no match")
	}
	for i := 0; i < 10; i++ {
		got, ok := Best(ds, "alph")
		if !ok || got != first {
			t.Fatalf("Best() is not deterministic: got (%+v, %v), want %+v", got, ok, first)
		}
	}
}
