package proptest

import (
	"pokesearch/internal/catalog"
	"pokesearch/internal/search"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertStatesEqual(t *rapid.T, expected, actual search.State) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func assertEntriesEqual(t *rapid.T, expected, actual catalog.Entry) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("entry mismatch (-want +got):\n%s", diff)
	}
}

func assertSameEntries(t *rapid.T, expected, actual []catalog.Entry) {
	t.Helper()
	opts := cmp.Options{
		cmpopts.EquateEmpty(),
		cmpopts.SortSlices(func(a, b catalog.Entry) bool { return a.ID < b.ID }),
	}
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}
