package proptest

import (
	"pokesearch/internal/catalog"
	"pokesearch/internal/search"

	"pgregory.net/rapid"
)

const (
	InvBlankIsNoop          = "blank submission is a no-op"
	InvSeqIncreases         = "each submission takes the next sequence number"
	InvQueryNormalized      = "queries are trimmed and lower-cased"
	InvLastSubmitWins       = "only the latest in-flight lookup is applied"
	InvLoadingWhileInFlight = "loading exactly while a lookup is in flight"
	InvSuccessHasResult     = "success carries a result"
	InvCountEqualsListLen   = "count equals list length"
	InvNameUnique           = "names are unique ignoring case"
	InvIDUnique             = "ids are unique"
	InvListSortedByID       = "list is sorted by id"
	InvGetCaseInsensitive   = "get ignores case and padding"
	InvSaveLoadRoundTrip    = "save then load preserves entries"
)

func verifyStructuralInvariants(t *rapid.T, cat catalog.Catalog) {
	list := cat.List()

	if count := cat.Count(); count != len(list) {
		t.Fatalf("[%s] violated: Count()=%d but len(List())=%d", InvCountEqualsListLen, count, len(list))
	}

	names := make(map[string]bool)
	ids := make(map[int]bool)
	for i, e := range list {
		key := search.Normalize(e.Name)
		if names[key] {
			t.Fatalf("[%s] violated: duplicate name %q", InvNameUnique, e.Name)
		}
		names[key] = true

		if ids[e.ID] {
			t.Fatalf("[%s] violated: duplicate id %d", InvIDUnique, e.ID)
		}
		ids[e.ID] = true

		if i > 0 && list[i-1].ID >= e.ID {
			t.Fatalf("[%s] violated: id %d listed before %d", InvListSortedByID, list[i-1].ID, e.ID)
		}
	}
}
