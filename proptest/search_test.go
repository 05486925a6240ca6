package proptest

import (
	"context"
	"strings"
	"testing"

	"pokesearch/internal/search"

	"pgregory.net/rapid"
)

func TestProperty_Normalize_Idempotent(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		raw := rapid.OneOf(rawQueryGen(), blankGen(), rapid.String()).Draw(h.T, "raw")

		once := search.Normalize(raw)
		twice := search.Normalize(once)

		if once != twice {
			h.T.Fatalf("Normalize not idempotent: %q -> %q -> %q", raw, once, twice)
		}
	})
}

func TestProperty_Normalize_CaseAndPaddingInsensitive(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		name := validNameGen().Draw(h.T, "name")
		lead := paddingGen.Draw(h.T, "lead")
		trail := paddingGen.Draw(h.T, "trail")

		variants := []string{name, strings.ToUpper(name), lead + name + trail, lead + strings.ToLower(name)}
		want := search.Normalize(name)
		for _, v := range variants {
			if got := search.Normalize(v); got != want {
				h.T.Fatalf("[%s] violated: Normalize(%q)=%q, want %q", InvQueryNormalized, v, got, want)
			}
		}
	})
}

func TestProperty_BlankSubmission_NoOp(t *testing.T) {
	RunWithController(t, func(h *ControllerHarness) {
		if rapid.Bool().Draw(h.T, "settleFirst") {
			h.Ctrl.Search(context.Background(), rawQueryGen().Draw(h.T, "first"))
		}
		before := h.Ctrl.State()
		calls := len(h.Fetcher.calls)

		l := h.Ctrl.Submit(blankGen().Draw(h.T, "blank"))

		if l != nil {
			h.T.Fatalf("[%s] violated: blank submission returned a lookup", InvBlankIsNoop)
		}
		assertStatesEqual(h.T, before, h.Ctrl.State())
		if len(h.Fetcher.calls) != calls {
			h.T.Fatalf("[%s] violated: blank submission fetched", InvBlankIsNoop)
		}
	})
}

func TestProperty_Submit_EntersLoadingSynchronously(t *testing.T) {
	RunWithController(t, func(h *ControllerHarness) {
		raw := rawQueryGen().Draw(h.T, "raw")

		l := h.Ctrl.Submit(raw)

		if l == nil {
			h.T.Fatalf("submission %q returned no lookup", raw)
		}
		assertStatesEqual(h.T, search.LoadingState(search.Query(search.Normalize(raw))), h.Ctrl.State())
		if len(h.Fetcher.calls) != 0 {
			h.T.Fatalf("Submit fetched before the lookup ran")
		}
	})
}

func TestProperty_Search_OneFetchPerSubmission(t *testing.T) {
	RunWithController(t, func(h *ControllerHarness) {
		subs := rapid.SliceOfN(submissionGen(), 1, 10).Draw(h.T, "submissions")

		want := 0
		for _, raw := range subs {
			if search.Normalize(raw) != "" {
				want++
			}
			state := h.Ctrl.Search(context.Background(), raw)
			if state.Kind == search.Loading {
				h.T.Fatalf("Search returned while still loading")
			}
		}

		if len(h.Fetcher.calls) != want {
			h.T.Fatalf("fetched %d times for %d non-blank submissions", len(h.Fetcher.calls), want)
		}
	})
}
