package proptest

import (
	"context"
	"errors"
	"fmt"

	"pokesearch/internal/lookup"
	"pokesearch/internal/search"

	"pgregory.net/rapid"
)

type outcomeKind int

const (
	outcomeFound outcomeKind = iota
	outcomeEmpty
	outcomeNotFound
	outcomeTransport
	outcomeProtocol
)

type outcome struct {
	kind   outcomeKind
	result lookup.Result
	err    error
}

// ScriptedFetcher answers each distinct name with an outcome drawn the first
// time the name is fetched, then repeats it.
type ScriptedFetcher struct {
	t        *rapid.T
	outcomes map[string]outcome
	calls    []string
}

func NewScriptedFetcher(t *rapid.T) *ScriptedFetcher {
	return &ScriptedFetcher{t: t, outcomes: make(map[string]outcome)}
}

func (f *ScriptedFetcher) FetchByName(_ context.Context, name string) (lookup.Result, error) {
	f.calls = append(f.calls, name)
	o := f.outcomeFor(name)
	return o.result, o.err
}

func (f *ScriptedFetcher) outcomeFor(name string) outcome {
	if o, ok := f.outcomes[name]; ok {
		return o
	}

	kind := rapid.SampledFrom([]outcomeKind{
		outcomeFound, outcomeFound, outcomeEmpty, outcomeNotFound, outcomeTransport, outcomeProtocol,
	}).Draw(f.t, "outcome")

	var o outcome
	o.kind = kind
	switch kind {
	case outcomeFound:
		o.result = lookup.Result{
			ID:          idGen.Draw(f.t, "id"),
			Name:        name,
			PrimaryType: typeGen.Draw(f.t, "type"),
			Generation:  lookup.Generation(generationGen.Draw(f.t, "generation")),
		}
	case outcomeNotFound:
		o.err = lookup.ErrNotFound
	case outcomeTransport:
		o.err = &lookup.TransportError{Err: errors.New("connection refused")}
	case outcomeProtocol:
		status := rapid.SampledFrom([]int{400, 401, 500, 502, 503}).Draw(f.t, "status")
		o.err = &lookup.ProtocolError{StatusCode: status, Message: fmt.Sprintf("Server returned %d: oops", status)}
	}
	f.outcomes[name] = o
	return o
}

// expectedState is what the controller must show once a lookup for q with
// outcome o is applied.
func expectedState(q search.Query, o outcome) search.State {
	switch o.kind {
	case outcomeFound:
		return search.SuccessState(q, o.result)
	case outcomeEmpty, outcomeNotFound:
		return search.NotFoundState(q)
	default:
		return search.FailedState(q, o.err.Error()+search.FailureHint)
	}
}

// ControllerModel tracks what the controller's state should be given the
// submissions and completions applied so far.
type ControllerModel struct {
	seq      uint64
	inFlight bool
	state    search.State
}

func newControllerModel() *ControllerModel {
	return &ControllerModel{state: search.IdleState()}
}

// CheckedController drives a real controller and the model side by side and
// fails on any divergence.
type CheckedController struct {
	real    *search.Controller
	fetcher *ScriptedFetcher
	model   *ControllerModel
	t       *rapid.T

	pending []*search.Lookup
	applied []search.Completion
}

func NewCheckedController(t *rapid.T, ctrl *search.Controller, f *ScriptedFetcher) *CheckedController {
	return &CheckedController{
		real:    ctrl,
		fetcher: f,
		model:   newControllerModel(),
		t:       t,
	}
}

func (c *CheckedController) Pending() int {
	return len(c.pending)
}

func (c *CheckedController) Applied() int {
	return len(c.applied)
}

func (c *CheckedController) Submit(raw string) {
	before := c.real.State()
	l := c.real.Submit(raw)

	q, err := search.NewQuery(raw)
	if err != nil {
		if l != nil {
			c.t.Fatalf("[%s] violated: blank submission %q returned a lookup", InvBlankIsNoop, raw)
		}
		assertStatesEqual(c.t, before, c.real.State())
		return
	}

	if l == nil {
		c.t.Fatalf("submission %q returned no lookup", raw)
	}
	c.model.seq++
	c.model.inFlight = true
	c.model.state = search.LoadingState(q)

	if l.Seq != c.model.seq {
		c.t.Fatalf("[%s] violated: lookup seq %d, want %d", InvSeqIncreases, l.Seq, c.model.seq)
	}
	if l.Query != q {
		c.t.Fatalf("[%s] violated: lookup query %q, want %q", InvQueryNormalized, l.Query, q)
	}
	c.pending = append(c.pending, l)
	c.Check()
}

// Complete runs the pending lookup at index i and applies it.
func (c *CheckedController) Complete(i int) {
	l := c.pending[i]
	c.pending = append(c.pending[:i], c.pending[i+1:]...)

	done := l.Run(context.Background())
	c.apply(done)
}

// Replay hands an already applied completion back to the controller.
func (c *CheckedController) Replay(i int) {
	c.apply(c.applied[i])
}

func (c *CheckedController) apply(done search.Completion) {
	wantApplied := c.model.inFlight && done.Seq == c.model.seq
	gotApplied := c.real.Complete(done)

	if gotApplied != wantApplied {
		c.t.Fatalf("[%s] violated: Complete(#%d) applied=%v, want %v (latest #%d, in flight %v)",
			InvLastSubmitWins, done.Seq, gotApplied, wantApplied, c.model.seq, c.model.inFlight)
	}
	if wantApplied {
		c.model.inFlight = false
		c.model.state = expectedState(done.Query, c.fetcher.outcomeFor(done.Query.String()))
		c.applied = append(c.applied, done)
	}
	c.Check()
}

func (c *CheckedController) Check() {
	got := c.real.State()
	assertStatesEqual(c.t, c.model.state, got)

	if c.model.inFlight != (got.Kind == search.Loading) {
		c.t.Fatalf("[%s] violated: in flight=%v but state is %s", InvLoadingWhileInFlight, c.model.inFlight, got)
	}
	if got.Kind != search.Idle && got.Query == "" {
		c.t.Fatalf("[%s] violated: %s state has empty query", InvQueryNormalized, got.Kind)
	}
	if got.Kind == search.Success && got.Result == (lookup.Result{}) {
		c.t.Fatalf("[%s] violated: success without a result", InvSuccessHasResult)
	}
}
