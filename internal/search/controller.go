package search

import (
	"context"
	"errors"

	"pokesearch/internal/logger"
	"pokesearch/internal/lookup"
)

// FailureHint is appended to every surfaced lookup error.
const FailureHint = " — This may be a connectivity issue or the service is unavailable."

type Fetcher interface {
	FetchByName(ctx context.Context, name string) (lookup.Result, error)
}

type Option func(*Controller)

// WithObserver registers fn to be called with the new state after every
// transition, on the goroutine that caused it.
func WithObserver(fn func(State)) Option {
	return func(c *Controller) {
		c.observers = append(c.observers, fn)
	}
}

// Controller owns the search state and is its only writer. It is not safe for
// concurrent use: Submit and Complete must be called from the goroutine that
// owns the controller. Only Lookup.Run is meant to run elsewhere.
type Controller struct {
	fetcher   Fetcher
	state     State
	seq       uint64
	inFlight  bool
	observers []func(State)
}

func NewController(f Fetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher: f,
		state:   IdleState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	return c.state
}

// Submit normalizes raw and, if it is non-empty, moves to Loading and returns
// the lookup to run. A blank submission changes nothing and returns nil.
// Any lookup still outstanding is superseded: its completion will be ignored.
func (c *Controller) Submit(raw string) *Lookup {
	q, err := NewQuery(raw)
	if err != nil {
		logger.Debug("search: ignoring blank submission")
		return nil
	}

	if c.inFlight {
		logger.Debug("search: lookup #%d superseded by %q", c.seq, q)
	}
	c.seq++
	c.inFlight = true
	c.transition(LoadingState(q))

	return &Lookup{
		Seq:     c.seq,
		Query:   q,
		fetcher: c.fetcher,
	}
}

// Complete applies the outcome of a lookup. It returns false, leaving the
// state untouched, when the lookup is not the most recent submission or was
// already applied.
func (c *Controller) Complete(done Completion) bool {
	if !c.inFlight || done.Seq != c.seq {
		logger.Debug("search: discarding stale completion #%d for %q (current #%d)", done.Seq, done.Query, c.seq)
		return false
	}
	c.inFlight = false

	switch {
	case done.Err == nil && done.Result == (lookup.Result{}):
		c.transition(NotFoundState(done.Query))
	case done.Err == nil:
		c.transition(SuccessState(done.Query, done.Result))
	case errors.Is(done.Err, lookup.ErrNotFound):
		c.transition(NotFoundState(done.Query))
	default:
		logger.Warn("search: lookup for %q failed: %v", done.Query, done.Err)
		c.transition(FailedState(done.Query, done.Err.Error()+FailureHint))
	}
	return true
}

// Search submits raw, runs the lookup on the calling goroutine and applies it.
// It returns the resulting state, which is unchanged for blank input.
func (c *Controller) Search(ctx context.Context, raw string) State {
	l := c.Submit(raw)
	if l == nil {
		return c.state
	}
	c.Complete(l.Run(ctx))
	return c.state
}

func (c *Controller) transition(s State) {
	c.state = s
	logger.Debug("search: -> %s", s)
	for _, fn := range c.observers {
		fn(s)
	}
}

// Lookup is one submitted search waiting to be run.
type Lookup struct {
	Seq   uint64
	Query Query

	fetcher Fetcher
}

// Run performs the network lookup. It may be called from any goroutine; the
// returned Completion must be handed back to Controller.Complete by the owner.
func (l *Lookup) Run(ctx context.Context) Completion {
	r, err := l.fetcher.FetchByName(ctx, l.Query.String())
	return Completion{
		Seq:    l.Seq,
		Query:  l.Query,
		Result: r,
		Err:    err,
	}
}

type Completion struct {
	Seq    uint64
	Query  Query
	Result lookup.Result
	Err    error
}
