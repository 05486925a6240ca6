package search

import (
	"fmt"

	"pokesearch/internal/lookup"
)

type Kind int

const (
	Idle Kind = iota
	Loading
	Success
	NotFound
	Failed
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case NotFound:
		return "not-found"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Settled reports whether the kind is only reachable after a lookup completes.
func (k Kind) Settled() bool {
	return k == Success || k == NotFound || k == Failed
}

// State is what the renderer draws. Exactly one Kind is active; Result is set
// only for Success and Message only for Failed. Query is empty only when Idle.
type State struct {
	Kind    Kind
	Query   Query
	Result  lookup.Result
	Message string
}

func IdleState() State {
	return State{Kind: Idle}
}

func LoadingState(q Query) State {
	return State{Kind: Loading, Query: q}
}

func SuccessState(q Query, r lookup.Result) State {
	return State{Kind: Success, Query: q, Result: r}
}

func NotFoundState(q Query) State {
	return State{Kind: NotFound, Query: q}
}

func FailedState(q Query, msg string) State {
	return State{Kind: Failed, Query: q, Message: msg}
}

func (s State) String() string {
	switch s.Kind {
	case Idle:
		return "Idle"
	case Loading:
		return fmt.Sprintf("Loading(%q)", s.Query)
	case NotFound:
		return fmt.Sprintf("NotFound(%q)", s.Query)
	case Success:
		return fmt.Sprintf("Success(%q, #%d %s)", s.Query, s.Result.ID, s.Result.Name)
	case Failed:
		return fmt.Sprintf("Failed(%q: %s)", s.Query, s.Message)
	default:
		return s.Kind.String()
	}
}
