package search

import (
	"errors"
	"strings"
)

var ErrEmptyQuery = errors.New("query is empty")

// Query is a lower-cased, trimmed, non-empty name.
type Query string

// Normalize lower-cases and trims raw. It is idempotent.
func Normalize(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

func NewQuery(raw string) (Query, error) {
	q := Normalize(raw)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return Query(q), nil
}

func (q Query) String() string {
	return string(q)
}
