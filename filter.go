// Copyright 2018 The ezgliding authors. All rights reserverd.

package flightboard

import (
	"strings"
	"time"
)

// Predicate selects flights.
type Predicate func(Flight) bool

// UpcomingAt returns a Predicate keeping flights that arrive at or after now.
func UpcomingAt(now time.Time) Predicate {
	return func(f Flight) bool {
		return Upcoming(f, now)
	}
}

// Searching returns a Predicate keeping flights matching term.
func Searching(term string) Predicate {
	return func(f Flight) bool {
		return MatchesSearch(term, f)
	}
}

// MatchesSearch reports whether term occurs, ignoring case, in the flight's
// departure or destination. An empty term matches nothing.
func MatchesSearch(term string, f Flight) bool {
	if term == "" {
		return false
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(f.Dept), term) ||
		strings.Contains(strings.ToLower(f.Dest), term)
}

// Apply returns the flights accepted by every predicate, in input order.
// The input slice is left untouched.
func Apply(flights []Flight, preds ...Predicate) []Flight {
	out := make([]Flight, 0, len(flights))
next:
	for _, f := range flights {
		for _, p := range preds {
			if !p(f) {
				continue next
			}
		}
		out = append(out, f)
	}
	return out
}

// Filter keeps the upcoming flights whose departure or destination matches
// term.
func Filter(flights []Flight, term string, now time.Time) []Flight {
	return Apply(flights, UpcomingAt(now), Searching(term))
}
