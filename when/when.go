// Package when holds predicate helpers for case definitions.
//
// Every helper returns a plain bool computed at the call, so it can be passed
// straight to cases.When or Switch.Case.
package when

import (
	"cmp"
	"slices"
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

// Is reports whether v equals want.
func Is[V comparable](v, want V) bool {
	return v == want
}

// OneOf reports whether v is one of set.
func OneOf[V comparable](v V, set ...V) bool {
	return slices.Contains(set, v)
}

// InRange reports whether lo <= v <= hi.
func InRange[V cmp.Ordered](v, lo, hi V) bool {
	return cmp.Compare(v, lo) >= 0 && cmp.Compare(v, hi) <= 0
}

// Within reports whether t falls inside span.
func Within(span TimeSpan, t time.Time) bool {
	return span.Contains(t)
}

// Between reports whether from <= t < to.
func Between(from, to, t time.Time) bool {
	return Within(timespan.BetweenTimes(from, to), t)
}
