// Package cases defines the entries of a declarative switch.
//
// A case pairs a predicate outcome with a body. The predicate is an ordinary
// Go boolean expression, evaluated by the caller when the case is built:
//
//	c := cases.When(val%3 == 0, func() int { return 3 })
//
// Changing val afterwards does not change c. The body, on the other hand, is
// deferred: it runs only when a dispatcher (see package switches) selects the
// case, and never for a case whose predicate was false.
//
// Invoke reports selection through its second result rather than a marker
// value, so a selected body returning the zero value or nil is still a match.
package cases
