// Package switches resolves ordered sets of cases to a single value.
//
// A Switch is defined once, with its cases in declaration order, and then
// evaluated:
//
//	factor, err := switches.New[int]().
//	    Case(val%2 == 0, func() int { return 2 }).
//	    Case(val%3 == 0, func() int { return 3 }).
//	    Case(val%5 == 0, func() int { return 5 }).
//	    Eval()
//
// With val = 15 the result is 3: the scan is greedy and stops at the first
// selected case, so the body returning 5 never runs. A default case matches
// anything and, declared first, shadows every case after it.
//
// # Evaluation
//
//   - Eval scans cases in order and runs only the body of the selected case.
//   - By default the result is cached: a second Eval returns the same value,
//     pointer identity included, without running any body.
//   - A switch with no selected case fails with ErrNoMatch, unless it was
//     defined WithExhaustion(ZeroOnExhaustion).
//   - The zero Switch is not a definition; Eval on it returns ErrInstantiation.
//
// Resolve and MustResolve evaluate a switch at the place it is defined, for
// call sites that only want its value. TableizeI1 and TableizeI2 memoize whole
// families of switches keyed by subject value, using a memo.Store.
package switches
