package cases

import "errors"

// Default is an always-true predicate, for readability when writing a fallback case.
//
// A default case is position-sensitive: declared before other cases it wins
// regardless of whether they would also match.
const Default = true

// ErrNilBody is raised when a selected case is defined without a body.
var ErrNilBody = errors.New("case body is nil")

// Case is a predicate outcome paired with the body that produces its value.
// The outcome is frozen when the case is built; the body runs only if the
// case is selected by a dispatcher.
type Case[T any] struct {
	label    string
	selected bool
	body     func() T
}

// When registers body behind a predicate that the caller has already evaluated.
func When[T any](predicate bool, body func() T) Case[T] {
	return Named("", predicate, body)
}

// Named is When with a label used in logs and error messages.
func Named[T any](label string, predicate bool, body func() T) Case[T] {
	if predicate && body == nil {
		panic(ErrNilBody)
	}
	return Case[T]{
		label:    label,
		selected: predicate,
		body:     body,
	}
}

// Otherwise registers body as a default case.
func Otherwise[T any](body func() T) Case[T] {
	return Named("default", Default, body)
}

// Invoke returns the body's value and true if the case was selected.
// An unselected case returns the zero value and false without running its body.
func (c Case[T]) Invoke() (T, bool) {
	if !c.selected {
		var zero T
		return zero, false
	}
	return c.body(), true
}

func (c Case[T]) Selected() bool {
	return c.selected
}

func (c Case[T]) Label() string {
	return c.label
}
