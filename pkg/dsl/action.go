package dsl

import "github.com/aretw0/statespace/pkg/domain"

// ActionBuilder provides a fluent API for configuring an action.
type ActionBuilder[S domain.State] struct {
	label   string
	when    func(S) bool
	do      func(S) S
	dos     int
	builder *Builder[S]
}

// When sets the precondition. Several calls are combined with a logical AND.
func (a *ActionBuilder[S]) When(pred func(S) bool) *ActionBuilder[S] {
	if prev := a.when; prev != nil {
		a.when = func(s S) bool { return prev(s) && pred(s) }
		return a
	}
	a.when = pred
	return a
}

// Do sets the transformation. It receives a copy of the state and returns the new one.
// An action has exactly one transformation; Build rejects a second Do.
func (a *ActionBuilder[S]) Do(fn func(S) S) *ActionBuilder[S] {
	a.do = fn
	a.dos++
	return a
}

// Add continues the chain with the next action of the catalogue.
func (a *ActionBuilder[S]) Add(label string) *ActionBuilder[S] {
	return a.builder.Add(label)
}
