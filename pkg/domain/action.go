package domain

// Action is a named, parameterized transformation of a State.
//
// Implementations are stateless: the same Action value is tested and applied
// against many states, possibly from several goroutines at once.
type Action[S State] interface {
	// Label is the stable human-readable name included in solution traces.
	Label() string

	// Applicable reports whether the action is legal in s.
	// It must be deterministic and free of side effects.
	Applicable(s S) bool

	// Apply returns the state produced by the action. It must only be called
	// when Applicable(s) holds; otherwise it returns an error wrapping
	// ErrPreconditionViolation. The argument is never modified.
	Apply(s S) (S, error)
}

// funcAction adapts plain functions to the Action interface.
type funcAction[S State] struct {
	label string
	when  func(S) bool
	do    func(S) S
}

// NewAction builds an Action from a precondition and a transformation.
// A nil precondition means the action is always applicable.
func NewAction[S State](label string, when func(S) bool, do func(S) S) Action[S] {
	if when == nil {
		when = func(S) bool { return true }
	}
	return &funcAction[S]{label: label, when: when, do: do}
}

func (a *funcAction[S]) Label() string { return a.label }

func (a *funcAction[S]) Applicable(s S) bool { return a.when(s) }

func (a *funcAction[S]) Apply(s S) (S, error) {
	if !a.when(s) {
		var zero S
		return zero, &PreconditionError{Action: a.label, State: s.String()}
	}
	return a.do(s), nil
}

// Labels returns the labels of a catalogue, in order.
func Labels[S State](actions []Action[S]) []string {
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.Label()
	}
	return labels
}
