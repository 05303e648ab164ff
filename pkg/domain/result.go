package domain

// Outcome is the terminal status of one search.
type Outcome string

const (
	OutcomeSolved      Outcome = "solved"      // A state satisfying the goal was dequeued
	OutcomeUnreachable Outcome = "unreachable" // The frontier emptied first
)

// Result is what a search returns.
type Result[S State] struct {
	Outcome Outcome

	// Steps are the action labels from the start state to the goal state.
	// Empty when the start already satisfies the goal, nil when unreachable.
	Steps []string

	// Path holds the states visited by Steps, start and goal included
	// (len(Path) == len(Steps)+1 when solved).
	Path []S

	// Explored is the full exploration history, in discovery order.
	Explored []Record[S]
}

// Solved reports whether the goal was reached.
func (r Result[S]) Solved() bool {
	return r.Outcome == OutcomeSolved
}

// Err returns ErrGoalUnreachable for unreachable results and nil otherwise.
func (r Result[S]) Err() error {
	if r.Outcome == OutcomeUnreachable {
		return ErrGoalUnreachable
	}
	return nil
}

// Final returns the goal state of a solved result.
func (r Result[S]) Final() (S, bool) {
	if !r.Solved() || len(r.Path) == 0 {
		var zero S
		return zero, false
	}
	return r.Path[len(r.Path)-1], true
}
