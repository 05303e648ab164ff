package domain

import (
	"errors"
	"fmt"
)

// ErrPreconditionViolation is returned when an Action is applied to a State it is not applicable to.
var ErrPreconditionViolation = errors.New("precondition violation")

// ErrGoalUnreachable is returned when the frontier is exhausted without satisfying the goal.
var ErrGoalUnreachable = errors.New("goal unreachable")

// ErrInvariantViolation is returned when the search bookkeeping is found to be inconsistent.
var ErrInvariantViolation = errors.New("search invariant violation")

// ErrInvalidProblem is returned when a search is started without a goal or with a nil action.
var ErrInvalidProblem = errors.New("invalid problem")

// ErrPuzzleNotFound is returned when a puzzle id is not registered.
var ErrPuzzleNotFound = errors.New("puzzle not found")

// ErrPlanNotFound is returned when no plan has been stored for a puzzle id.
var ErrPlanNotFound = errors.New("plan not found")

// PreconditionError describes an Apply call on an inapplicable state.
type PreconditionError struct {
	Action string
	State  string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("action %q is not applicable to state %s", e.Action, e.State)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPreconditionViolation
}

// InvariantError reports corrupted search bookkeeping. It always aborts the search.
type InvariantError struct {
	Reason string
	Index  int
}

func (e *InvariantError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("%s (record %d)", e.Reason, e.Index)
	}
	return e.Reason
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}
