package runtime

import (
	"slices"

	"github.com/aretw0/statespace/pkg/domain"
)

// reconstruct walks the predecessor links from the goal record back to the
// start record, then reverses them into labels and states from start to goal.
func reconstruct[S domain.State](records []domain.Record[S], goal int) ([]string, []S, error) {
	steps := []string{}
	path := []S{}

	idx := goal
	for hops := 0; ; hops++ {
		if idx < 1 || idx > len(records) {
			return nil, nil, &domain.InvariantError{Reason: "predecessor link points outside the exploration", Index: idx}
		}
		if hops >= len(records) {
			return nil, nil, &domain.InvariantError{Reason: "predecessor chain does not reach the start state", Index: goal}
		}

		rec := records[idx-1]
		if rec.Index != idx {
			return nil, nil, &domain.InvariantError{Reason: "record stored out of discovery order", Index: idx}
		}
		path = append(path, rec.State)

		if rec.IsRoot() {
			if idx != 1 {
				return nil, nil, &domain.InvariantError{Reason: "root record is not the start state", Index: idx}
			}
			break
		}
		if rec.Parent >= idx {
			return nil, nil, &domain.InvariantError{Reason: "predecessor discovered after its successor", Index: idx}
		}

		steps = append(steps, rec.Action)
		idx = rec.Parent
	}

	slices.Reverse(steps)
	slices.Reverse(path)
	return steps, path, nil
}
