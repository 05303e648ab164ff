package runtime

import (
	"fmt"

	"github.com/aretw0/statespace/pkg/domain"
)

// Replay applies a sequence of action labels to start and returns the final
// state. Every step must name an action of the catalogue that is applicable
// to the current state; when several actions share a label the first
// applicable one in catalogue order is used.
func Replay[S domain.State](start S, actions []domain.Action[S], steps []string) (S, error) {
	byLabel := make(map[string][]domain.Action[S], len(actions))
	for _, a := range actions {
		byLabel[a.Label()] = append(byLabel[a.Label()], a)
	}

	current := start
	for i, label := range steps {
		candidates, ok := byLabel[label]
		if !ok {
			return current, fmt.Errorf("step %d: unknown action %q", i+1, label)
		}

		var chosen domain.Action[S]
		for _, a := range candidates {
			if a.Applicable(current) {
				chosen = a
				break
			}
		}
		if chosen == nil {
			return current, fmt.Errorf("step %d: %w", i+1, &domain.PreconditionError{Action: label, State: current.String()})
		}

		next, err := chosen.Apply(current)
		if err != nil {
			return current, fmt.Errorf("step %d: %w", i+1, err)
		}
		current = next
	}
	return current, nil
}
