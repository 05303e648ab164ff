package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/statespace/pkg/domain"
)

// search holds the mutable structures of a single Solve call.
// It is never shared between calls.
type search[S domain.State] struct {
	engine   *Engine[S]
	visited  *visitedSet[S]
	frontier *frontier
}

// successor is a candidate state produced by one applicable action.
type successor[S domain.State] struct {
	action string
	state  S
}

func newSearch[S domain.State](e *Engine[S]) *search[S] {
	return &search[S]{
		engine:   e,
		visited:  newVisitedSet[S](),
		frontier: &frontier{},
	}
}

// seed records the start state as discovery 1 and enqueues it.
func (s *search[S]) seed(ctx context.Context, start S) error {
	rec, _, err := s.visited.discover(start, 0, "")
	if err != nil {
		return err
	}
	s.frontier.push(rec.Index)
	s.emitDiscover(ctx, rec)
	return nil
}

// run is the sequential breadth-first loop. It returns the index of the
// first dequeued goal state, or 0 when the frontier is exhausted.
func (s *search[S]) run(ctx context.Context, goal domain.Goal[S], actions []domain.Action[S]) (int, error) {
	for !s.frontier.empty() {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("search canceled after %d states: %w", s.visited.len(), err)
		}

		rec, err := s.visited.get(s.frontier.pop())
		if err != nil {
			return 0, err
		}
		if goal(rec.State) {
			return rec.Index, nil
		}

		s.emitExpand(ctx, rec.Index, s.frontier.len())
		next, err := expand(rec, actions)
		if err != nil {
			return 0, err
		}
		for _, succ := range next {
			if err := s.commit(ctx, rec.Index, succ); err != nil {
				return 0, err
			}
		}
	}
	return 0, nil
}

// expand applies every applicable action of the catalogue to rec's state.
// It only reads rec, so several expansions may run concurrently.
func expand[S domain.State](rec domain.Record[S], actions []domain.Action[S]) ([]successor[S], error) {
	var out []successor[S]
	for _, a := range actions {
		if !a.Applicable(rec.State) {
			continue
		}
		next, err := a.Apply(rec.State)
		if err != nil {
			return nil, fmt.Errorf("applying %q to state %d: %w", a.Label(), rec.Index, err)
		}
		out = append(out, successor[S]{action: a.Label(), state: next})
	}
	return out, nil
}

// commit inserts a candidate into the visited set. Novel states get a record
// and join the frontier; known states are discarded.
func (s *search[S]) commit(ctx context.Context, parent int, succ successor[S]) error {
	rec, isNew, err := s.visited.discover(succ.state, parent, succ.action)
	if err != nil {
		return err
	}
	s.emitTransition(ctx, parent, rec.Index, succ.action, !isNew)
	if !isNew {
		return nil
	}
	s.frontier.push(rec.Index)
	s.emitDiscover(ctx, rec)
	return nil
}

func (s *search[S]) finish(ctx context.Context, goalIndex int, elapsed time.Duration) (domain.Result[S], error) {
	res := domain.Result[S]{
		Outcome:  domain.OutcomeUnreachable,
		Explored: s.visited.records,
	}

	if goalIndex != 0 {
		steps, path, err := reconstruct(s.visited.records, goalIndex)
		if err != nil {
			return domain.Result[S]{}, err
		}
		res.Outcome = domain.OutcomeSolved
		res.Steps = steps
		res.Path = path
	}

	s.engine.logger.Info("search finished",
		"outcome", res.Outcome,
		"steps", len(res.Steps),
		"explored", len(res.Explored),
		"duration", elapsed,
	)
	if h := s.engine.hooks.OnFinish; h != nil {
		h(ctx, &domain.FinishEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFinish},
			Outcome:   res.Outcome,
			Steps:     len(res.Steps),
			Explored:  len(res.Explored),
			GoalIndex: goalIndex,
			Duration:  elapsed,
		})
	}
	return res, nil
}

func (s *search[S]) emitDiscover(ctx context.Context, rec domain.Record[S]) {
	s.engine.logger.Debug("state discovered", "index", rec.Index, "parent", rec.Parent, "action", rec.Action)
	if h := s.engine.hooks.OnDiscover; h != nil {
		h(ctx, &domain.DiscoverEvent{
			EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventDiscover},
			Index:       rec.Index,
			Description: rec.State.String(),
			Fingerprint: domain.FingerprintString(rec.State),
			Parent:      rec.Parent,
			Action:      rec.Action,
		})
	}
}

// emitExpand reports idx as expanded with pending states still queued behind it.
func (s *search[S]) emitExpand(ctx context.Context, idx, pending int) {
	if h := s.engine.hooks.OnExpand; h != nil {
		h(ctx, &domain.ExpandEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventExpand},
			Index:     idx,
			Frontier:  pending,
		})
	}
}

func (s *search[S]) emitTransition(ctx context.Context, from, to int, action string, discarded bool) {
	if h := s.engine.hooks.OnTransition; h != nil {
		h(ctx, &domain.TransitionEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTransition},
			From:      from,
			To:        to,
			Action:    action,
			Discarded: discarded,
		})
	}
}
