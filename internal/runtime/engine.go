package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/statespace/internal/logging"
	"github.com/aretw0/statespace/pkg/domain"
)

// Engine is the breadth-first search core.
//
// An Engine only carries configuration. Every call to Solve allocates its own
// frontier and visited set, so one Engine may serve concurrent searches.
type Engine[S domain.State] struct {
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	workers int
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	workers int
}

// WithLogger sets the structured logger used for search diagnostics.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(c *engineConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(c *engineConfig) {
		c.hooks = hooks
	}
}

// WithWorkers enables layer-parallel expansion with at most n goroutines.
// Values below 2 keep the sequential loop.
func WithWorkers(n int) EngineOption {
	return func(c *engineConfig) {
		c.workers = n
	}
}

// NewEngine creates a search engine for states of type S.
func NewEngine[S domain.State](opts ...EngineOption) *Engine[S] {
	cfg := engineConfig{
		logger:  logging.NewNop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine[S]{
		logger:  cfg.logger.With("component", "search"),
		hooks:   cfg.hooks,
		workers: cfg.workers,
	}
}

// Solve explores the states reachable from start until one satisfies goal.
//
// Actions are tried in catalogue order against every expanded state, which
// fixes which of several equally short solutions is returned. An exhausted
// frontier is a normal outcome (domain.OutcomeUnreachable, nil error); errors
// are reserved for invalid input, cancellation, precondition violations and
// corrupted bookkeeping.
func (e *Engine[S]) Solve(ctx context.Context, start S, goal domain.Goal[S], actions []domain.Action[S]) (domain.Result[S], error) {
	if err := validateProblem(goal, actions); err != nil {
		return domain.Result[S]{}, err
	}

	began := time.Now()
	s := newSearch(e)
	if err := s.seed(ctx, start); err != nil {
		return domain.Result[S]{}, err
	}

	var (
		goalIndex int
		err       error
	)
	if e.workers > 1 {
		goalIndex, err = s.runLayered(ctx, goal, actions)
	} else {
		goalIndex, err = s.run(ctx, goal, actions)
	}
	if err != nil {
		e.logger.Debug("search aborted", "explored", s.visited.len(), "err", err)
		return domain.Result[S]{}, err
	}

	return s.finish(ctx, goalIndex, time.Since(began))
}

func validateProblem[S domain.State](goal domain.Goal[S], actions []domain.Action[S]) error {
	if goal == nil {
		return fmt.Errorf("%w: goal predicate is nil", domain.ErrInvalidProblem)
	}
	for i, a := range actions {
		if a == nil {
			return fmt.Errorf("%w: action %d is nil", domain.ErrInvalidProblem, i)
		}
	}
	return nil
}
