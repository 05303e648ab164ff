package statespace

import (
	"context"
	"log/slog"

	"github.com/aretw0/statespace/internal/runtime"
	"github.com/aretw0/statespace/pkg/domain"
)

// Planner is the high-level entry point of the library.
// It wraps the internal search runtime and provides a simplified API for consumers.
type Planner[S domain.State] struct {
	engine *runtime.Engine[S]
	Name   string
}

// Option defines a functional option for configuring a Planner.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	workers int
	name    string
}

// WithLogger sets a custom structured logger for the planner.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithWorkers expands each breadth-first layer with up to n goroutines.
// The result is identical to the sequential search.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithName labels the planner; the name is attached to every log line.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// New creates a Planner for states of type S.
func New[S domain.State](opts ...Option) *Planner[S] {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(o.hooks),
		runtime.WithWorkers(o.workers),
	}
	// Enrich logger with the planner name if available
	if o.logger != nil {
		if o.name != "" {
			o.logger = o.logger.With("puzzle", o.name)
		}
		runtimeOpts = append(runtimeOpts, runtime.WithLogger(o.logger))
	}

	return &Planner[S]{
		engine: runtime.NewEngine[S](runtimeOpts...),
		Name:   o.name,
	}
}

// Solve runs a breadth-first search from start and returns the shortest
// sequence of actions reaching a state accepted by goal.
//
// An unreachable goal is reported through Result.Outcome, not as an error.
func (p *Planner[S]) Solve(ctx context.Context, start S, goal domain.Goal[S], actions []domain.Action[S]) (domain.Result[S], error) {
	return p.engine.Solve(ctx, start, goal, actions)
}

// Replay re-applies a solution to start and returns the state it ends in.
// It fails if a label is unknown or an action is not applicable when reached.
func Replay[S domain.State](start S, actions []domain.Action[S], steps []string) (S, error) {
	return runtime.Replay(start, actions, steps)
}
