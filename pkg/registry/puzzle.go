package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/statespace"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/observability"
)

// Problem is a concrete search problem over states of type S.
type Problem[S domain.State] interface {
	Name() string
	Summary() string
	Start() S
	Goal() domain.Goal[S]
	Actions() []domain.Action[S]
}

// SolveOptions configures one search of a registered puzzle.
type SolveOptions struct {
	Logger  *slog.Logger
	Hooks   domain.LifecycleHooks
	Workers int
}

// Puzzle is a registered problem with its state type erased, so that
// puzzles of different domains can share one catalogue.
type Puzzle interface {
	ID() string
	Summary() string
	Solve(ctx context.Context, opts SolveOptions) (*domain.Report, error)
}

// Adapt wraps a typed problem into a Puzzle.
func Adapt[S domain.State](p Problem[S]) Puzzle {
	return &problemPuzzle[S]{problem: p}
}

type problemPuzzle[S domain.State] struct {
	problem Problem[S]
}

func (p *problemPuzzle[S]) ID() string      { return p.problem.Name() }
func (p *problemPuzzle[S]) Summary() string { return p.problem.Summary() }

// Solve searches the problem and returns a report with the exploration graph attached.
func (p *problemPuzzle[S]) Solve(ctx context.Context, opts SolveOptions) (*domain.Report, error) {
	rec := observability.NewRecorder()
	var elapsed time.Duration
	timing := domain.LifecycleHooks{
		OnFinish: func(_ context.Context, e *domain.FinishEvent) { elapsed = e.Duration },
	}

	planOpts := []statespace.Option{
		statespace.WithName(p.ID()),
		statespace.WithWorkers(opts.Workers),
		statespace.WithLifecycleHooks(domain.MergeHooks(rec.Hooks(), timing, opts.Hooks)),
	}
	if opts.Logger != nil {
		planOpts = append(planOpts, statespace.WithLogger(opts.Logger))
	}

	start := p.problem.Start()
	res, err := statespace.New[S](planOpts...).Solve(ctx, start, p.problem.Goal(), p.problem.Actions())
	if err != nil {
		return nil, err
	}

	report := domain.NewReport(p.ID(), start, res)
	report.Duration = elapsed
	report.SolvedAt = time.Now().UTC()
	report.Graph = rec.Graph()
	return report, nil
}
