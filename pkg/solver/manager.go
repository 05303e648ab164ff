package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/statespace/internal/logging"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/ports"
	"github.com/aretw0/statespace/pkg/registry"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates puzzle solving, ensuring each puzzle is searched once.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	registry *registry.Registry
	store    ports.PlanStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	locker   ports.DistributedLocker // Optional distributed locker
	lockTTL  time.Duration
	logger   *slog.Logger
	solve    registry.SolveOptions
	hooksFor func(puzzleID string) domain.LifecycleHooks
}

var _ ports.Solver = (*Manager)(nil)

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking, held for at most ttl per search.
func WithLocker(locker ports.DistributedLocker, ttl time.Duration) Option {
	return func(m *Manager) {
		m.locker = locker
		if ttl > 0 {
			m.lockTTL = ttl
		}
	}
}

// WithLogger configures a logger for the Manager and the searches it runs.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
		m.solve.Logger = logger
	}
}

// WithLifecycleHooks attaches hooks (e.g. metrics) to every search.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Manager) {
		m.solve.Hooks = hooks
	}
}

// WithPuzzleHooks attaches hooks built per puzzle, such as metrics labeled
// with the puzzle ID.
func WithPuzzleHooks(fn func(puzzleID string) domain.LifecycleHooks) Option {
	return func(m *Manager) {
		m.hooksFor = fn
	}
}

// WithWorkers sets the per-search expansion parallelism.
func WithWorkers(n int) Option {
	return func(m *Manager) {
		m.solve.Workers = n
	}
}

// NewManager creates a new Manager over a puzzle catalogue and a plan store.
func NewManager(reg *registry.Registry, store ports.PlanStore, opts ...Option) *Manager {
	m := &Manager{
		registry: reg,
		store:    store,
		locks:    make(map[string]*lockEntry),
		lockTTL:  30 * time.Second,
		logger:   logging.NewNop(), // Default to no-op
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(puzzleID) after unlocking.
func (m *Manager) acquire(puzzleID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[puzzleID]
	if !exists {
		entry = &lockEntry{}
		m.locks[puzzleID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(puzzleID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[puzzleID]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, puzzleID)
	}
}

// Puzzles lists the catalogue.
func (m *Manager) Puzzles() []ports.PuzzleInfo {
	return m.registry.List()
}

// Solve returns the stored plan of a puzzle, searching and storing it first
// when there is none. Unreachable goals are stored too: they are plans with
// an "unreachable" outcome.
func (m *Manager) Solve(ctx context.Context, puzzleID string) (*domain.Report, error) {
	puzzle, err := m.registry.Get(puzzleID)
	if err != nil {
		return nil, err
	}

	var report *domain.Report
	err = m.WithLock(ctx, puzzleID, func(ctx context.Context) error {
		report, err = m.store.Load(ctx, puzzleID)
		if err == nil {
			m.logger.Debug("plan served from store", "puzzle", puzzleID)
			return nil
		}
		if !errors.Is(err, domain.ErrPlanNotFound) {
			return fmt.Errorf("failed to check stored plan: %w", err)
		}

		opts := m.solve
		if m.hooksFor != nil {
			opts.Hooks = domain.MergeHooks(opts.Hooks, m.hooksFor(puzzleID))
		}
		report, err = puzzle.Solve(ctx, opts)
		if err != nil {
			return err
		}
		if err := m.store.Save(ctx, puzzleID, report); err != nil {
			return fmt.Errorf("failed to store plan: %w", err)
		}
		return nil
	})
	return report, err
}

// Plan returns the stored plan without searching.
func (m *Manager) Plan(ctx context.Context, puzzleID string) (*domain.Report, error) {
	if _, err := m.registry.Get(puzzleID); err != nil {
		return nil, err
	}
	return m.store.Load(ctx, puzzleID)
}

// Invalidate drops the stored plan so that the next Solve searches again.
func (m *Manager) Invalidate(ctx context.Context, puzzleID string) error {
	return m.WithLock(ctx, puzzleID, func(ctx context.Context) error {
		return m.store.Delete(ctx, puzzleID)
	})
}

// Watch reloads changed definitions from loader and invalidates their plans
// until ctx is done.
func (m *Manager) Watch(ctx context.Context, loader ports.PuzzleLoader, watcher ports.Watchable) error {
	events, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}
	for id := range events {
		if err := m.registry.LoadOne(ctx, loader, id); err != nil {
			m.logger.Warn("failed to reload puzzle", "puzzle", id, "err", err)
			continue
		}
		if err := m.Invalidate(ctx, id); err != nil {
			m.logger.Warn("failed to invalidate plan", "puzzle", id, "err", err)
			continue
		}
		m.logger.Info("puzzle reloaded", "puzzle", id)
	}
	return ctx.Err()
}

// WithLock executes a function while holding the lock for the puzzle.
func (m *Manager) WithLock(ctx context.Context, puzzleID string, fn func(context.Context) error) error {
	entry := m.acquire(puzzleID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(puzzleID)
	}()

	// Distributed Locking
	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, puzzleID, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"puzzle", puzzleID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
