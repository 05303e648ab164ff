package registry

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/ports"
	"github.com/aretw0/statespace/pkg/puzzles/river"
)

// Registry manages the available puzzles.
type Registry struct {
	mu      sync.RWMutex
	puzzles map[string]Puzzle
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		puzzles: make(map[string]Puzzle),
	}
}

// Default returns a registry holding the built-in puzzles.
func Default() *Registry {
	r := NewRegistry()
	r.Register(Adapt(river.Default()))
	return r
}

// Register adds a puzzle to the registry.
// If a puzzle with the same ID exists, it is overwritten.
func (r *Registry) Register(p Puzzle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.puzzles[p.ID()] = p
}

// Get looks up a puzzle by ID.
func (r *Registry) Get(id string) (Puzzle, error) {
	r.mu.RLock()
	p, ok := r.puzzles[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPuzzleNotFound, id)
	}
	return p, nil
}

// List returns the catalogue sorted by ID.
func (r *Registry) List() []ports.PuzzleInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]ports.PuzzleInfo, 0, len(r.puzzles))
	for id, p := range r.puzzles {
		infos = append(infos, ports.PuzzleInfo{ID: id, Summary: p.Summary()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Load registers every definition provided by loader, keyed by its loader ID.
func (r *Registry) Load(ctx context.Context, loader ports.PuzzleLoader) error {
	ids, err := loader.ListDefinitions(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := r.LoadOne(ctx, loader, id); err != nil {
			return err
		}
	}
	return nil
}

// LoadOne (re)registers a single definition.
func (r *Registry) LoadOne(ctx context.Context, loader ports.PuzzleLoader, id string) error {
	raw, err := loader.GetDefinition(ctx, id)
	if err != nil {
		return err
	}

	p, err := Decode(id, raw)
	if err != nil {
		return fmt.Errorf("puzzle %s: %w", id, err)
	}
	r.Register(p)
	return nil
}

// Decode builds a Puzzle from raw definition metadata, dispatching on "kind".
// The registered ID is the loader ID, whatever the definition's name.
func Decode(id string, raw map[string]any) (Puzzle, error) {
	kind, _ := raw["kind"].(string)
	switch kind {
	case "", "river":
		raw = maps.Clone(raw)
		raw["name"] = id
		def, err := river.Decode(raw)
		if err != nil {
			return nil, err
		}
		p, err := river.New(def)
		if err != nil {
			return nil, err
		}
		return Adapt(p), nil
	}
	return nil, fmt.Errorf("%w: unknown puzzle kind %q", domain.ErrInvalidProblem, kind)
}
