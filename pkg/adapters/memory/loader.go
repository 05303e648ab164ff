package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/statespace/pkg/domain"
)

// Loader implements ports.PuzzleLoader using an in-memory map.
type Loader struct {
	defs map[string]map[string]any
}

// NewLoader creates a new Loader with the provided definitions, keyed by ID.
func NewLoader(defs map[string]map[string]any) *Loader {
	copied := make(map[string]map[string]any, len(defs))
	for id, def := range defs {
		copied[id] = maps.Clone(def)
	}
	return &Loader{defs: copied}
}

// NewFromYAML creates a new Loader from raw YAML documents, keyed by ID.
// This handles parsing automatically, improving DX for tests.
func NewFromYAML(docs map[string]string) (*Loader, error) {
	defs := make(map[string]map[string]any, len(docs))
	for id, doc := range docs {
		var def map[string]any
		if err := yaml.Unmarshal([]byte(doc), &def); err != nil {
			return nil, fmt.Errorf("failed to parse definition %s: %w", id, err)
		}
		defs[id] = def
	}
	return &Loader{defs: defs}, nil
}

// GetDefinition retrieves the raw definition of a puzzle by ID.
func (l *Loader) GetDefinition(ctx context.Context, id string) (map[string]any, error) {
	def, ok := l.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPuzzleNotFound, id)
	}
	return maps.Clone(def), nil
}

// ListDefinitions returns all available definition IDs.
func (l *Loader) ListDefinitions(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(l.defs))
	for k := range l.defs {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
