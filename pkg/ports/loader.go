package ports

import "context"

// PuzzleLoader defines how puzzle definitions are retrieved.
// This allows the storage layer (Loam, FS, Memory) to be decoupled.
type PuzzleLoader interface {
	// GetDefinition retrieves the raw definition of a puzzle by ID, as generic
	// metadata that the puzzle package decodes and validates.
	// Returns domain.ErrPuzzleNotFound if the ID is unknown.
	GetDefinition(ctx context.Context, id string) (map[string]any, error)

	// ListDefinitions returns the IDs of every available definition.
	ListDefinitions(ctx context.Context) ([]string, error)
}

// Watchable defines an interface for loaders that can notify about backend changes.
// Solvers use it to drop cached plans whose definition was edited.
type Watchable interface {
	// Watch returns a channel that receives the ID of every changed definition.
	Watch(ctx context.Context) (<-chan string, error)
}
