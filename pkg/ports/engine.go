package ports

import (
	"context"

	"github.com/aretw0/statespace/pkg/domain"
)

// PuzzleInfo is the catalogue entry of a solvable puzzle.
type PuzzleInfo struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
}

// Solver is the primary interface used by adapters (e.g., HTTP, MCP).
// It hides the concrete state types behind type-erased reports.
type Solver interface {
	// Puzzles lists the registered puzzles, sorted by ID.
	Puzzles() []PuzzleInfo

	// Solve returns the plan of a puzzle, searching only when no plan is stored
	// yet. Returns domain.ErrPuzzleNotFound for unknown IDs.
	Solve(ctx context.Context, puzzleID string) (*domain.Report, error)

	// Plan returns a stored plan without searching.
	// Returns domain.ErrPlanNotFound if the puzzle was never solved.
	Plan(ctx context.Context, puzzleID string) (*domain.Report, error)
}
