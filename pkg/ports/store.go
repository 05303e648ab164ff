package ports

import (
	"context"

	"github.com/aretw0/statespace/pkg/domain"
)

// PlanStore defines the interface for persisting search reports.
type PlanStore interface {
	// Save persists the report for a given puzzle ID, replacing any previous one.
	Save(ctx context.Context, puzzleID string, report *domain.Report) error

	// Load retrieves the report for a given puzzle ID.
	// Returns domain.ErrPlanNotFound if no plan has been stored.
	Load(ctx context.Context, puzzleID string) (*domain.Report, error)

	// Delete removes the report for a given puzzle ID.
	Delete(ctx context.Context, puzzleID string) error

	// List returns the IDs of every stored plan.
	List(ctx context.Context) ([]string, error)
}
