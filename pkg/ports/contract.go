package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/statespace/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractReport(puzzleID string) *domain.Report {
	return &domain.Report{
		Puzzle:   puzzleID,
		Start:    "fgb L",
		Outcome:  domain.OutcomeSolved,
		Steps:    []string{"pickup Goose", "boat to the right shore", "drop Goose"},
		Explored: 28,
		Duration: 1500 * time.Microsecond,
		SolvedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Graph: &domain.Graph{
			Nodes: []domain.GraphNode{{Index: 1, Description: "fgb L", Start: true}, {Index: 2, Description: "fb L w/G", Goal: true}},
			Edges: []domain.GraphEdge{{From: 1, To: 2, Action: "pickup Goose"}},
		},
	}
}

// RunPlanStoreContract runs a suite of tests to verify that a PlanStore implementation
// adheres to the defined interface contract.
func RunPlanStoreContract(t *testing.T, store PlanStore) {
	ctx := context.Background()
	puzzleID := "contract-test-puzzle-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		report := contractReport(puzzleID)

		err := store.Save(ctx, puzzleID, report)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, puzzleID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, report.Outcome, loaded.Outcome)
		assert.Equal(t, report.Steps, loaded.Steps)
		assert.Equal(t, report.Explored, loaded.Explored)
		assert.Equal(t, report.Duration, loaded.Duration)
		assert.True(t, report.SolvedAt.Equal(loaded.SolvedAt))
		require.NotNil(t, loaded.Graph)
		assert.Equal(t, report.Graph.Edges, loaded.Graph.Edges)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		report := contractReport(puzzleID)
		report.Outcome = domain.OutcomeUnreachable
		report.Steps = []string{}
		require.NoError(t, store.Save(ctx, puzzleID, report))

		loaded, err := store.Load(ctx, puzzleID)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeUnreachable, loaded.Outcome)
		assert.Empty(t, loaded.Steps)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+puzzleID)
		assert.ErrorIs(t, err, domain.ErrPlanNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, puzzleID, contractReport(puzzleID))
		require.NoError(t, err)

		err = store.Delete(ctx, puzzleID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, puzzleID)
		assert.ErrorIs(t, err, domain.ErrPlanNotFound, "Load after Delete should return ErrPlanNotFound")

		assert.NoError(t, store.Delete(ctx, puzzleID), "Deleting twice is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := puzzleID + "-1"
		id2 := puzzleID + "-2"
		_ = store.Save(ctx, id1, contractReport(id1))
		_ = store.Save(ctx, id2, contractReport(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		plans, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, plans, id1)
		assert.Contains(t, plans, id2)
	})
}
