package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/statespace/pkg/adapters/file"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/ports"
)

// Ensure Store implements PlanStore
var _ ports.PlanStore = (*file.Store)(nil)

func TestFileStore_Contract(t *testing.T) {
	ports.RunPlanStoreContract(t, file.New(t.TempDir()))
}

func TestFileStore_Layout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "plans")
	store := file.New(dir)
	ctx := context.Background()

	plans, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans, "a missing directory holds no plans")

	report := &domain.Report{Puzzle: "river", Outcome: domain.OutcomeSolved, Steps: []string{"pickup Goose"}}
	require.NoError(t, store.Save(ctx, "river", report))
	require.NoError(t, store.Save(ctx, "river", report))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files are cleaned up")
	assert.Equal(t, "river.json", entries[0].Name())
}

func TestFileStore_RejectsUnsafeIDs(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"", "..", "../escape", `a\b`} {
		assert.Error(t, store.Save(ctx, id, &domain.Report{}), "id %q", id)
		_, err := store.Load(ctx, id)
		assert.Error(t, err, "id %q", id)
	}
}

func TestFileStore_CorruptedPlan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	_, err := file.New(dir).Load(context.Background(), "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPlanNotFound)
}
