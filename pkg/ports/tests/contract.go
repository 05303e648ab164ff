package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/ports"
)

// PuzzleLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.PuzzleLoader.
// setupData maps every definition ID the loader holds to its expected "name" field.
func PuzzleLoaderContractTest(t *testing.T, loader ports.PuzzleLoader, setupData map[string]string) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetDefinition_Success", func(t *testing.T) {
		for id, expectedName := range setupData {
			def, err := loader.GetDefinition(ctx, id)
			if err != nil {
				t.Fatalf("unexpected error getting definition %s: %v", id, err)
			}
			if def["name"] != expectedName {
				t.Errorf("name mismatch for %s. got %v, want %q", id, def["name"], expectedName)
			}
		}
	})

	t.Run("GetDefinition_NotFound", func(t *testing.T) {
		_, err := loader.GetDefinition(ctx, "non-existent-puzzle")
		if !errors.Is(err, domain.ErrPuzzleNotFound) {
			t.Errorf("expected ErrPuzzleNotFound for non-existent definition, got %v", err)
		}
	})

	t.Run("ListDefinitions", func(t *testing.T) {
		ids, err := loader.ListDefinitions(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing definitions: %v", err)
		}

		found := make(map[string]bool)
		for _, id := range ids {
			found[id] = true
		}
		for id := range setupData {
			if !found[id] {
				t.Errorf("expected definition %s to be listed", id)
			}
		}
	})
}
