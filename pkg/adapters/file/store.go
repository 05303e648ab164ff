package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/statespace/pkg/domain"
)

// Store implements ports.PlanStore using the local filesystem.
// Each plan is an indented JSON file named after its puzzle ID.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".statespace/plans".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".statespace", "plans")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(puzzleID string) (string, error) {
	if puzzleID == "" {
		return "", errors.New("puzzleID cannot be empty")
	}
	if strings.ContainsAny(puzzleID, `/\`) || puzzleID == "." || puzzleID == ".." {
		return "", fmt.Errorf("invalid puzzleID %q", puzzleID)
	}
	return filepath.Join(s.BasePath, puzzleID+".json"), nil
}

// Save persists the report atomically: it is written to a temporary file in
// the same directory, synced, and renamed over the previous plan.
func (s *Store) Save(ctx context.Context, puzzleID string, report *domain.Report) error {
	destPath, err := s.path(puzzleID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure plan directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+puzzleID+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		// Windows refuses to rename over an existing file.
		if rmErr := os.Remove(destPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			return fmt.Errorf("failed to replace plan file: %w", err)
		}
		if err := os.Rename(tmpPath, destPath); err != nil {
			return fmt.Errorf("failed to rename temp file: %w", err)
		}
	}
	return nil
}

// Load reads the plan of a puzzle.
func (s *Store) Load(ctx context.Context, puzzleID string) (*domain.Report, error) {
	filePath, err := s.path(puzzleID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlanNotFound, puzzleID)
		}
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}
	return &report, nil
}

// Delete removes the plan file. Missing plans are not an error.
func (s *Store) Delete(ctx context.Context, puzzleID string) error {
	filePath, err := s.path(puzzleID)
	if err != nil {
		return err
	}
	if err := os.Remove(filePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete plan file: %w", err)
	}
	return nil
}

// List returns the IDs of the stored plans, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	plans := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, "tmp-") {
			continue
		}
		plans = append(plans, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(plans)
	return plans, nil
}
