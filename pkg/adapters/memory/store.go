package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/statespace/pkg/domain"
)

// Store implements ports.PlanStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Save persists the report in memory.
// Reports are kept serialized, so later changes to the argument are not visible.
func (s *Store) Save(ctx context.Context, puzzleID string, report *domain.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[puzzleID] = data
	return nil
}

// Load retrieves the report from memory.
func (s *Store) Load(ctx context.Context, puzzleID string) (*domain.Report, error) {
	s.mu.RLock()
	data, ok := s.data[puzzleID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrPlanNotFound
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}
	return &report, nil
}

// Delete removes the report from memory.
func (s *Store) Delete(ctx context.Context, puzzleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, puzzleID)
	return nil
}

// List returns the stored puzzle IDs in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids) // Deterministic order
	return ids, nil
}
