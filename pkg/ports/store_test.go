package ports_test

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"testing"

	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/ports"
)

// MockStore is a JSON-round-tripping implementation of PlanStore for testing purposes.
type MockStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMockStore() *MockStore {
	return &MockStore{
		data: make(map[string][]byte),
	}
}

func (m *MockStore) Save(ctx context.Context, puzzleID string, report *domain.Report) error {
	// Serialize to simulate a real backend
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[puzzleID] = data
	return nil
}

func (m *MockStore) Load(ctx context.Context, puzzleID string) (*domain.Report, error) {
	m.mu.Lock()
	data, ok := m.data[puzzleID]
	m.mu.Unlock()
	if !ok {
		return nil, domain.ErrPlanNotFound
	}
	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (m *MockStore) Delete(ctx context.Context, puzzleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, puzzleID)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func TestPlanStore_Contract(t *testing.T) {
	ports.RunPlanStoreContract(t, NewMockStore())
}
