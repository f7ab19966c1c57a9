package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/sofakit/pkg/plan"
	"github.com/aretw0/sofakit/pkg/ports"
)

// Store implements ports.PlanStore in memory.
// Plans are kept encoded, so callers never share state with the store.
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

// Save stores the plan in memory.
func (s *Store) Save(ctx context.Context, name string, p *plan.Plan) error {
	if err := ports.ValidatePlanName(name); err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = data
	return nil
}

// Load retrieves a plan from memory.
func (s *Store) Load(ctx context.Context, name string) (*plan.Plan, error) {
	s.mu.RLock()
	data, ok := s.data[name]
	s.mu.RUnlock()

	if !ok {
		return nil, ports.ErrPlanNotFound
	}
	return plan.Unmarshal(data, plan.FormatJSON)
}

// Delete removes a plan.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the stored plan names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
