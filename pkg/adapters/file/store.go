package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/sofakit/pkg/plan"
	"github.com/aretw0/sofakit/pkg/ports"
)

// Store implements ports.PlanStore using the local filesystem.
// It stores plans as indented JSON files in a configured directory.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".sofakit/plans".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".sofakit", "plans")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.BasePath, name+".json")
}

// Save persists the plan to a JSON file atomically.
// It writes to a temporary file first, syncs it and then renames it to the
// destination.
func (s *Store) Save(ctx context.Context, name string, p *plan.Plan) error {
	if err := ports.ValidatePlanName(name); err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure plan directory: %w", err)
	}

	data, err := p.Marshal(plan.FormatJSON)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	// Same directory as the destination, so the rename stays on one filesystem
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+name+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(name)); err != nil {
		return fmt.Errorf("failed to rename temp file to plan: %w", err)
	}
	return nil
}

// Load reads a plan from its JSON file.
func (s *Store) Load(ctx context.Context, name string) (*plan.Plan, error) {
	if err := ports.ValidatePlanName(name); err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}

	f, err := os.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	defer f.Close()

	var p plan.Plan
	if err := json.NewDecoder(f).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan %q: %w", name, err)
	}
	return &p, nil
}

// Delete removes the plan file.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ports.ValidatePlanName(name); err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}

	err := os.Remove(s.path(name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete plan file: %w", err)
	}
	return nil
}

// List returns the names of all stored plans.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, "tmp-") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(names)
	return names, nil
}
