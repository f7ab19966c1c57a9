package ports

import (
	"context"
	"errors"

	"github.com/aretw0/sofakit/pkg/plan"
)

// ErrPlanNotFound is returned when no plan is stored under a name.
var ErrPlanNotFound = errors.New("plan not found")

// ErrInvalidPlanName is returned for names that cannot be used as keys.
var ErrInvalidPlanName = errors.New("invalid plan name")

// PlanStore persists plans by name.
type PlanStore interface {
	// Save stores p under name, replacing any previous plan.
	Save(ctx context.Context, name string, p *plan.Plan) error

	// Load retrieves the plan stored under name.
	// Returns ErrPlanNotFound if there is none.
	Load(ctx context.Context, name string) (*plan.Plan, error)

	// Delete removes the plan. Deleting a missing plan is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored plan names, sorted.
	List(ctx context.Context) ([]string, error)
}

// ValidatePlanName rejects names that are empty or contain path separators
// or whitespace.
func ValidatePlanName(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrInvalidPlanName
	}
	for _, r := range name {
		switch {
		case r == '/' || r == '\\' || r == ':':
			return ErrInvalidPlanName
		case r <= ' ' || r == 0x7f:
			return ErrInvalidPlanName
		}
	}
	return nil
}
