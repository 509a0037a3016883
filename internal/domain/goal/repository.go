package goal

import "context"

// GoalRepository defines data access methods for goals and their modules.
type GoalRepository interface {
	Create(ctx context.Context, g Goal) (Goal, error)
	GetByID(ctx context.Context, id string) (Goal, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]Goal, error)
	GetByAssigner(ctx context.Context, assignerID string) ([]Goal, error)

	// Update persists the goal's fields plus the full module checklist.
	Update(ctx context.Context, g Goal) error
	Delete(ctx context.Context, id string) error
}
