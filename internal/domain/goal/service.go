package goal

import "context"

// GoalService defines business logic for goal assignment and progress.
type GoalService interface {
	Assign(ctx context.Context, req AssignGoalRequest) (GoalResponse, error)
	GetByID(ctx context.Context, id string) (GoalResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]GoalResponse, error)
	GetByAssigner(ctx context.Context, assignerID string) ([]GoalResponse, error)

	// UpdateModuleStatus flips one module and recomputes goal progress and
	// status. Only the assigned employee may update.
	UpdateModuleStatus(ctx context.Context, req UpdateModuleStatusRequest) (GoalResponse, error)
	Delete(ctx context.Context, id string) error
}
