package leave

import "context"

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	GetPendingByManager(ctx context.Context, managerID string) ([]LeaveRequest, error)
	GetAll(ctx context.Context) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status) (LeaveRequest, error)
}
