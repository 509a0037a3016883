package leave

import "context"

// LeaveService defines business logic for leave requests.
type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	GetPendingByManager(ctx context.Context, managerID string) ([]LeaveRequestResponse, error)
	GetAll(ctx context.Context) ([]LeaveRequestResponse, error)

	// Decide approves or rejects a pending request. Approval deducts the
	// requested days from the employee's leave balance.
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)
}
