package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	GetByManagerID(ctx context.Context, managerID string) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	UpdateLeaveBalance(ctx context.Context, id string, balance LeaveBalance) error
	Delete(ctx context.Context, id string) error
}
