package employee

import "context"

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter Filter) (ListEmployeeResponse, error)
	ListByManager(ctx context.Context, managerID string) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
