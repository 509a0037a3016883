package payslip

import "context"

// PayslipService defines business logic for payroll generation.
type PayslipService interface {
	// Create runs the payroll calculator for the requested period and
	// persists the resulting payslip.
	Create(ctx context.Context, req CreatePayslipRequest) (PayslipResponse, error)

	GetByID(ctx context.Context, id string) (PayslipResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error)
	GetAll(ctx context.Context) ([]PayslipResponse, error)

	// Update recalculates pay amounts unless the request is status-only.
	Update(ctx context.Context, req UpdatePayslipRequest) (PayslipResponse, error)
	PatchStatus(ctx context.Context, req PatchStatusRequest) (PayslipResponse, error)
	Delete(ctx context.Context, id string) error
}
