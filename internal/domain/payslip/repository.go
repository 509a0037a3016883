package payslip

import "context"

// PayslipRepository defines data access methods for payslips. Create relies
// on a unique constraint over (employee_id, pay_period_start, pay_period_end)
// and reports conflicts as ErrPayslipExists.
type PayslipRepository interface {
	Create(ctx context.Context, p Payslip) (Payslip, error)
	GetByID(ctx context.Context, id string) (Payslip, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	GetAll(ctx context.Context) ([]Payslip, error)

	// LastNumberForPrefix returns the highest payslip number starting with
	// the given prefix, or "" when none exists.
	LastNumberForPrefix(ctx context.Context, prefix string) (string, error)

	Update(ctx context.Context, p Payslip) error
	UpdateStatus(ctx context.Context, id string, status Status) (Payslip, error)
	Delete(ctx context.Context, id string) error
}
