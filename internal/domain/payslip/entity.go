package payslip

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
)

// Status enum
type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusPaid     Status = "paid"
)

// Payslip is a generated pay statement for one employee and pay period.
// At most one payslip exists per (employee, period start, period end),
// enforced by a unique constraint at the storage layer.
type Payslip struct {
	ID             string
	EmployeeID     string
	PayslipNumber  string
	PayPeriodStart time.Time
	PayPeriodEnd   time.Time
	RegularHours   decimal.Decimal
	OvertimeHours  decimal.Decimal
	Wage           decimal.Decimal
	OvertimeRate   decimal.Decimal
	GrossPay       decimal.Decimal
	Deductions     employee.Deductions
	NetPay         decimal.Decimal
	FinalBill      decimal.Decimal
	Status         Status
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	EmployeeName *string
}

// PayCalculation is the result of running the payroll calculator; it is
// folded into a Payslip on creation or recalculation.
type PayCalculation struct {
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	RequiredHours decimal.Decimal
	HourlyRate    decimal.Decimal
	OvertimeRate  decimal.Decimal
	WageAmount    decimal.Decimal
	GrossPay      decimal.Decimal
	Deductions    employee.Deductions
	NetPay        decimal.Decimal
	FinalBill     decimal.Decimal
}
