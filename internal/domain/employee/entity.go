package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         Role
	Phone        string
	Address      *string
	City         *string
	Country      *string
	ManagerID    *string
	PositionID   *string
	DepartmentID *string
	HireDate     time.Time
	Compensation Compensation
	Deductions   Deductions
	LeaveBalance LeaveBalance
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	ManagerName *string
}

type Role string

const (
	RoleEmployee Role = "Employee"
	RoleManager  Role = "Manager"
	RoleAdmin    Role = "Admin"
)

type PayPeriod string

const (
	PayPeriodMonthly PayPeriod = "Monthly"
	PayPeriodAnnual  PayPeriod = "Annual"
)

// Compensation is the employee's wage basis. Wage is interpreted against
// PayPeriod: a monthly amount or an annual amount.
type Compensation struct {
	Wage      decimal.Decimal
	PayPeriod PayPeriod
}

// Deductions is the per-paycheck deduction breakdown. Stored on the employee
// as defaults and copied (possibly overridden) onto each payslip.
type Deductions struct {
	Tax            decimal.Decimal
	SocialSecurity decimal.Decimal
	Medicare       decimal.Decimal
	Insurance      decimal.Decimal
	Retirement     decimal.Decimal
}

// Total sums every deduction field.
func (d Deductions) Total() decimal.Decimal {
	return d.Tax.
		Add(d.SocialSecurity).
		Add(d.Medicare).
		Add(d.Insurance).
		Add(d.Retirement)
}

// DeductionsOverride carries per-field replacements; a nil field keeps the
// employee's stored default.
type DeductionsOverride struct {
	Tax            *decimal.Decimal `json:"tax,omitempty"`
	SocialSecurity *decimal.Decimal `json:"social_security,omitempty"`
	Medicare       *decimal.Decimal `json:"medicare,omitempty"`
	Insurance      *decimal.Decimal `json:"insurance,omitempty"`
	Retirement     *decimal.Decimal `json:"retirement,omitempty"`
}

// Merge applies the override on top of the defaults, field by field.
func (d Deductions) Merge(override *DeductionsOverride) Deductions {
	if override == nil {
		return d
	}
	merged := d
	if override.Tax != nil {
		merged.Tax = *override.Tax
	}
	if override.SocialSecurity != nil {
		merged.SocialSecurity = *override.SocialSecurity
	}
	if override.Medicare != nil {
		merged.Medicare = *override.Medicare
	}
	if override.Insurance != nil {
		merged.Insurance = *override.Insurance
	}
	if override.Retirement != nil {
		merged.Retirement = *override.Retirement
	}
	return merged
}

type LeaveBalance struct {
	Annual int
	Sick   int
}
