package payslip

import (
	"github.com/shopspring/decimal"
	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type CreatePayslipRequest struct {
	EmployeeID     string                       `json:"employee_id"`
	PayPeriodStart string                       `json:"pay_period_start"` // YYYY-MM-DD
	PayPeriodEnd   string                       `json:"pay_period_end"`   // YYYY-MM-DD
	OvertimeRate   *decimal.Decimal             `json:"overtime_rate,omitempty"`
	Deductions     *employee.DeductionsOverride `json:"deductions,omitempty"`
	Notes          *string                      `json:"notes,omitempty"`
}

func (r *CreatePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.PayPeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.PayPeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && !start.Before(end) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be after pay_period_start"})
	}
	if r.OvertimeRate != nil && r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePayslipRequest recalculates pay unless it is a pure status change.
type UpdatePayslipRequest struct {
	ID             string
	Status         *string                      `json:"status,omitempty"`
	PayPeriodStart *string                      `json:"pay_period_start,omitempty"`
	PayPeriodEnd   *string                      `json:"pay_period_end,omitempty"`
	OvertimeRate   *decimal.Decimal             `json:"overtime_rate,omitempty"`
	Deductions     *employee.DeductionsOverride `json:"deductions,omitempty"`
	Notes          *string                      `json:"notes,omitempty"`
}

// StatusOnly reports whether the update touches nothing but the status,
// in which case recalculation is skipped.
func (r *UpdatePayslipRequest) StatusOnly() bool {
	return r.Status != nil &&
		r.PayPeriodStart == nil &&
		r.PayPeriodEnd == nil &&
		r.OvertimeRate == nil &&
		r.Deductions == nil &&
		r.Notes == nil
}

func (r *UpdatePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusDraft), string(StatusPending), string(StatusApproved), string(StatusPaid),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be draft, pending, approved or paid"})
	}
	if r.PayPeriodStart != nil {
		if _, ok := validator.IsValidDate(*r.PayPeriodStart); !ok {
			errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.PayPeriodEnd != nil {
		if _, ok := validator.IsValidDate(*r.PayPeriodEnd); !ok {
			errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.PayPeriodStart != nil && r.PayPeriodEnd != nil {
		start, okStart := validator.IsValidDate(*r.PayPeriodStart)
		end, okEnd := validator.IsValidDate(*r.PayPeriodEnd)
		if okStart && okEnd && !start.Before(end) {
			errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be after pay_period_start"})
		}
	}
	if r.OvertimeRate != nil && r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PatchStatusRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *PatchStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{
		string(StatusDraft), string(StatusPending), string(StatusApproved), string(StatusPaid),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be draft, pending, approved or paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionsResponse struct {
	Tax            decimal.Decimal `json:"tax"`
	SocialSecurity decimal.Decimal `json:"social_security"`
	Medicare       decimal.Decimal `json:"medicare"`
	Insurance      decimal.Decimal `json:"insurance"`
	Retirement     decimal.Decimal `json:"retirement"`
}

type PayslipResponse struct {
	ID             string             `json:"id"`
	EmployeeID     string             `json:"employee_id"`
	EmployeeName   *string            `json:"employee_name,omitempty"`
	PayslipNumber  string             `json:"payslip_number"`
	PayPeriodStart string             `json:"pay_period_start"`
	PayPeriodEnd   string             `json:"pay_period_end"`
	RegularHours   decimal.Decimal    `json:"regular_hours"`
	OvertimeHours  decimal.Decimal    `json:"overtime_hours"`
	Wage           decimal.Decimal    `json:"wage"`
	OvertimeRate   decimal.Decimal    `json:"overtime_rate"`
	GrossPay       decimal.Decimal    `json:"gross_pay"`
	Deductions     DeductionsResponse `json:"deductions"`
	NetPay         decimal.Decimal    `json:"net_pay"`
	FinalBill      decimal.Decimal    `json:"final_bill"`
	Status         string             `json:"status"`
	Notes          *string            `json:"notes,omitempty"`
}
