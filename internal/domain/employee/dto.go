package employee

import (
	"github.com/shopspring/decimal"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	Email        string           `json:"email"`
	Password     string           `json:"password"`
	Role         string           `json:"role"`
	Phone        string           `json:"phone"`
	Address      *string          `json:"address,omitempty"`
	City         *string          `json:"city,omitempty"`
	Country      *string          `json:"country,omitempty"`
	ManagerID    *string          `json:"manager_id,omitempty"`
	PositionID   *string          `json:"position_id,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	HireDate     *string          `json:"hire_date,omitempty"`
	Wage         decimal.Decimal  `json:"wage"`
	PayPeriod    string           `json:"pay_period"`
	Deductions   *DeductionsInput `json:"deductions,omitempty"`
}

type DeductionsInput struct {
	Tax            decimal.Decimal `json:"tax"`
	SocialSecurity decimal.Decimal `json:"social_security"`
	Medicare       decimal.Decimal `json:"medicare"`
	Insurance      decimal.Decimal `json:"insurance"`
	Retirement     decimal.Decimal `json:"retirement"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	if r.Role != "" && !validator.IsInSlice(r.Role, []string{string(RoleEmployee), string(RoleManager), string(RoleAdmin)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be Employee, Manager or Admin"})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "is required"})
	}
	if r.Wage.IsNegative() || r.Wage.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "wage", Message: "must be positive"})
	}
	if !validator.IsInSlice(r.PayPeriod, []string{string(PayPeriodMonthly), string(PayPeriodAnnual)}) {
		errs = append(errs, validator.ValidationError{Field: "pay_period", Message: "must be Monthly or Annual"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Deductions != nil {
		for field, amount := range map[string]decimal.Decimal{
			"deductions.tax":             r.Deductions.Tax,
			"deductions.social_security": r.Deductions.SocialSecurity,
			"deductions.medicare":        r.Deductions.Medicare,
			"deductions.insurance":       r.Deductions.Insurance,
			"deductions.retirement":      r.Deductions.Retirement,
		} {
			if amount.IsNegative() {
				errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string
	FirstName    *string          `json:"first_name,omitempty"`
	LastName     *string          `json:"last_name,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	Address      *string          `json:"address,omitempty"`
	City         *string          `json:"city,omitempty"`
	Country      *string          `json:"country,omitempty"`
	Role         *string          `json:"role,omitempty"`
	ManagerID    *string          `json:"manager_id,omitempty"`
	PositionID   *string          `json:"position_id,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	Wage         *decimal.Decimal `json:"wage,omitempty"`
	PayPeriod    *string          `json:"pay_period,omitempty"`
	Deductions   *DeductionsInput `json:"deductions,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleEmployee), string(RoleManager), string(RoleAdmin)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be Employee, Manager or Admin"})
	}
	if r.Wage != nil && (r.Wage.IsNegative() || r.Wage.IsZero()) {
		errs = append(errs, validator.ValidationError{Field: "wage", Message: "must be positive"})
	}
	if r.PayPeriod != nil && !validator.IsInSlice(*r.PayPeriod, []string{string(PayPeriodMonthly), string(PayPeriodAnnual)}) {
		errs = append(errs, validator.ValidationError{Field: "pay_period", Message: "must be Monthly or Annual"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	Role         *string
	DepartmentID *string
	ManagerID    *string
	Search       *string
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID           string           `json:"id"`
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	Email        string           `json:"email"`
	Role         string           `json:"role"`
	Phone        string           `json:"phone"`
	Address      *string          `json:"address,omitempty"`
	City         *string          `json:"city,omitempty"`
	Country      *string          `json:"country,omitempty"`
	ManagerID    *string          `json:"manager_id,omitempty"`
	ManagerName  *string          `json:"manager_name,omitempty"`
	PositionID   *string          `json:"position_id,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	HireDate     string           `json:"hire_date"`
	Wage         decimal.Decimal  `json:"wage"`
	PayPeriod    string           `json:"pay_period"`
	Deductions   DeductionsOutput `json:"deductions"`
	AnnualLeave  int              `json:"annual_leave_balance"`
	SickLeave    int              `json:"sick_leave_balance"`
}

type DeductionsOutput struct {
	Tax            decimal.Decimal `json:"tax"`
	SocialSecurity decimal.Decimal `json:"social_security"`
	Medicare       decimal.Decimal `json:"medicare"`
	Insurance      decimal.Decimal `json:"insurance"`
	Retirement     decimal.Decimal `json:"retirement"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
