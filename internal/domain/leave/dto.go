package leave

import (
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string `json:"-"`
	ManagerID  string `json:"manager_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
	Days       int    `json:"days"`
	LeaveType  string `json:"leave_type"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ManagerID) {
		errs = append(errs, validator.ValidationError{Field: "manager_id", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if r.Days <= 0 {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "must be positive"})
	}
	if !validator.IsInSlice(r.LeaveType, []string{string(LeaveTypeAnnual), string(LeaveTypeSick)}) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be annual or sick"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequest struct {
	ID        string
	ManagerID string
	Status    string `json:"status"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be Approved or Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	ManagerID    string  `json:"manager_id"`
	ManagerName  *string `json:"manager_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	LeaveType    string  `json:"leave_type"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
}
