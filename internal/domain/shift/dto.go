package shift

import (
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	EmployeeID         string `json:"employee_id"`
	ManagerID          string `json:"-"`
	Date               string `json:"date"`       // YYYY-MM-DD
	StartTime          string `json:"start_time"` // HH:MM
	EndTime            string `json:"end_time"`   // HH:MM
	BreakTimeInMinutes int    `json:"break_time_in_minutes"`
	IsPublished        *bool  `json:"is_published,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if !validator.IsValidTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM"})
	}
	if r.BreakTimeInMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_time_in_minutes", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID                 string
	StartTime          *string `json:"start_time,omitempty"` // HH:MM
	EndTime            *string `json:"end_time,omitempty"`   // HH:MM
	BreakTimeInMinutes *int    `json:"break_time_in_minutes,omitempty"`
	IsPublished        *bool   `json:"is_published,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime != nil && !validator.IsValidTimeOfDay(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if r.EndTime != nil && !validator.IsValidTimeOfDay(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM"})
	}
	if r.BreakTimeInMinutes != nil && *r.BreakTimeInMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_time_in_minutes", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       *string `json:"employee_name,omitempty"`
	ManagerID          string  `json:"manager_id"`
	Date               string  `json:"date"`
	StartTime          string  `json:"start_time"`
	EndTime            string  `json:"end_time"`
	BreakTimeInMinutes int     `json:"break_time_in_minutes"`
	IsPublished        bool    `json:"is_published"`
	IsOpen             bool    `json:"is_open"`
	RequestedBy        *string `json:"requested_by,omitempty"`
	RequesterName      *string `json:"requester_name,omitempty"`
	RequestStatus      string  `json:"request_status"`
}
