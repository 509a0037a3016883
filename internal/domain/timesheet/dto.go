package timesheet

import (
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string  `json:"-"`
	ManagerID  string  `json:"manager_id"`
	ClockIn    *string `json:"clock_in,omitempty"` // RFC3339; defaults to now
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ManagerID) {
		errs = append(errs, validator.ValidationError{Field: "manager_id", Message: "is required"})
	}
	if r.ClockIn != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be an RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	EmployeeID string  `json:"-"`
	ClockOut   *string `json:"clock_out,omitempty"` // RFC3339; defaults to now
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClockOut != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be an RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeEntryResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  *string  `json:"employee_name,omitempty"`
	ManagerID     string   `json:"manager_id"`
	ClockIn       string   `json:"clock_in"`
	ClockOut      *string  `json:"clock_out,omitempty"`
	TotalHours    *float64 `json:"total_hours,omitempty"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
}

// CoverageReportRequest asks for a coverage evaluation of one shift.
type CoverageReportRequest struct {
	EmployeeID string `json:"-"`
	ShiftID    string `json:"shift_id"`
}

type MissedShiftResponse struct {
	MissedCount int `json:"missed_count"`
}
