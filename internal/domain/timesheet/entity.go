package timesheet

import "time"

// TimeEntry is a clock-in/clock-out pair. ClockOut is nil while the
// employee is still clocked in (or forgot to clock out).
type TimeEntry struct {
	ID            string
	EmployeeID    string
	ManagerID     string
	ClockIn       time.Time
	ClockOut      *time.Time
	TotalHours    *float64
	OvertimeHours *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	EmployeeName *string
}

// CoverageResult is the outcome of evaluating time entries against a shift
// window. Computed on demand, never persisted.
type CoverageResult struct {
	IsAdequate      bool    `json:"is_adequate"`
	Reason          string  `json:"reason"`
	CoveragePercent int     `json:"coverage_percent"`
	WorkedHours     float64 `json:"worked_hours"`
	RequiredHours   float64 `json:"required_hours"`
}
