package leave

import "time"

type LeaveRequest struct {
	ID         string
	EmployeeID string
	ManagerID  string
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	LeaveType  LeaveType
	Reason     string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
	ManagerName  *string
}

type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "annual"
	LeaveTypeSick   LeaveType = "sick"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)
