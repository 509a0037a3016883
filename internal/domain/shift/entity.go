package shift

import "time"

// Shift is a scheduled work window for one employee. StartTime/EndTime are
// absolute timestamps; a window whose end rolls past midnight ends the next
// calendar day. Date is always normalized to midnight.
type Shift struct {
	ID                 string
	EmployeeID         string
	ManagerID          string
	Date               time.Time
	StartTime          time.Time
	EndTime            time.Time
	BreakTimeInMinutes int
	IsPublished        bool
	IsOpen             bool
	RequestedBy        *string
	RequestStatus      RequestStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// DTO
	EmployeeName  *string
	RequesterName *string
}

// RequestStatus tracks the open-shift claim workflow.
type RequestStatus string

const (
	RequestStatusNone     RequestStatus = "none"
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
)

// Overlaps reports whether the shift's [start,end) window intersects the
// given window.
func (s Shift) Overlaps(start, end time.Time) bool {
	return start.Before(s.EndTime) && end.After(s.StartTime)
}
