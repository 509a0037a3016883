package timesheet

import (
	"context"
	"time"
)

// TimesheetService defines business logic for time tracking and shift
// coverage evaluation.
type TimesheetService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (TimeEntryResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (TimeEntryResponse, error)

	GetMyEntries(ctx context.Context, employeeID string) ([]TimeEntryResponse, error)
	GetEntriesByDay(ctx context.Context, employeeID string, day time.Time) ([]TimeEntryResponse, error)
	GetAllEntries(ctx context.Context) ([]TimeEntryResponse, error)

	// ShiftCoverage evaluates the employee's entries against one shift's
	// window as of now.
	ShiftCoverage(ctx context.Context, employeeID, shiftID string) (CoverageResult, error)

	// CountMissedShifts scans today's and past shifts and counts the ones
	// with inadequate coverage. Never returns an error for per-shift fetch
	// failures; those count as missed.
	CountMissedShifts(ctx context.Context, employeeID string, now time.Time) (int, error)
}
