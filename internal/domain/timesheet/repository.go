package timesheet

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access methods for time entries.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id string) (TimeEntry, error)

	// GetOpenEntry returns the employee's most recent entry without a
	// clock-out, or ErrNotClockedIn when none exists.
	GetOpenEntry(ctx context.Context, employeeID string) (TimeEntry, error)

	// GetByEmployeeAndDay returns entries whose clock-in falls on the given
	// calendar day, newest first.
	GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]TimeEntry, error)

	// GetInRange returns entries whose clock-in or clock-out falls in
	// [start, end], or that fully span it.
	GetInRange(ctx context.Context, employeeID string, start, end time.Time) ([]TimeEntry, error)

	GetByEmployee(ctx context.Context, employeeID string, limit int) ([]TimeEntry, error)
	GetAll(ctx context.Context, limit int) ([]TimeEntry, error)

	// GetStaleOpenEntries returns open entries whose clock-in is older than
	// the cutoff. Used by the auto-close cron job.
	GetStaleOpenEntries(ctx context.Context, cutoff time.Time) ([]TimeEntry, error)

	Update(ctx context.Context, entry TimeEntry) error
}
