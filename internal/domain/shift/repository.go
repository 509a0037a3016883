package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for shifts.
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetByEmployeeFromDate returns an employee's shifts dated on or after
	// the given day, ordered by date then start time.
	GetByEmployeeFromDate(ctx context.Context, employeeID string, from time.Time) ([]Shift, error)

	// GetByEmployeeUpToDate returns an employee's shifts dated on or before
	// the given day (today and the past), newest first.
	GetByEmployeeUpToDate(ctx context.Context, employeeID string, until time.Time) ([]Shift, error)

	// GetByDate returns every shift on a calendar day (manager view).
	GetByDate(ctx context.Context, date time.Time) ([]Shift, error)

	GetByManagerID(ctx context.Context, managerID string) ([]Shift, error)

	// GetOverlapping returns the employee's shifts whose [start,end) window
	// intersects the given window. Used to enforce the no-overlap invariant.
	GetOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]Shift, error)

	// GetInRange returns shifts whose scheduled window intersects
	// [start, end]: start in range, end in range, or fully spanning it.
	GetInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Shift, error)

	// GetOpenShifts returns claimable shifts excluding the given employee's own.
	GetOpenShifts(ctx context.Context, excludeEmployeeID string) ([]Shift, error)

	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id string) error
}
