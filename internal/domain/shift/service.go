package shift

import "context"

// ShiftService defines business logic for shift scheduling
type ShiftService interface {
	// Create schedules a shift, rolling the end time to the next day when it
	// is not after the start, and rejecting overlapping windows.
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)

	GetByID(ctx context.Context, id string) (ShiftResponse, error)
	GetMyShifts(ctx context.Context, employeeID string) ([]ShiftResponse, error)
	GetByDate(ctx context.Context, date string) ([]ShiftResponse, error)
	GetByManager(ctx context.Context, managerID string) ([]ShiftResponse, error)
	Update(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error

	// Open-shift workflow
	ListOpenShifts(ctx context.Context, employeeID string) ([]ShiftResponse, error)
	OpenShift(ctx context.Context, shiftID, employeeID string) (ShiftResponse, error)
	RevokeOpenShift(ctx context.Context, shiftID, employeeID string) (ShiftResponse, error)
	RequestShift(ctx context.Context, shiftID, requesterID string) (ShiftResponse, error)
	ApproveShiftRequest(ctx context.Context, shiftID, managerID string) (ShiftResponse, error)
	RejectShiftRequest(ctx context.Context, shiftID, managerID string) (ShiftResponse, error)
}
