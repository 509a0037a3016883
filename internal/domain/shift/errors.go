package shift

import "errors"

// Shift domain errors
var (
	ErrShiftNotFound       = errors.New("shift not found")
	ErrShiftOverlap        = errors.New("shift overlaps with an existing shift for this employee")
	ErrNotShiftOwner       = errors.New("you can only modify your own shift")
	ErrPastShift           = errors.New("cannot open a past shift")
	ErrShiftNotOpen        = errors.New("shift is not open for claiming")
	ErrOwnShiftClaim       = errors.New("cannot claim your own shift")
	ErrRequestPending      = errors.New("shift already has a pending claim request")
	ErrNoPendingRequest    = errors.New("shift has no pending claim request")
	ErrShiftAlreadyClaimed = errors.New("shift already transferred")
)
