package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrEntryNotFound    = errors.New("time entry not found")
	ErrAlreadyClockedIn = errors.New("you already have an open time entry")
	ErrNotClockedIn     = errors.New("you have no open time entry")
	ErrClockOutBeforeIn = errors.New("clock-out must be after clock-in")
)
