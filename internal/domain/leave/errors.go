package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrNotRequestManager    = errors.New("only the assigned manager can decide this request")
)
