package notification

import "errors"

// Notification domain errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotReceiver          = errors.New("notification belongs to another employee")
)
