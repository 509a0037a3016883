package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmailExists       = errors.New("email already registered")
	ErrManagerNotFound   = errors.New("manager not found")
	ErrWageNotConfigured = errors.New("employee wage information not found")
)
