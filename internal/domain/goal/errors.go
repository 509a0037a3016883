package goal

import "errors"

// Goal domain errors
var (
	ErrGoalNotFound    = errors.New("goal not found")
	ErrModuleNotFound  = errors.New("goal module not found")
	ErrNotGoalAssignee = errors.New("only the assigned employee can update this goal")
)
