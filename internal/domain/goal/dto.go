package goal

import (
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type AssignGoalRequest struct {
	EmployeeID  string        `json:"employee_id"`
	AssignedBy  string        `json:"-"`
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	DueDate     *string       `json:"due_date,omitempty"` // YYYY-MM-DD
	Modules     []ModuleInput `json:"modules"`
}

type ModuleInput struct {
	Name string `json:"name"`
}

func (r *AssignGoalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
		}
	}
	for i, m := range r.Modules {
		if validator.IsEmpty(m.Name) {
			errs = append(errs, validator.ValidationError{Field: "modules", Message: "module name is required"})
			_ = i
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateModuleStatusRequest struct {
	GoalID     string
	ModuleID   string
	EmployeeID string
	Status     string `json:"status"`
}

func (r *UpdateModuleStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(ModulePending), string(ModuleCompleted)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be Pending or Completed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ModuleResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type GoalResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName *string          `json:"employee_name,omitempty"`
	AssignedBy   string           `json:"assigned_by"`
	AssignerName *string          `json:"assigner_name,omitempty"`
	Title        string           `json:"title"`
	Description  *string          `json:"description,omitempty"`
	DueDate      *string          `json:"due_date,omitempty"`
	Modules      []ModuleResponse `json:"modules"`
	Progress     int              `json:"progress"`
	Status       string           `json:"status"`
}
