package goal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/domain/goal"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type GoalServiceImpl struct {
	goalRepo     goal.GoalRepository
	employeeRepo employee.EmployeeRepository
}

func NewGoalService(goalRepo goal.GoalRepository, employeeRepo employee.EmployeeRepository) goal.GoalService {
	return &GoalServiceImpl{
		goalRepo:     goalRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *GoalServiceImpl) Assign(ctx context.Context, req goal.AssignGoalRequest) (goal.GoalResponse, error) {
	if err := req.Validate(); err != nil {
		return goal.GoalResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return goal.GoalResponse{}, err
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, _ := validator.IsValidDate(*req.DueDate)
		dueDate = &parsed
	}

	modules := make([]goal.Module, 0, len(req.Modules))
	for _, m := range req.Modules {
		modules = append(modules, goal.Module{
			ID:     uuid.NewString(),
			Name:   m.Name,
			Status: goal.ModulePending,
		})
	}

	g := goal.Goal{
		EmployeeID:  req.EmployeeID,
		AssignedBy:  req.AssignedBy,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Modules:     modules,
	}
	g.Recalculate()

	created, err := s.goalRepo.Create(ctx, g)
	if err != nil {
		return goal.GoalResponse{}, err
	}

	return mapToGoalResponse(created), nil
}

func (s *GoalServiceImpl) GetByID(ctx context.Context, id string) (goal.GoalResponse, error) {
	g, err := s.goalRepo.GetByID(ctx, id)
	if err != nil {
		return goal.GoalResponse{}, err
	}
	return mapToGoalResponse(g), nil
}

func (s *GoalServiceImpl) GetByEmployee(ctx context.Context, employeeID string) ([]goal.GoalResponse, error) {
	goals, err := s.goalRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToGoalResponses(goals), nil
}

func (s *GoalServiceImpl) GetByAssigner(ctx context.Context, assignerID string) ([]goal.GoalResponse, error) {
	goals, err := s.goalRepo.GetByAssigner(ctx, assignerID)
	if err != nil {
		return nil, err
	}
	return mapToGoalResponses(goals), nil
}

func (s *GoalServiceImpl) UpdateModuleStatus(ctx context.Context, req goal.UpdateModuleStatusRequest) (goal.GoalResponse, error) {
	if err := req.Validate(); err != nil {
		return goal.GoalResponse{}, err
	}

	g, err := s.goalRepo.GetByID(ctx, req.GoalID)
	if err != nil {
		return goal.GoalResponse{}, err
	}
	if g.EmployeeID != req.EmployeeID {
		return goal.GoalResponse{}, goal.ErrNotGoalAssignee
	}

	found := false
	for i := range g.Modules {
		if g.Modules[i].ID == req.ModuleID {
			g.Modules[i].Status = goal.ModuleStatus(req.Status)
			found = true
			break
		}
	}
	if !found {
		return goal.GoalResponse{}, goal.ErrModuleNotFound
	}

	g.Recalculate()

	if err := s.goalRepo.Update(ctx, g); err != nil {
		return goal.GoalResponse{}, err
	}

	return mapToGoalResponse(g), nil
}

func (s *GoalServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.goalRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.goalRepo.Delete(ctx, id)
}

// ========== HELPERS ==========

func mapToGoalResponse(g goal.Goal) goal.GoalResponse {
	modules := make([]goal.ModuleResponse, 0, len(g.Modules))
	for _, m := range g.Modules {
		modules = append(modules, goal.ModuleResponse{
			ID:     m.ID,
			Name:   m.Name,
			Status: string(m.Status),
		})
	}

	var dueDate *string
	if g.DueDate != nil {
		str := g.DueDate.Format("2006-01-02")
		dueDate = &str
	}

	return goal.GoalResponse{
		ID:           g.ID,
		EmployeeID:   g.EmployeeID,
		EmployeeName: g.EmployeeName,
		AssignedBy:   g.AssignedBy,
		AssignerName: g.AssignerName,
		Title:        g.Title,
		Description:  g.Description,
		DueDate:      dueDate,
		Modules:      modules,
		Progress:     g.Progress,
		Status:       string(g.Status),
	}
}

func mapToGoalResponses(goals []goal.Goal) []goal.GoalResponse {
	result := make([]goal.GoalResponse, 0, len(goals))
	for _, g := range goals {
		result = append(result, mapToGoalResponse(g))
	}
	return result
}
