package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/goal"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/response"
)

type GoalHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	GetAssigned(w http.ResponseWriter, r *http.Request)
	UpdateModuleStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type GoalHandlerImpl struct {
	goalService goal.GoalService
}

func NewGoalHandler(goalService goal.GoalService) GoalHandler {
	return &GoalHandlerImpl{goalService: goalService}
}

// Assign implements GoalHandler.
func (h *GoalHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req goal.AssignGoalRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignGoal decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AssignedBy = middleware.EmployeeID(r)

	result, err := h.goalService.Assign(r.Context(), req)
	if err != nil {
		slog.Error("AssignGoal service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Goal assigned", "goal_id", result.ID, "employee_id", result.EmployeeID)
	response.Created(w, "Goal assigned", result)
}

// GetByID implements GoalHandler.
func (h *GoalHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.goalService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMine implements GoalHandler.
func (h *GoalHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.goalService.GetByEmployee(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAssigned returns the goals the authenticated manager has assigned.
func (h *GoalHandlerImpl) GetAssigned(w http.ResponseWriter, r *http.Request) {
	result, err := h.goalService.GetByAssigner(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateModuleStatus implements GoalHandler.
func (h *GoalHandlerImpl) UpdateModuleStatus(w http.ResponseWriter, r *http.Request) {
	var req goal.UpdateModuleStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateGoalModule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.GoalID = chi.URLParam(r, "id")
	req.ModuleID = chi.URLParam(r, "moduleID")
	req.EmployeeID = middleware.EmployeeID(r)

	result, err := h.goalService.UpdateModuleStatus(r.Context(), req)
	if err != nil {
		slog.Error("UpdateGoalModule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Module status updated", result)
}

// Delete implements GoalHandler.
func (h *GoalHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.goalService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteGoal service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Goal deleted", nil)
}
