package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/leave"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	GetPending(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)

	result, err := h.leaveService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request created", "leave_id", result.ID, "employee_id", req.EmployeeID)
	response.Created(w, "Leave request submitted", result)
}

// GetMine implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.GetByEmployee(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPending returns requests awaiting the authenticated manager's decision.
func (h *LeaveHandlerImpl) GetPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.GetPendingByManager(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAll implements LeaveHandler.
func (h *LeaveHandlerImpl) GetAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Decide implements LeaveHandler.
func (h *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req leave.DecideLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DecideLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.ManagerID = middleware.EmployeeID(r)

	result, err := h.leaveService.Decide(r.Context(), req)
	if err != nil {
		slog.Error("DecideLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request decided", "leave_id", req.ID, "status", result.Status)
	response.SuccessWithMessage(w, "Leave request "+result.Status, result)
}
