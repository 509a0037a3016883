package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/shift"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetMyShifts(w http.ResponseWriter, r *http.Request)
	GetByDate(w http.ResponseWriter, r *http.Request)
	GetManaged(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	ListOpen(w http.ResponseWriter, r *http.Request)
	Open(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
	Request(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ManagerID = middleware.EmployeeID(r)

	result, err := h.shiftService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift created", "shift_id", result.ID, "employee_id", result.EmployeeID)
	response.Created(w, "Shift created", result)
}

// GetByID implements ShiftHandler.
func (h *ShiftHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyShifts implements ShiftHandler.
func (h *ShiftHandlerImpl) GetMyShifts(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.GetMyShifts(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetByDate implements ShiftHandler.
func (h *ShiftHandlerImpl) GetByDate(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.GetByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetManaged returns the shifts scheduled by the authenticated manager.
func (h *ShiftHandlerImpl) GetManaged(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.GetByManager(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ShiftHandler.
func (h *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.shiftService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated", result)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// ListOpen implements ShiftHandler.
func (h *ShiftHandlerImpl) ListOpen(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.ListOpenShifts(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Open implements ShiftHandler.
func (h *ShiftHandlerImpl) Open(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.OpenShift(r.Context(), chi.URLParam(r, "id"), middleware.EmployeeID(r))
	if err != nil {
		slog.Error("OpenShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift opened for claiming", result)
}

// Revoke implements ShiftHandler.
func (h *ShiftHandlerImpl) Revoke(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.RevokeOpenShift(r.Context(), chi.URLParam(r, "id"), middleware.EmployeeID(r))
	if err != nil {
		slog.Error("RevokeOpenShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift claim closed", result)
}

// Request implements ShiftHandler.
func (h *ShiftHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.RequestShift(r.Context(), chi.URLParam(r, "id"), middleware.EmployeeID(r))
	if err != nil {
		slog.Error("RequestShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift claim requested", result)
}

// Approve implements ShiftHandler.
func (h *ShiftHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.ApproveShiftRequest(r.Context(), chi.URLParam(r, "id"), middleware.EmployeeID(r))
	if err != nil {
		slog.Error("ApproveShiftRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift claim approved", result)
}

// Reject implements ShiftHandler.
func (h *ShiftHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.RejectShiftRequest(r.Context(), chi.URLParam(r, "id"), middleware.EmployeeID(r))
	if err != nil {
		slog.Error("RejectShiftRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift claim rejected", result)
}
