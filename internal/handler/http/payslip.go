package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/payslip"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	GetByEmployee(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	PatchStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PayslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &PayslipHandlerImpl{payslipService: payslipService}
}

// Create implements PayslipHandler.
func (h *PayslipHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payslip.CreatePayslipRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePayslip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payslipService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreatePayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payslip generated",
		"payslip_id", result.ID, "payslip_number", result.PayslipNumber, "employee_id", result.EmployeeID)
	response.Created(w, "Payslip generated", result)
}

// GetByID implements PayslipHandler.
func (h *PayslipHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.payslipService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMine returns the authenticated employee's own payslips.
func (h *PayslipHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.payslipService.GetByEmployee(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetByEmployee implements PayslipHandler.
func (h *PayslipHandlerImpl) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.payslipService.GetByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAll implements PayslipHandler.
func (h *PayslipHandlerImpl) GetAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.payslipService.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements PayslipHandler.
func (h *PayslipHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req payslip.UpdatePayslipRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePayslip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payslipService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdatePayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip updated", result)
}

// PatchStatus implements PayslipHandler.
func (h *PayslipHandlerImpl) PatchStatus(w http.ResponseWriter, r *http.Request) {
	var req payslip.PatchStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PatchPayslipStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payslipService.PatchStatus(r.Context(), req)
	if err != nil {
		slog.Error("PatchPayslipStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip status updated", result)
}

// Delete implements PayslipHandler.
func (h *PayslipHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.payslipService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeletePayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip deleted", nil)
}
