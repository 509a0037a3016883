package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMyTeam(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "employee_id", result.ID)
	response.Created(w, "Employee created", result)
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMe returns the authenticated employee's own record.
func (h *EmployeeHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetByID(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.Filter{Page: 1, Limit: 20}

	query := r.URL.Query()
	if v := query.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			filter.Page = page
		}
	}
	if v := query.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}
	if v := query.Get("role"); v != "" {
		filter.Role = &v
	}
	if v := query.Get("department_id"); v != "" {
		filter.DepartmentID = &v
	}
	if v := query.Get("manager_id"); v != "" {
		filter.ManagerID = &v
	}
	if v := query.Get("search"); v != "" {
		filter.Search = &v
	}

	result, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

// ListMyTeam returns the employees reporting to the authenticated manager.
func (h *EmployeeHandlerImpl) ListMyTeam(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListByManager(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", result)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}
