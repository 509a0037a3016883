package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/timesheet"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/response"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type TimesheetHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetMyEntries(w http.ResponseWriter, r *http.Request)
	GetAllEntries(w http.ResponseWriter, r *http.Request)
	ShiftCoverage(w http.ResponseWriter, r *http.Request)
	MissedShifts(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// ClockIn implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req timesheet.ClockInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)

	result, err := h.timesheetService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee clocked in", "employee_id", req.EmployeeID, "entry_id", result.ID)
	response.Created(w, "Clocked in", result)
}

// ClockOut implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req timesheet.ClockOutRequest

	// An empty body means "clock out now".
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)

	result, err := h.timesheetService.ClockOut(r.Context(), req)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee clocked out", "employee_id", req.EmployeeID, "entry_id", result.ID)
	response.SuccessWithMessage(w, "Clocked out", result)
}

// GetMyEntries implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetMyEntries(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		day, ok := validator.IsValidDate(dateStr)
		if !ok {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return
		}
		result, err := h.timesheetService.GetEntriesByDay(r.Context(), employeeID, day)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.timesheetService.GetMyEntries(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAllEntries implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetAllEntries(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.GetAllEntries(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ShiftCoverage implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ShiftCoverage(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "shiftID")

	result, err := h.timesheetService.ShiftCoverage(r.Context(), middleware.EmployeeID(r), shiftID)
	if err != nil {
		slog.Error("ShiftCoverage service error", "shift_id", shiftID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MissedShifts returns the employee's missed-shift count. A scan failure
// degrades to zero rather than erroring, the badge is informational.
func (h *TimesheetHandlerImpl) MissedShifts(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)

	count, err := h.timesheetService.CountMissedShifts(r.Context(), employeeID, time.Now())
	if err != nil {
		slog.Warn("MissedShifts scan error", "employee_id", employeeID, "error", err)
		count = 0
	}

	response.Success(w, timesheet.MissedShiftResponse{MissedCount: count})
}
