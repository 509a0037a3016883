package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/domain/notification"
	"github.com/workflowhq/workforce-backend-go/internal/domain/shift"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type ShiftServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
	notifier     notification.Service
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	notifier notification.Service,
) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
	}
}

func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return shift.ShiftResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	startTime, endTime := buildShiftWindow(date, req.StartTime, req.EndTime)

	overlapping, err := s.shiftRepo.GetOverlapping(ctx, req.EmployeeID, startTime, endTime)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if len(overlapping) > 0 {
		return shift.ShiftResponse{}, shift.ErrShiftOverlap
	}

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	newShift := shift.Shift{
		EmployeeID:         req.EmployeeID,
		ManagerID:          req.ManagerID,
		Date:               date,
		StartTime:          startTime,
		EndTime:            endTime,
		BreakTimeInMinutes: req.BreakTimeInMinutes,
		IsPublished:        published,
		RequestStatus:      shift.RequestStatusNone,
	}

	created, err := s.shiftRepo.Create(ctx, newShift)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return mapToShiftResponse(created), nil
}

func (s *ShiftServiceImpl) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return mapToShiftResponse(sh), nil
}

func (s *ShiftServiceImpl) GetMyShifts(ctx context.Context, employeeID string) ([]shift.ShiftResponse, error) {
	weekStart := startOfWeek(time.Now())
	shifts, err := s.shiftRepo.GetByEmployeeFromDate(ctx, employeeID, weekStart)
	if err != nil {
		return nil, err
	}
	return mapToShiftResponses(shifts), nil
}

func (s *ShiftServiceImpl) GetByDate(ctx context.Context, date string) ([]shift.ShiftResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{
			{Field: "date", Message: "must be YYYY-MM-DD"},
		}
	}

	shifts, err := s.shiftRepo.GetByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	return mapToShiftResponses(shifts), nil
}

func (s *ShiftServiceImpl) GetByManager(ctx context.Context, managerID string) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.GetByManagerID(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return mapToShiftResponses(shifts), nil
}

func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	startStr := existing.StartTime.Format("15:04")
	endStr := existing.EndTime.Format("15:04")
	if req.StartTime != nil {
		startStr = *req.StartTime
	}
	if req.EndTime != nil {
		endStr = *req.EndTime
	}

	if req.StartTime != nil || req.EndTime != nil {
		startTime, endTime := buildShiftWindow(existing.Date, startStr, endStr)

		overlapping, overlapErr := s.shiftRepo.GetOverlapping(ctx, existing.EmployeeID, startTime, endTime)
		if overlapErr != nil {
			return shift.ShiftResponse{}, overlapErr
		}
		for _, other := range overlapping {
			if other.ID != existing.ID {
				return shift.ShiftResponse{}, shift.ErrShiftOverlap
			}
		}

		existing.StartTime = startTime
		existing.EndTime = endTime
	}
	if req.BreakTimeInMinutes != nil {
		existing.BreakTimeInMinutes = *req.BreakTimeInMinutes
	}
	if req.IsPublished != nil {
		existing.IsPublished = *req.IsPublished
	}

	if err := s.shiftRepo.Update(ctx, existing); err != nil {
		return shift.ShiftResponse{}, err
	}

	return mapToShiftResponse(existing), nil
}

func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.shiftRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.shiftRepo.Delete(ctx, id)
}

// ========== OPEN-SHIFT WORKFLOW ==========

func (s *ShiftServiceImpl) ListOpenShifts(ctx context.Context, employeeID string) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.GetOpenShifts(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToShiftResponses(shifts), nil
}

// OpenShift puts the caller's shift up for grabs by other employees.
func (s *ShiftServiceImpl) OpenShift(ctx context.Context, shiftID, employeeID string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if sh.EmployeeID != employeeID {
		return shift.ShiftResponse{}, shift.ErrNotShiftOwner
	}
	if sh.StartTime.Before(time.Now()) {
		return shift.ShiftResponse{}, shift.ErrPastShift
	}

	sh.IsOpen = true
	sh.RequestedBy = nil
	sh.RequestStatus = shift.RequestStatusNone

	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	return mapToShiftResponse(sh), nil
}

func (s *ShiftServiceImpl) RevokeOpenShift(ctx context.Context, shiftID, employeeID string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if sh.EmployeeID != employeeID {
		return shift.ShiftResponse{}, shift.ErrNotShiftOwner
	}
	if !sh.IsOpen {
		return shift.ShiftResponse{}, shift.ErrShiftNotOpen
	}

	sh.IsOpen = false
	sh.RequestedBy = nil
	sh.RequestStatus = shift.RequestStatusNone

	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	return mapToShiftResponse(sh), nil
}

// RequestShift files a claim for an open shift. One pending request at a
// time; the owner's manager decides.
func (s *ShiftServiceImpl) RequestShift(ctx context.Context, shiftID, requesterID string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if !sh.IsOpen {
		return shift.ShiftResponse{}, shift.ErrShiftNotOpen
	}
	if sh.EmployeeID == requesterID {
		return shift.ShiftResponse{}, shift.ErrOwnShiftClaim
	}
	if sh.RequestStatus == shift.RequestStatusPending {
		return shift.ShiftResponse{}, shift.ErrRequestPending
	}

	sh.RequestedBy = &requesterID
	sh.RequestStatus = shift.RequestStatusPending

	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	s.notifier.Notify(ctx, requesterID, sh.ManagerID,
		"Shift claim requested",
		fmt.Sprintf("An employee requested to cover the shift on %s.", sh.Date.Format("2006-01-02")),
		notification.TypeInfo, notification.CategoryShift)

	return mapToShiftResponse(sh), nil
}

// ApproveShiftRequest transfers the shift to the requester and closes the
// open-shift flow.
func (s *ShiftServiceImpl) ApproveShiftRequest(ctx context.Context, shiftID, managerID string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if sh.RequestStatus != shift.RequestStatusPending || sh.RequestedBy == nil {
		return shift.ShiftResponse{}, shift.ErrNoPendingRequest
	}
	if !sh.IsOpen {
		return shift.ShiftResponse{}, shift.ErrShiftAlreadyClaimed
	}

	previousOwner := sh.EmployeeID
	requester := *sh.RequestedBy

	sh.EmployeeID = requester
	sh.IsOpen = false
	sh.RequestedBy = nil
	sh.RequestStatus = shift.RequestStatusNone

	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	date := sh.Date.Format("2006-01-02")
	s.notifier.Notify(ctx, managerID, requester,
		"Shift claim approved",
		fmt.Sprintf("You have been assigned the shift on %s.", date),
		notification.TypeSuccess, notification.CategoryShift)
	s.notifier.Notify(ctx, managerID, previousOwner,
		"Shift reassigned",
		fmt.Sprintf("Your open shift on %s has been covered.", date),
		notification.TypeInfo, notification.CategoryShift)

	return mapToShiftResponse(sh), nil
}

func (s *ShiftServiceImpl) RejectShiftRequest(ctx context.Context, shiftID, managerID string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if sh.RequestStatus != shift.RequestStatusPending || sh.RequestedBy == nil {
		return shift.ShiftResponse{}, shift.ErrNoPendingRequest
	}

	requester := *sh.RequestedBy

	sh.RequestedBy = nil
	sh.RequestStatus = shift.RequestStatusNone

	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	s.notifier.Notify(ctx, managerID, requester,
		"Shift claim rejected",
		fmt.Sprintf("Your request for the shift on %s was declined.", sh.Date.Format("2006-01-02")),
		notification.TypeWarning, notification.CategoryShift)

	return mapToShiftResponse(sh), nil
}

// ========== HELPERS ==========

// buildShiftWindow anchors HH:MM times to the shift date. An end at or
// before the start rolls over to the next calendar day.
func buildShiftWindow(date time.Time, startStr, endStr string) (time.Time, time.Time) {
	startHour, startMin, _ := validator.ParseTimeOfDay(startStr)
	endHour, endMin, _ := validator.ParseTimeOfDay(endStr)

	start := time.Date(date.Year(), date.Month(), date.Day(), startHour, startMin, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), endHour, endMin, 0, 0, date.Location())
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}

// startOfWeek returns midnight of the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

func mapToShiftResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:                 sh.ID,
		EmployeeID:         sh.EmployeeID,
		EmployeeName:       sh.EmployeeName,
		ManagerID:          sh.ManagerID,
		Date:               sh.Date.Format("2006-01-02"),
		StartTime:          sh.StartTime.Format(time.RFC3339),
		EndTime:            sh.EndTime.Format(time.RFC3339),
		BreakTimeInMinutes: sh.BreakTimeInMinutes,
		IsPublished:        sh.IsPublished,
		IsOpen:             sh.IsOpen,
		RequestedBy:        sh.RequestedBy,
		RequesterName:      sh.RequesterName,
		RequestStatus:      string(sh.RequestStatus),
	}
}

func mapToShiftResponses(shifts []shift.Shift) []shift.ShiftResponse {
	result := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		result = append(result, mapToShiftResponse(sh))
	}
	return result
}
