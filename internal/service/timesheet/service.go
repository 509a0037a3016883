package timesheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/workflowhq/workforce-backend-go/internal/domain/shift"
	"github.com/workflowhq/workforce-backend-go/internal/domain/timesheet"
)

// dailyOvertimeThresholdHours is the per-entry boundary between regular and
// overtime hours.
const dailyOvertimeThresholdHours = 8

type TimesheetServiceImpl struct {
	timeEntryRepo timesheet.TimeEntryRepository
	shiftRepo     shift.ShiftRepository
}

func NewTimesheetService(
	timeEntryRepo timesheet.TimeEntryRepository,
	shiftRepo shift.ShiftRepository,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		timeEntryRepo: timeEntryRepo,
		shiftRepo:     shiftRepo,
	}
}

func (s *TimesheetServiceImpl) ClockIn(ctx context.Context, req timesheet.ClockInRequest) (timesheet.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	// One open session at a time.
	_, err := s.timeEntryRepo.GetOpenEntry(ctx, req.EmployeeID)
	if err == nil {
		return timesheet.TimeEntryResponse{}, timesheet.ErrAlreadyClockedIn
	}
	if !errors.Is(err, timesheet.ErrNotClockedIn) {
		return timesheet.TimeEntryResponse{}, err
	}

	clockIn := time.Now()
	if req.ClockIn != nil {
		parsed, parseErr := time.Parse(time.RFC3339, *req.ClockIn)
		if parseErr == nil {
			clockIn = parsed
		}
	}

	entry := timesheet.TimeEntry{
		EmployeeID: req.EmployeeID,
		ManagerID:  req.ManagerID,
		ClockIn:    clockIn,
	}

	created, err := s.timeEntryRepo.Create(ctx, entry)
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	return mapToEntryResponse(created), nil
}

func (s *TimesheetServiceImpl) ClockOut(ctx context.Context, req timesheet.ClockOutRequest) (timesheet.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	entry, err := s.timeEntryRepo.GetOpenEntry(ctx, req.EmployeeID)
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	clockOut := time.Now()
	if req.ClockOut != nil {
		parsed, parseErr := time.Parse(time.RFC3339, *req.ClockOut)
		if parseErr == nil {
			clockOut = parsed
		}
	}

	if !clockOut.After(entry.ClockIn) {
		return timesheet.TimeEntryResponse{}, timesheet.ErrClockOutBeforeIn
	}

	total := round2(clockOut.Sub(entry.ClockIn).Hours())
	overtime := 0.0
	if total > dailyOvertimeThresholdHours {
		overtime = round2(total - dailyOvertimeThresholdHours)
	}

	entry.ClockOut = &clockOut
	entry.TotalHours = &total
	entry.OvertimeHours = &overtime

	if err := s.timeEntryRepo.Update(ctx, entry); err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	return mapToEntryResponse(entry), nil
}

func (s *TimesheetServiceImpl) GetMyEntries(ctx context.Context, employeeID string) ([]timesheet.TimeEntryResponse, error) {
	entries, err := s.timeEntryRepo.GetByEmployee(ctx, employeeID, 0)
	if err != nil {
		return nil, err
	}
	return mapToEntryResponses(entries), nil
}

func (s *TimesheetServiceImpl) GetEntriesByDay(ctx context.Context, employeeID string, day time.Time) ([]timesheet.TimeEntryResponse, error) {
	entries, err := s.timeEntryRepo.GetByEmployeeAndDay(ctx, employeeID, day)
	if err != nil {
		return nil, err
	}
	return mapToEntryResponses(entries), nil
}

func (s *TimesheetServiceImpl) GetAllEntries(ctx context.Context) ([]timesheet.TimeEntryResponse, error) {
	entries, err := s.timeEntryRepo.GetAll(ctx, 0)
	if err != nil {
		return nil, err
	}
	return mapToEntryResponses(entries), nil
}

func (s *TimesheetServiceImpl) ShiftCoverage(ctx context.Context, employeeID, shiftID string) (timesheet.CoverageResult, error) {
	sh, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return timesheet.CoverageResult{}, err
	}

	entries, err := s.timeEntryRepo.GetByEmployeeAndDay(ctx, employeeID, sh.Date)
	if err != nil {
		return timesheet.CoverageResult{}, err
	}

	return EvaluateCoverage(entries, sh.StartTime, sh.EndTime, time.Now()), nil
}

// CountMissedShifts walks the employee's shifts dated today or earlier and
// counts the ones with inadequate coverage. Today's shifts get a grace
// period after start and the currently attended shift is never flagged
// while the employee is clocked in. A failed per-date entry fetch counts
// the shift as missed rather than skipping it.
func (s *TimesheetServiceImpl) CountMissedShifts(ctx context.Context, employeeID string, now time.Time) (int, error) {
	today := truncateToDay(now)

	shifts, err := s.shiftRepo.GetByEmployeeUpToDate(ctx, employeeID, today)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	todayEntries, err := s.timeEntryRepo.GetByEmployeeAndDay(ctx, employeeID, today)
	if err != nil {
		slog.Warn("Missed-shift scan: failed to fetch today's entries", "employee_id", employeeID, "error", err)
		todayEntries = nil
	}

	_, err = s.timeEntryRepo.GetOpenEntry(ctx, employeeID)
	isCurrentlyClockedIn := err == nil

	// The one shift whose window the clock is currently inside, if any.
	var currentActiveShiftID string
	for _, sh := range shifts {
		if sh.IsOpen {
			continue
		}
		if sameDay(sh.Date, today) && !now.Before(sh.StartTime) && !now.After(sh.EndTime) {
			currentActiveShiftID = sh.ID
			break
		}
	}

	missedCount := 0
	for _, sh := range shifts {
		// Open shifts belong to nobody yet.
		if sh.IsOpen {
			continue
		}

		if sameDay(sh.Date, today) {
			if !now.After(sh.StartTime.Add(MissedShiftGrace)) {
				// Within grace, not yet eligible to be missed.
				continue
			}

			coverage := EvaluateCoverage(todayEntries, sh.StartTime, sh.EndTime, now)

			if sh.ID == currentActiveShiftID && isCurrentlyClockedIn {
				// In progress and attended; judging it now would flag a
				// shift that may still end up fully covered.
				continue
			}
			if !coverage.IsAdequate {
				missedCount++
			}
		} else if sh.Date.Before(today) {
			pastEntries, fetchErr := s.timeEntryRepo.GetByEmployeeAndDay(ctx, employeeID, sh.Date)
			if fetchErr != nil {
				// Fail safe: an unverifiable shift counts as missed.
				slog.Warn("Missed-shift scan: failed to fetch entries for past shift",
					"employee_id", employeeID, "date", sh.Date, "error", fetchErr)
				missedCount++
				continue
			}

			coverage := EvaluateCoverage(pastEntries, sh.StartTime, sh.EndTime, sh.EndTime)
			if !coverage.IsAdequate {
				missedCount++
			}
		}
	}

	return missedCount, nil
}

// ========== HELPERS ==========

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func mapToEntryResponse(e timesheet.TimeEntry) timesheet.TimeEntryResponse {
	var clockOutStr *string
	if e.ClockOut != nil {
		str := e.ClockOut.Format(time.RFC3339)
		clockOutStr = &str
	}

	return timesheet.TimeEntryResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		EmployeeName:  e.EmployeeName,
		ManagerID:     e.ManagerID,
		ClockIn:       e.ClockIn.Format(time.RFC3339),
		ClockOut:      clockOutStr,
		TotalHours:    e.TotalHours,
		OvertimeHours: e.OvertimeHours,
	}
}

func mapToEntryResponses(entries []timesheet.TimeEntry) []timesheet.TimeEntryResponse {
	result := make([]timesheet.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, mapToEntryResponse(e))
	}
	return result
}
