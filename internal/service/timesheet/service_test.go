package timesheet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workflowhq/workforce-backend-go/internal/domain/shift"
	"github.com/workflowhq/workforce-backend-go/internal/domain/timesheet"
)

// fakeShiftRepo serves canned shifts for the missed-shift scanner.
type fakeShiftRepo struct {
	shifts []shift.Shift
	err    error
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	return s, nil
}
func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	for _, s := range f.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}
func (f *fakeShiftRepo) GetByEmployeeFromDate(ctx context.Context, employeeID string, from time.Time) ([]shift.Shift, error) {
	return f.shifts, f.err
}
func (f *fakeShiftRepo) GetByEmployeeUpToDate(ctx context.Context, employeeID string, until time.Time) ([]shift.Shift, error) {
	return f.shifts, f.err
}
func (f *fakeShiftRepo) GetByDate(ctx context.Context, date time.Time) ([]shift.Shift, error) {
	return f.shifts, f.err
}
func (f *fakeShiftRepo) GetByManagerID(ctx context.Context, managerID string) ([]shift.Shift, error) {
	return f.shifts, f.err
}
func (f *fakeShiftRepo) GetOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	return nil, f.err
}
func (f *fakeShiftRepo) GetInRange(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	return f.shifts, f.err
}
func (f *fakeShiftRepo) GetOpenShifts(ctx context.Context, excludeEmployeeID string) ([]shift.Shift, error) {
	return nil, f.err
}
func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error { return f.err }
func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error     { return f.err }

// fakeTimeEntryRepo keys entries by calendar day and can fail selectively.
type fakeTimeEntryRepo struct {
	entriesByDay map[string][]timesheet.TimeEntry
	failDays     map[string]error
	openEntry    *timesheet.TimeEntry
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

func (f *fakeTimeEntryRepo) Create(ctx context.Context, e timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	return e, nil
}
func (f *fakeTimeEntryRepo) GetByID(ctx context.Context, id string) (timesheet.TimeEntry, error) {
	return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
}
func (f *fakeTimeEntryRepo) GetOpenEntry(ctx context.Context, employeeID string) (timesheet.TimeEntry, error) {
	if f.openEntry != nil {
		return *f.openEntry, nil
	}
	return timesheet.TimeEntry{}, timesheet.ErrNotClockedIn
}
func (f *fakeTimeEntryRepo) GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]timesheet.TimeEntry, error) {
	if err, ok := f.failDays[dayKey(day)]; ok {
		return nil, err
	}
	return f.entriesByDay[dayKey(day)], nil
}
func (f *fakeTimeEntryRepo) GetInRange(ctx context.Context, employeeID string, start, end time.Time) ([]timesheet.TimeEntry, error) {
	return nil, nil
}
func (f *fakeTimeEntryRepo) GetByEmployee(ctx context.Context, employeeID string, limit int) ([]timesheet.TimeEntry, error) {
	return nil, nil
}
func (f *fakeTimeEntryRepo) GetAll(ctx context.Context, limit int) ([]timesheet.TimeEntry, error) {
	return nil, nil
}
func (f *fakeTimeEntryRepo) GetStaleOpenEntries(ctx context.Context, cutoff time.Time) ([]timesheet.TimeEntry, error) {
	return nil, nil
}
func (f *fakeTimeEntryRepo) Update(ctx context.Context, e timesheet.TimeEntry) error { return nil }

var scanNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func scanDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func shiftOn(id string, day time.Time, startHour, endHour int) shift.Shift {
	return shift.Shift{
		ID:        id,
		Date:      scanDay(day),
		StartTime: time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, time.UTC),
		EndTime:   time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, time.UTC),
	}
}

func TestCountMissedShifts_PastShiftWithoutEntries(t *testing.T) {
	yesterday := scanNow.AddDate(0, 0, -1)
	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{shiftOn("s1", yesterday, 9, 17)}}
	entryRepo := &fakeTimeEntryRepo{}

	svc := NewTimesheetService(entryRepo, shiftRepo)

	count, err := svc.CountMissedShifts(context.Background(), "emp-1", scanNow)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCountMissedShifts_PastShiftFullyCovered(t *testing.T) {
	yesterday := scanNow.AddDate(0, 0, -1)
	sh := shiftOn("s1", yesterday, 9, 17)
	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{sh}}
	entryRepo := &fakeTimeEntryRepo{
		entriesByDay: map[string][]timesheet.TimeEntry{
			dayKey(yesterday): {{ClockIn: sh.StartTime, ClockOut: &sh.EndTime}},
		},
	}

	svc := NewTimesheetService(entryRepo, shiftRepo)

	count, err := svc.CountMissedShifts(context.Background(), "emp-1", scanNow)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCountMissedShifts_TodayWithinGrace(t *testing.T) {
	// Shift started 10 minutes ago; the 15-minute grace still applies.
	sh := shift.Shift{
		ID:        "s1",
		Date:      scanDay(scanNow),
		StartTime: scanNow.Add(-10 * time.Minute),
		EndTime:   scanNow.Add(8 * time.Hour),
	}
	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{sh}}
	entryRepo := &fakeTimeEntryRepo{}

	svc := NewTimesheetService(entryRepo, shiftRepo)

	count, err := svc.CountMissedShifts(context.Background(), "emp-1", scanNow)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCountMissedShifts_TodayPastGraceNoEntries(t *testing.T) {
	sh := shiftOn("s1", scanNow, 9, 17)
	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{sh}}
	entryRepo := &fakeTimeEntryRepo{}

	svc := NewTimesheetService(entryRepo, shiftRepo)

	// Now is 12:00, three hours past start with nothing clocked in.
	count, err := svc.CountMissedShifts(context.Background(), "emp-1", scanNow)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCountMissedShifts_ActiveShiftSuppressedWhileClockedIn(t *testing.T) {
	sh := shiftOn("s1", scanNow, 9, 17)
	open := timesheet.TimeEntry{ID: "e1", EmployeeID: "emp-1", ClockIn: sh.StartTime.Add(2 * time.Hour)}
	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{sh}}
	entryRepo := &fakeTimeEntryRepo{
		openEntry: &open,
		entriesByDay: map[string][]timesheet.TimeEntry{
			dayKey(scanNow): {open},
		},
	}

	svc := NewTimesheetService(entryRepo, shiftRepo)

	// Clocked in late, coverage inadequate so far, but the shift is in
	// progress and attended.
	count, err := svc.CountMissedShifts(context.Background(), "emp-1", scanNow)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCountMissedShifts_OpenShiftsSkipped(t *testing.T) {
	yesterday := scanNow.AddDate(0, 0, -1)
	sh := shiftOn("s1", yesterday, 9, 17)
	sh.IsOpen = true
	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{sh}}
	entryRepo := &fakeTimeEntryRepo{}

	svc := NewTimesheetService(entryRepo, shiftRepo)

	count, err := svc.CountMissedShifts(context.Background(), "emp-1", scanNow)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCountMissedShifts_UnverifiablePastShiftCountsAsMissed(t *testing.T) {
	yesterday := scanNow.AddDate(0, 0, -1)
	sh := shiftOn("s1", yesterday, 9, 17)
	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{sh}}
	entryRepo := &fakeTimeEntryRepo{
		failDays: map[string]error{dayKey(yesterday): errors.New("connection reset")},
	}

	svc := NewTimesheetService(entryRepo, shiftRepo)

	count, err := svc.CountMissedShifts(context.Background(), "emp-1", scanNow)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCountMissedShifts_ShiftFetchErrorPropagates(t *testing.T) {
	shiftRepo := &fakeShiftRepo{err: errors.New("connection reset")}
	entryRepo := &fakeTimeEntryRepo{}

	svc := NewTimesheetService(entryRepo, shiftRepo)

	_, err := svc.CountMissedShifts(context.Background(), "emp-1", scanNow)
	assert.Error(t, err)
}
