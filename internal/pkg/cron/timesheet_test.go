package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workflowhq/workforce-backend-go/internal/domain/notification"
	"github.com/workflowhq/workforce-backend-go/internal/domain/timesheet"
)

type fakeEntryRepo struct {
	stale      []timesheet.TimeEntry
	staleCalls int
	updated    []timesheet.TimeEntry
}

func (f *fakeEntryRepo) Create(ctx context.Context, entry timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	return entry, nil
}
func (f *fakeEntryRepo) GetByID(ctx context.Context, id string) (timesheet.TimeEntry, error) {
	return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
}
func (f *fakeEntryRepo) GetOpenEntry(ctx context.Context, employeeID string) (timesheet.TimeEntry, error) {
	return timesheet.TimeEntry{}, timesheet.ErrNotClockedIn
}
func (f *fakeEntryRepo) GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]timesheet.TimeEntry, error) {
	return nil, nil
}
func (f *fakeEntryRepo) GetInRange(ctx context.Context, employeeID string, start, end time.Time) ([]timesheet.TimeEntry, error) {
	return nil, nil
}
func (f *fakeEntryRepo) GetByEmployee(ctx context.Context, employeeID string, limit int) ([]timesheet.TimeEntry, error) {
	return nil, nil
}
func (f *fakeEntryRepo) GetAll(ctx context.Context, limit int) ([]timesheet.TimeEntry, error) {
	return nil, nil
}
func (f *fakeEntryRepo) GetStaleOpenEntries(ctx context.Context, cutoff time.Time) ([]timesheet.TimeEntry, error) {
	f.staleCalls++
	return f.stale, nil
}
func (f *fakeEntryRepo) Update(ctx context.Context, entry timesheet.TimeEntry) error {
	f.updated = append(f.updated, entry)
	return nil
}

type notifyCall struct {
	ReceiverID string
	Type       notification.Type
}

type fakeNotifier struct {
	calls []notifyCall
}

func (f *fakeNotifier) Create(ctx context.Context, req notification.CreateNotificationRequest) (notification.NotificationResponse, error) {
	return notification.NotificationResponse{}, nil
}
func (f *fakeNotifier) Notify(ctx context.Context, senderID, receiverID, title, message string, typ notification.Type, category notification.Category) {
	f.calls = append(f.calls, notifyCall{ReceiverID: receiverID, Type: typ})
}
func (f *fakeNotifier) GetMine(ctx context.Context, receiverID string) ([]notification.NotificationResponse, error) {
	return nil, nil
}
func (f *fakeNotifier) UnreadCount(ctx context.Context, receiverID string) (notification.UnreadCountResponse, error) {
	return notification.UnreadCountResponse{}, nil
}
func (f *fakeNotifier) MarkRead(ctx context.Context, id, receiverID string) error { return nil }
func (f *fakeNotifier) MarkAllRead(ctx context.Context, receiverID string) error  { return nil }

func TestAutoCloseStaleEntries_ClosesAndNotifies(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 30, 0, 0, time.UTC)
	repo := &fakeEntryRepo{
		stale: []timesheet.TimeEntry{{
			ID:         "te-1",
			EmployeeID: "emp-1",
			ManagerID:  "mgr-1",
			ClockIn:    now.Add(-20 * time.Hour),
		}},
	}
	notifier := &fakeNotifier{}

	jobs := NewTimesheetJobs(repo, notifier)
	jobs.now = func() time.Time { return now }

	scheduler := NewScheduler()
	jobs.RegisterJobs(scheduler)
	scheduler.RunOnce(context.Background())

	require.Len(t, repo.updated, 1)
	closed := repo.updated[0]
	require.NotNil(t, closed.ClockOut)
	assert.Equal(t, closed.ClockIn.Add(staleSessionMaxAge), *closed.ClockOut)
	require.NotNil(t, closed.TotalHours)
	assert.Equal(t, 16.0, *closed.TotalHours)
	require.NotNil(t, closed.OvertimeHours)
	assert.Equal(t, 8.0, *closed.OvertimeHours)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "emp-1", notifier.calls[0].ReceiverID)
	assert.Equal(t, notification.TypeWarning, notifier.calls[0].Type)
}

func TestAutoCloseStaleEntries_SkipsOutsideMidnightWindow(t *testing.T) {
	repo := &fakeEntryRepo{}
	jobs := NewTimesheetJobs(repo, &fakeNotifier{})
	jobs.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	require.NoError(t, jobs.AutoCloseStaleEntries(context.Background()))

	assert.Zero(t, repo.staleCalls)
}
