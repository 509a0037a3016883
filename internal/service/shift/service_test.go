package shift

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/domain/notification"
	"github.com/workflowhq/workforce-backend-go/internal/domain/shift"
)

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
	nextID int
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]shift.Shift)}
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	f.nextID++
	s.ID = fmt.Sprintf("sh-%d", f.nextID)
	f.shifts[s.ID] = s
	return s, nil
}
func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}
func (f *fakeShiftRepo) GetByEmployeeFromDate(ctx context.Context, employeeID string, from time.Time) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeShiftRepo) GetByEmployeeUpToDate(ctx context.Context, employeeID string, until time.Time) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeShiftRepo) GetByDate(ctx context.Context, date time.Time) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeShiftRepo) GetByManagerID(ctx context.Context, managerID string) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeShiftRepo) GetOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	var result []shift.Shift
	for _, s := range f.shifts {
		if s.EmployeeID == employeeID && s.Overlaps(start, end) {
			result = append(result, s)
		}
	}
	return result, nil
}
func (f *fakeShiftRepo) GetInRange(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeShiftRepo) GetOpenShifts(ctx context.Context, excludeEmployeeID string) ([]shift.Shift, error) {
	var result []shift.Shift
	for _, s := range f.shifts {
		if s.IsOpen && s.EmployeeID != excludeEmployeeID {
			result = append(result, s)
		}
	}
	return result, nil
}
func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error {
	if _, ok := f.shifts[s.ID]; !ok {
		return shift.ErrShiftNotFound
	}
	f.shifts[s.ID] = s
	return nil
}
func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error {
	delete(f.shifts, id)
	return nil
}

type fakeEmployeeRepo struct {
	ids map[string]bool
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !f.ids[id] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id}, nil
}
func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}
func (f *fakeEmployeeRepo) GetByManagerID(ctx context.Context, managerID string) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) UpdateLeaveBalance(ctx context.Context, id string, balance employee.LeaveBalance) error {
	return nil
}
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

type notifyCall struct {
	SenderID   string
	ReceiverID string
	Title      string
	Type       notification.Type
}

type fakeNotifier struct {
	calls []notifyCall
}

func (f *fakeNotifier) Create(ctx context.Context, req notification.CreateNotificationRequest) (notification.NotificationResponse, error) {
	return notification.NotificationResponse{}, nil
}
func (f *fakeNotifier) Notify(ctx context.Context, senderID, receiverID, title, message string, typ notification.Type, category notification.Category) {
	f.calls = append(f.calls, notifyCall{SenderID: senderID, ReceiverID: receiverID, Title: title, Type: typ})
}
func (f *fakeNotifier) GetMine(ctx context.Context, receiverID string) ([]notification.NotificationResponse, error) {
	return nil, nil
}
func (f *fakeNotifier) UnreadCount(ctx context.Context, receiverID string) (notification.UnreadCountResponse, error) {
	return notification.UnreadCountResponse{}, nil
}
func (f *fakeNotifier) MarkRead(ctx context.Context, id, receiverID string) error { return nil }
func (f *fakeNotifier) MarkAllRead(ctx context.Context, receiverID string) error  { return nil }

func newTestShiftService(repo *fakeShiftRepo, notifier *fakeNotifier, employeeIDs ...string) shift.ShiftService {
	ids := make(map[string]bool)
	for _, id := range employeeIDs {
		ids[id] = true
	}
	return NewShiftService(repo, &fakeEmployeeRepo{ids: ids}, notifier)
}

func TestShiftCreate_RejectsOverlap(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestShiftService(repo, &fakeNotifier{}, "emp-1")

	_, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		ManagerID:  "mgr-1",
		Date:       "2026-03-09",
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	require.NoError(t, err)

	// Second shift starting inside the first one.
	_, err = svc.Create(context.Background(), shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		ManagerID:  "mgr-1",
		Date:       "2026-03-09",
		StartTime:  "16:00",
		EndTime:    "20:00",
	})
	assert.ErrorIs(t, err, shift.ErrShiftOverlap)
}

func TestShiftCreate_AdjacentShiftsAllowed(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestShiftService(repo, &fakeNotifier{}, "emp-1")

	_, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		ManagerID:  "mgr-1",
		Date:       "2026-03-09",
		StartTime:  "09:00",
		EndTime:    "13:00",
	})
	require.NoError(t, err)

	// Back to back is not an overlap.
	_, err = svc.Create(context.Background(), shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		ManagerID:  "mgr-1",
		Date:       "2026-03-09",
		StartTime:  "13:00",
		EndTime:    "17:00",
	})
	assert.NoError(t, err)
}

func TestShiftCreate_OvernightRollsToNextDay(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestShiftService(repo, &fakeNotifier{}, "emp-1")

	created, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		ManagerID:  "mgr-1",
		Date:       "2026-03-09",
		StartTime:  "22:00",
		EndTime:    "06:00",
	})
	require.NoError(t, err)

	stored := repo.shifts[created.ID]
	assert.Equal(t, 9, stored.StartTime.Day())
	assert.Equal(t, 10, stored.EndTime.Day())
	assert.True(t, stored.EndTime.After(stored.StartTime))
}

func TestShiftCreate_UnknownEmployee(t *testing.T) {
	svc := newTestShiftService(newFakeShiftRepo(), &fakeNotifier{})

	_, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		EmployeeID: "ghost",
		ManagerID:  "mgr-1",
		Date:       "2026-03-09",
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func futureShift(repo *fakeShiftRepo, owner string) shift.Shift {
	start := time.Now().Add(48 * time.Hour)
	s, _ := repo.Create(context.Background(), shift.Shift{
		EmployeeID:    owner,
		ManagerID:     "mgr-1",
		Date:          time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:     start,
		EndTime:       start.Add(8 * time.Hour),
		RequestStatus: shift.RequestStatusNone,
	})
	return s
}

func TestOpenShift_OnlyOwnerCanOpen(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestShiftService(repo, &fakeNotifier{}, "emp-1", "emp-2")
	sh := futureShift(repo, "emp-1")

	_, err := svc.OpenShift(context.Background(), sh.ID, "emp-2")
	assert.ErrorIs(t, err, shift.ErrNotShiftOwner)

	_, err = svc.OpenShift(context.Background(), sh.ID, "emp-1")
	require.NoError(t, err)
	assert.True(t, repo.shifts[sh.ID].IsOpen)
}

func TestOpenShift_PastShiftRejected(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestShiftService(repo, &fakeNotifier{}, "emp-1")

	start := time.Now().Add(-48 * time.Hour)
	sh, _ := repo.Create(context.Background(), shift.Shift{
		EmployeeID: "emp-1",
		StartTime:  start,
		EndTime:    start.Add(8 * time.Hour),
	})

	_, err := svc.OpenShift(context.Background(), sh.ID, "emp-1")
	assert.ErrorIs(t, err, shift.ErrPastShift)
}

func TestRequestShift_FullApprovalFlow(t *testing.T) {
	repo := newFakeShiftRepo()
	notifier := &fakeNotifier{}
	svc := newTestShiftService(repo, notifier, "emp-1", "emp-2")
	sh := futureShift(repo, "emp-1")

	_, err := svc.OpenShift(context.Background(), sh.ID, "emp-1")
	require.NoError(t, err)

	// Owner cannot claim their own open shift.
	_, err = svc.RequestShift(context.Background(), sh.ID, "emp-1")
	assert.ErrorIs(t, err, shift.ErrOwnShiftClaim)

	_, err = svc.RequestShift(context.Background(), sh.ID, "emp-2")
	require.NoError(t, err)
	assert.Equal(t, shift.RequestStatusPending, repo.shifts[sh.ID].RequestStatus)

	// The manager got pinged about the claim.
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "mgr-1", notifier.calls[0].ReceiverID)

	// A second claim while one is pending is rejected.
	_, err = svc.RequestShift(context.Background(), sh.ID, "emp-3")
	assert.ErrorIs(t, err, shift.ErrRequestPending)

	_, err = svc.ApproveShiftRequest(context.Background(), sh.ID, "mgr-1")
	require.NoError(t, err)

	final := repo.shifts[sh.ID]
	assert.Equal(t, "emp-2", final.EmployeeID)
	assert.False(t, final.IsOpen)
	assert.Equal(t, shift.RequestStatusNone, final.RequestStatus)
	assert.Nil(t, final.RequestedBy)

	// Requester and previous owner were both notified of the transfer.
	require.Len(t, notifier.calls, 3)
	assert.Equal(t, "emp-2", notifier.calls[1].ReceiverID)
	assert.Equal(t, notification.TypeSuccess, notifier.calls[1].Type)
	assert.Equal(t, "emp-1", notifier.calls[2].ReceiverID)
}

func TestRequestShift_NotOpen(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestShiftService(repo, &fakeNotifier{}, "emp-1", "emp-2")
	sh := futureShift(repo, "emp-1")

	_, err := svc.RequestShift(context.Background(), sh.ID, "emp-2")
	assert.ErrorIs(t, err, shift.ErrShiftNotOpen)
}

func TestRejectShiftRequest_ResetsClaim(t *testing.T) {
	repo := newFakeShiftRepo()
	notifier := &fakeNotifier{}
	svc := newTestShiftService(repo, notifier, "emp-1", "emp-2")
	sh := futureShift(repo, "emp-1")

	_, err := svc.OpenShift(context.Background(), sh.ID, "emp-1")
	require.NoError(t, err)
	_, err = svc.RequestShift(context.Background(), sh.ID, "emp-2")
	require.NoError(t, err)

	_, err = svc.RejectShiftRequest(context.Background(), sh.ID, "mgr-1")
	require.NoError(t, err)

	final := repo.shifts[sh.ID]
	assert.True(t, final.IsOpen, "shift stays open after a rejected claim")
	assert.Equal(t, shift.RequestStatusNone, final.RequestStatus)
	assert.Nil(t, final.RequestedBy)

	// The rejected requester got a warning.
	last := notifier.calls[len(notifier.calls)-1]
	assert.Equal(t, "emp-2", last.ReceiverID)
	assert.Equal(t, notification.TypeWarning, last.Type)
}

func TestApproveShiftRequest_NoPendingRequest(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestShiftService(repo, &fakeNotifier{}, "emp-1")
	sh := futureShift(repo, "emp-1")

	_, err := svc.ApproveShiftRequest(context.Background(), sh.ID, "mgr-1")
	assert.ErrorIs(t, err, shift.ErrNoPendingRequest)
}
