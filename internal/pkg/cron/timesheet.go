package cron

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/workflowhq/workforce-backend-go/internal/domain/notification"
	"github.com/workflowhq/workforce-backend-go/internal/domain/timesheet"
)

// staleSessionMaxAge is how old an open clock-in must be before the
// auto-close job closes it.
const staleSessionMaxAge = 16 * time.Hour

type TimesheetJobs struct {
	timeEntryRepo   timesheet.TimeEntryRepository
	notificationSvc notification.Service
	now             func() time.Time
}

func NewTimesheetJobs(
	timeEntryRepo timesheet.TimeEntryRepository,
	notificationSvc notification.Service,
) *TimesheetJobs {
	return &TimesheetJobs{
		timeEntryRepo:   timeEntryRepo,
		notificationSvc: notificationSvc,
		now:             time.Now,
	}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_time_entries", 1*time.Hour, j.AutoCloseStaleEntries)
}

// AutoCloseStaleEntries closes forgotten clock-ins. The closing timestamp
// is the cutoff itself, so an entry that sat open for days does not accrue
// days of worked hours.
func (j *TimesheetJobs) AutoCloseStaleEntries(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if j.now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-close stale time entries job")

	cutoff := j.now().Add(-staleSessionMaxAge)
	staleEntries, err := j.timeEntryRepo.GetStaleOpenEntries(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to get stale open entries: %w", err)
	}

	if len(staleEntries) == 0 {
		slog.Info("Cron: No stale time entries found")
		return nil
	}

	closedCount := 0
	for _, entry := range staleEntries {
		clockOut := entry.ClockIn.Add(staleSessionMaxAge)
		if clockOut.After(j.now()) {
			clockOut = j.now()
		}

		total := math.Round(clockOut.Sub(entry.ClockIn).Hours()*100) / 100
		overtime := 0.0
		if total > 8 {
			overtime = math.Round((total-8)*100) / 100
		}

		entry.ClockOut = &clockOut
		entry.TotalHours = &total
		entry.OvertimeHours = &overtime

		if err := j.timeEntryRepo.Update(ctx, entry); err != nil {
			slog.Error("Cron: Failed to auto-close time entry",
				"entry_id", entry.ID, "employee_id", entry.EmployeeID, "error", err)
			continue
		}

		j.notificationSvc.Notify(ctx, entry.ManagerID, entry.EmployeeID,
			"Session auto-closed",
			fmt.Sprintf("Your clock-in from %s was closed automatically. Please review your hours.",
				entry.ClockIn.Format("Jan 2 15:04")),
			notification.TypeWarning, notification.CategorySystem)

		closedCount++
	}

	slog.Info("Cron: Auto-close stale time entries completed",
		"closed", closedCount, "total_stale", len(staleEntries))

	return nil
}
