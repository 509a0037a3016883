package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/timesheet"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

// NewTimeEntryRepository creates a new time entry repository
func NewTimeEntryRepository(db *database.DB) timesheet.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

const timeEntryColumns = `
	t.id, t.employee_id, t.manager_id, t.clock_in, t.clock_out,
	t.total_hours, t.overtime_hours, t.created_at, t.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name`

const timeEntryJoin = `
	FROM time_entries t
	JOIN employees e ON e.id = t.employee_id`

func scanTimeEntry(row pgx.Row) (timesheet.TimeEntry, error) {
	var entry timesheet.TimeEntry

	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.ManagerID, &entry.ClockIn, &entry.ClockOut,
		&entry.TotalHours, &entry.OvertimeHours, &entry.CreatedAt, &entry.UpdatedAt,
		&entry.EmployeeName,
	)
	if err != nil {
		return timesheet.TimeEntry{}, err
	}

	return entry, nil
}

func (r *timeEntryRepository) queryEntries(ctx context.Context, query string, args ...interface{}) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.TimeEntry
	for rows.Next() {
		entry, scanErr := scanTimeEntry(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", scanErr)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *timeEntryRepository) Create(ctx context.Context, entry timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query := `
		INSERT INTO time_entries (
			id, employee_id, manager_id, clock_in, clock_out,
			total_hours, overtime_hours, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		entry.ID, entry.EmployeeID, entry.ManagerID, entry.ClockIn, entry.ClockOut,
		entry.TotalHours, entry.OvertimeHours, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return timesheet.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

func (r *timeEntryRepository) GetByID(ctx context.Context, id string) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s %s WHERE t.id = $1`, timeEntryColumns, timeEntryJoin)

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
		}
		return timesheet.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return entry, nil
}

func (r *timeEntryRepository) GetOpenEntry(ctx context.Context, employeeID string) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE t.employee_id = $1 AND t.clock_out IS NULL
		ORDER BY t.clock_in DESC
		LIMIT 1
	`, timeEntryColumns, timeEntryJoin)

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.TimeEntry{}, timesheet.ErrNotClockedIn
		}
		return timesheet.TimeEntry{}, fmt.Errorf("failed to get open time entry: %w", err)
	}

	return entry, nil
}

func (r *timeEntryRepository) GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]timesheet.TimeEntry, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE t.employee_id = $1 AND t.clock_in >= $2 AND t.clock_in < $3
		ORDER BY t.clock_in DESC
	`, timeEntryColumns, timeEntryJoin)

	return r.queryEntries(ctx, query, employeeID, dayStart, dayEnd)
}

func (r *timeEntryRepository) GetInRange(ctx context.Context, employeeID string, start, end time.Time) ([]timesheet.TimeEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE t.employee_id = $1
		  AND (
			(t.clock_in >= $2 AND t.clock_in <= $3)
			OR (t.clock_out >= $2 AND t.clock_out <= $3)
			OR (t.clock_in <= $2 AND t.clock_out >= $3)
		  )
		ORDER BY t.clock_in
	`, timeEntryColumns, timeEntryJoin)

	return r.queryEntries(ctx, query, employeeID, start, end)
}

func (r *timeEntryRepository) GetByEmployee(ctx context.Context, employeeID string, limit int) ([]timesheet.TimeEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE t.employee_id = $1
		ORDER BY t.clock_in DESC
		LIMIT $2
	`, timeEntryColumns, timeEntryJoin)

	return r.queryEntries(ctx, query, employeeID, limit)
}

func (r *timeEntryRepository) GetAll(ctx context.Context, limit int) ([]timesheet.TimeEntry, error) {
	if limit <= 0 {
		limit = 500
	}

	query := fmt.Sprintf(`
		SELECT %s %s
		ORDER BY t.clock_in DESC
		LIMIT $1
	`, timeEntryColumns, timeEntryJoin)

	return r.queryEntries(ctx, query, limit)
}

func (r *timeEntryRepository) GetStaleOpenEntries(ctx context.Context, cutoff time.Time) ([]timesheet.TimeEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE t.clock_out IS NULL AND t.clock_in < $1
		ORDER BY t.clock_in
	`, timeEntryColumns, timeEntryJoin)

	return r.queryEntries(ctx, query, cutoff)
}

func (r *timeEntryRepository) Update(ctx context.Context, entry timesheet.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries SET
			clock_out = $2, total_hours = $3, overtime_hours = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		entry.ID, entry.ClockOut, entry.TotalHours, entry.OvertimeHours, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}

	return nil
}
