package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/shift"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	s.id, s.employee_id, s.manager_id, s.date, s.start_time, s.end_time,
	s.break_time_in_minutes, s.is_published, s.is_open,
	s.requested_by, s.request_status, s.created_at, s.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name`

const shiftJoin = `
	FROM shifts s
	JOIN employees e ON e.id = s.employee_id`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var sh shift.Shift
	var requestStatus string

	err := row.Scan(
		&sh.ID, &sh.EmployeeID, &sh.ManagerID, &sh.Date, &sh.StartTime, &sh.EndTime,
		&sh.BreakTimeInMinutes, &sh.IsPublished, &sh.IsOpen,
		&sh.RequestedBy, &requestStatus, &sh.CreatedAt, &sh.UpdatedAt,
		&sh.EmployeeName,
	)
	if err != nil {
		return shift.Shift{}, err
	}

	sh.RequestStatus = shift.RequestStatus(requestStatus)
	return sh, nil
}

func (r *shiftRepository) queryShifts(ctx context.Context, query string, args ...interface{}) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		sh, scanErr := scanShift(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", scanErr)
		}
		shifts = append(shifts, sh)
	}

	return shifts, nil
}

func (r *shiftRepository) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	if sh.ID == "" {
		sh.ID = uuid.New().String()
	}
	now := time.Now()
	sh.CreatedAt = now
	sh.UpdatedAt = now

	query := `
		INSERT INTO shifts (
			id, employee_id, manager_id, date, start_time, end_time,
			break_time_in_minutes, is_published, is_open,
			requested_by, request_status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := q.Exec(ctx, query,
		sh.ID, sh.EmployeeID, sh.ManagerID, sh.Date, sh.StartTime, sh.EndTime,
		sh.BreakTimeInMinutes, sh.IsPublished, sh.IsOpen,
		sh.RequestedBy, string(sh.RequestStatus), sh.CreatedAt, sh.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return sh, nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s %s WHERE s.id = $1`, shiftColumns, shiftJoin)

	sh, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return sh, nil
}

func (r *shiftRepository) GetByEmployeeFromDate(ctx context.Context, employeeID string, from time.Time) ([]shift.Shift, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE s.employee_id = $1 AND s.date >= $2
		ORDER BY s.date, s.start_time
	`, shiftColumns, shiftJoin)

	return r.queryShifts(ctx, query, employeeID, from)
}

func (r *shiftRepository) GetByEmployeeUpToDate(ctx context.Context, employeeID string, until time.Time) ([]shift.Shift, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE s.employee_id = $1 AND s.date <= $2
		ORDER BY s.date DESC, s.start_time DESC
	`, shiftColumns, shiftJoin)

	return r.queryShifts(ctx, query, employeeID, until)
}

func (r *shiftRepository) GetByDate(ctx context.Context, date time.Time) ([]shift.Shift, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE s.date = $1
		ORDER BY s.start_time
	`, shiftColumns, shiftJoin)

	return r.queryShifts(ctx, query, date)
}

func (r *shiftRepository) GetByManagerID(ctx context.Context, managerID string) ([]shift.Shift, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE s.manager_id = $1
		ORDER BY s.date DESC, s.start_time
	`, shiftColumns, shiftJoin)

	return r.queryShifts(ctx, query, managerID)
}

func (r *shiftRepository) GetOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE s.employee_id = $1 AND s.start_time < $3 AND s.end_time > $2
		ORDER BY s.start_time
	`, shiftColumns, shiftJoin)

	return r.queryShifts(ctx, query, employeeID, start, end)
}

func (r *shiftRepository) GetInRange(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE s.employee_id = $1
		  AND (
			(s.start_time >= $2 AND s.start_time <= $3)
			OR (s.end_time >= $2 AND s.end_time <= $3)
			OR (s.start_time <= $2 AND s.end_time >= $3)
		  )
		ORDER BY s.start_time
	`, shiftColumns, shiftJoin)

	return r.queryShifts(ctx, query, employeeID, start, end)
}

func (r *shiftRepository) GetOpenShifts(ctx context.Context, excludeEmployeeID string) ([]shift.Shift, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE s.is_open = true AND s.employee_id <> $1 AND s.start_time > NOW()
		ORDER BY s.start_time
	`, shiftColumns, shiftJoin)

	return r.queryShifts(ctx, query, excludeEmployeeID)
}

func (r *shiftRepository) Update(ctx context.Context, sh shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts SET
			employee_id = $2, start_time = $3, end_time = $4,
			break_time_in_minutes = $5, is_published = $6, is_open = $7,
			requested_by = $8, request_status = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		sh.ID, sh.EmployeeID, sh.StartTime, sh.EndTime,
		sh.BreakTimeInMinutes, sh.IsPublished, sh.IsOpen,
		sh.RequestedBy, string(sh.RequestStatus), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
