package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/leave"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

// NewLeaveRepository creates a new leave request repository
func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.manager_id, l.start_date, l.end_date, l.days,
	l.leave_type, l.reason, l.status, l.created_at, l.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	m.first_name || ' ' || m.last_name AS manager_name`

const leaveJoin = `
	FROM leave_requests l
	JOIN employees e ON e.id = l.employee_id
	JOIN employees m ON m.id = l.manager_id`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	var leaveType, status string

	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.ManagerID, &lr.StartDate, &lr.EndDate, &lr.Days,
		&leaveType, &lr.Reason, &status, &lr.CreatedAt, &lr.UpdatedAt,
		&lr.EmployeeName, &lr.ManagerName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	lr.LeaveType = leave.LeaveType(leaveType)
	lr.Status = leave.Status(status)
	return lr, nil
}

func (r *leaveRepository) queryLeaveRequests(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, scanErr := scanLeaveRequest(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", scanErr)
		}
		requests = append(requests, lr)
	}

	return requests, nil
}

func (r *leaveRepository) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if lr.ID == "" {
		lr.ID = uuid.New().String()
	}
	now := time.Now()
	lr.CreatedAt = now
	lr.UpdatedAt = now

	query := `
		INSERT INTO leave_requests (
			id, employee_id, manager_id, start_date, end_date, days,
			leave_type, reason, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := q.Exec(ctx, query,
		lr.ID, lr.EmployeeID, lr.ManagerID, lr.StartDate, lr.EndDate, lr.Days,
		string(lr.LeaveType), lr.Reason, string(lr.Status), lr.CreatedAt, lr.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return lr, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s %s WHERE l.id = $1`, leaveColumns, leaveJoin)

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return lr, nil
}

func (r *leaveRepository) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE l.employee_id = $1
		ORDER BY l.created_at DESC
	`, leaveColumns, leaveJoin)

	return r.queryLeaveRequests(ctx, query, employeeID)
}

func (r *leaveRepository) GetPendingByManager(ctx context.Context, managerID string) ([]leave.LeaveRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE l.manager_id = $1 AND l.status = 'Pending'
		ORDER BY l.created_at
	`, leaveColumns, leaveJoin)

	return r.queryLeaveRequests(ctx, query, managerID)
}

func (r *leaveRepository) GetAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		ORDER BY l.created_at DESC
	`, leaveColumns, leaveJoin)

	return r.queryLeaveRequests(ctx, query)
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE leave_requests SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := q.Exec(ctx, query, id, string(status), time.Now())
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}

	return r.GetByID(ctx, id)
}
