package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/goal"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/database"
)

type goalRepository struct {
	db *database.DB
}

// NewGoalRepository creates a new goal repository. The module checklist is
// stored as a JSONB column on the goal row and written back whole on update.
func NewGoalRepository(db *database.DB) goal.GoalRepository {
	return &goalRepository{db: db}
}

const goalColumns = `
	g.id, g.employee_id, g.assigned_by, g.title, g.description, g.due_date,
	g.modules, g.progress, g.status, g.created_at, g.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	a.first_name || ' ' || a.last_name AS assigner_name`

const goalJoin = `
	FROM goals g
	JOIN employees e ON e.id = g.employee_id
	JOIN employees a ON a.id = g.assigned_by`

type moduleRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func scanGoal(row pgx.Row) (goal.Goal, error) {
	var g goal.Goal
	var status string
	var modulesJSON []byte

	err := row.Scan(
		&g.ID, &g.EmployeeID, &g.AssignedBy, &g.Title, &g.Description, &g.DueDate,
		&modulesJSON, &g.Progress, &status, &g.CreatedAt, &g.UpdatedAt,
		&g.EmployeeName, &g.AssignerName,
	)
	if err != nil {
		return goal.Goal{}, err
	}

	g.Status = goal.Status(status)

	var records []moduleRecord
	if modulesJSON != nil {
		if err := json.Unmarshal(modulesJSON, &records); err != nil {
			return goal.Goal{}, fmt.Errorf("failed to unmarshal goal modules: %w", err)
		}
	}
	g.Modules = make([]goal.Module, 0, len(records))
	for _, rec := range records {
		g.Modules = append(g.Modules, goal.Module{
			ID:     rec.ID,
			Name:   rec.Name,
			Status: goal.ModuleStatus(rec.Status),
		})
	}

	return g, nil
}

func marshalModules(modules []goal.Module) ([]byte, error) {
	records := make([]moduleRecord, 0, len(modules))
	for _, m := range modules {
		records = append(records, moduleRecord{
			ID:     m.ID,
			Name:   m.Name,
			Status: string(m.Status),
		})
	}
	return json.Marshal(records)
}

func (r *goalRepository) queryGoals(ctx context.Context, query string, args ...interface{}) ([]goal.Goal, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []goal.Goal
	for rows.Next() {
		g, scanErr := scanGoal(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", scanErr)
		}
		goals = append(goals, g)
	}

	return goals, nil
}

func (r *goalRepository) Create(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	q := GetQuerier(ctx, r.db)

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now

	modulesJSON, err := marshalModules(g.Modules)
	if err != nil {
		return goal.Goal{}, fmt.Errorf("failed to marshal goal modules: %w", err)
	}

	query := `
		INSERT INTO goals (
			id, employee_id, assigned_by, title, description, due_date,
			modules, progress, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = q.Exec(ctx, query,
		g.ID, g.EmployeeID, g.AssignedBy, g.Title, g.Description, g.DueDate,
		modulesJSON, g.Progress, string(g.Status), g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return goal.Goal{}, fmt.Errorf("failed to create goal: %w", err)
	}

	return g, nil
}

func (r *goalRepository) GetByID(ctx context.Context, id string) (goal.Goal, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s %s WHERE g.id = $1`, goalColumns, goalJoin)

	g, err := scanGoal(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goal.Goal{}, goal.ErrGoalNotFound
		}
		return goal.Goal{}, fmt.Errorf("failed to get goal: %w", err)
	}

	return g, nil
}

func (r *goalRepository) GetByEmployee(ctx context.Context, employeeID string) ([]goal.Goal, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE g.employee_id = $1
		ORDER BY g.created_at DESC
	`, goalColumns, goalJoin)

	return r.queryGoals(ctx, query, employeeID)
}

func (r *goalRepository) GetByAssigner(ctx context.Context, assignerID string) ([]goal.Goal, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE g.assigned_by = $1
		ORDER BY g.created_at DESC
	`, goalColumns, goalJoin)

	return r.queryGoals(ctx, query, assignerID)
}

func (r *goalRepository) Update(ctx context.Context, g goal.Goal) error {
	q := GetQuerier(ctx, r.db)

	modulesJSON, err := marshalModules(g.Modules)
	if err != nil {
		return fmt.Errorf("failed to marshal goal modules: %w", err)
	}

	query := `
		UPDATE goals SET
			title = $2, description = $3, due_date = $4,
			modules = $5, progress = $6, status = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		g.ID, g.Title, g.Description, g.DueDate,
		modulesJSON, g.Progress, string(g.Status), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	if result.RowsAffected() == 0 {
		return goal.ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if result.RowsAffected() == 0 {
		return goal.ErrGoalNotFound
	}

	return nil
}
