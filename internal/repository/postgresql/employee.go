package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.first_name, e.last_name, e.email, e.password_hash, e.role, e.phone,
	e.address, e.city, e.country, e.manager_id, e.position_id, e.department_id,
	e.hire_date, e.wage, e.pay_period,
	e.deduction_tax, e.deduction_social_security, e.deduction_medicare,
	e.deduction_insurance, e.deduction_retirement,
	e.annual_leave_balance, e.sick_leave_balance,
	e.created_at, e.updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var role, payPeriod string

	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.PasswordHash, &role, &emp.Phone,
		&emp.Address, &emp.City, &emp.Country, &emp.ManagerID, &emp.PositionID, &emp.DepartmentID,
		&emp.HireDate, &emp.Compensation.Wage, &payPeriod,
		&emp.Deductions.Tax, &emp.Deductions.SocialSecurity, &emp.Deductions.Medicare,
		&emp.Deductions.Insurance, &emp.Deductions.Retirement,
		&emp.LeaveBalance.Annual, &emp.LeaveBalance.Sick,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.Role = employee.Role(role)
	emp.Compensation.PayPeriod = employee.PayPeriod(payPeriod)
	return emp, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	query := `
		INSERT INTO employees (
			id, first_name, last_name, email, password_hash, role, phone,
			address, city, country, manager_id, position_id, department_id,
			hire_date, wage, pay_period,
			deduction_tax, deduction_social_security, deduction_medicare,
			deduction_insurance, deduction_retirement,
			annual_leave_balance, sick_leave_balance,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	`

	_, err := q.Exec(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.PasswordHash, string(emp.Role), emp.Phone,
		emp.Address, emp.City, emp.Country, emp.ManagerID, emp.PositionID, emp.DepartmentID,
		emp.HireDate, emp.Compensation.Wage, string(emp.Compensation.PayPeriod),
		emp.Deductions.Tax, emp.Deductions.SocialSecurity, emp.Deductions.Medicare,
		emp.Deductions.Insurance, emp.Deductions.Retirement,
		emp.LeaveBalance.Annual, emp.LeaveBalance.Sick,
		emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees e WHERE e.id = $1`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees e WHERE LOWER(e.email) = LOWER($1)`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Role != nil {
		whereClause += fmt.Sprintf(" AND e.role = $%d", argIndex)
		args = append(args, *filter.Role)
		argIndex++
	}
	if filter.DepartmentID != nil {
		whereClause += fmt.Sprintf(" AND e.department_id = $%d", argIndex)
		args = append(args, *filter.DepartmentID)
		argIndex++
	}
	if filter.ManagerID != nil {
		whereClause += fmt.Sprintf(" AND e.manager_id = $%d", argIndex)
		args = append(args, *filter.ManagerID)
		argIndex++
	}
	if filter.Search != nil {
		whereClause += fmt.Sprintf(
			" AND (e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.email ILIKE $%d)",
			argIndex, argIndex, argIndex)
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees e WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM employees e
		WHERE %s
		ORDER BY e.last_name, e.first_name
		LIMIT $%d OFFSET $%d
	`, employeeColumns, whereClause, argIndex, argIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", scanErr)
		}
		employees = append(employees, emp)
	}

	return employees, total, nil
}

func (r *employeeRepository) GetByManagerID(ctx context.Context, managerID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM employees e
		WHERE e.manager_id = $1
		ORDER BY e.last_name, e.first_name
	`, employeeColumns)

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees by manager: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", scanErr)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			first_name = $2, last_name = $3, phone = $4,
			address = $5, city = $6, country = $7, role = $8,
			manager_id = $9, position_id = $10, department_id = $11,
			wage = $12, pay_period = $13,
			deduction_tax = $14, deduction_social_security = $15, deduction_medicare = $16,
			deduction_insurance = $17, deduction_retirement = $18,
			updated_at = $19
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Phone,
		emp.Address, emp.City, emp.Country, string(emp.Role),
		emp.ManagerID, emp.PositionID, emp.DepartmentID,
		emp.Compensation.Wage, string(emp.Compensation.PayPeriod),
		emp.Deductions.Tax, emp.Deductions.SocialSecurity, emp.Deductions.Medicare,
		emp.Deductions.Insurance, emp.Deductions.Retirement,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if result.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) UpdateLeaveBalance(ctx context.Context, id string, balance employee.LeaveBalance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET annual_leave_balance = $2, sick_leave_balance = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query, id, balance.Annual, balance.Sick, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update leave balance: %w", err)
	}
	if result.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if result.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
