package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workflowhq/workforce-backend-go/internal/domain/payslip"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/database"
)

type payslipRepository struct {
	db *database.DB
}

// NewPayslipRepository creates a new payslip repository
func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `
	p.id, p.employee_id, p.payslip_number, p.pay_period_start, p.pay_period_end,
	p.regular_hours, p.overtime_hours, p.wage, p.overtime_rate, p.gross_pay,
	p.deduction_tax, p.deduction_social_security, p.deduction_medicare,
	p.deduction_insurance, p.deduction_retirement,
	p.net_pay, p.final_bill, p.status, p.notes, p.created_at, p.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name`

const payslipJoin = `
	FROM payslips p
	JOIN employees e ON e.id = p.employee_id`

func scanPayslip(row pgx.Row) (payslip.Payslip, error) {
	var p payslip.Payslip
	var status string

	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PayslipNumber, &p.PayPeriodStart, &p.PayPeriodEnd,
		&p.RegularHours, &p.OvertimeHours, &p.Wage, &p.OvertimeRate, &p.GrossPay,
		&p.Deductions.Tax, &p.Deductions.SocialSecurity, &p.Deductions.Medicare,
		&p.Deductions.Insurance, &p.Deductions.Retirement,
		&p.NetPay, &p.FinalBill, &status, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName,
	)
	if err != nil {
		return payslip.Payslip{}, err
	}

	p.Status = payslip.Status(status)
	return p, nil
}

func (r *payslipRepository) queryPayslips(ctx context.Context, query string, args ...interface{}) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		p, scanErr := scanPayslip(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", scanErr)
		}
		payslips = append(payslips, p)
	}

	return payslips, nil
}

// Create inserts the payslip. The unique index over (employee_id,
// pay_period_start, pay_period_end) makes concurrent duplicate generation
// impossible; a constraint violation comes back as ErrPayslipExists.
func (r *payslipRepository) Create(ctx context.Context, p payslip.Payslip) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO payslips (
			id, employee_id, payslip_number, pay_period_start, pay_period_end,
			regular_hours, overtime_hours, wage, overtime_rate, gross_pay,
			deduction_tax, deduction_social_security, deduction_medicare,
			deduction_insurance, deduction_retirement,
			net_pay, final_bill, status, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`

	_, err := q.Exec(ctx, query,
		p.ID, p.EmployeeID, p.PayslipNumber, p.PayPeriodStart, p.PayPeriodEnd,
		p.RegularHours, p.OvertimeHours, p.Wage, p.OvertimeRate, p.GrossPay,
		p.Deductions.Tax, p.Deductions.SocialSecurity, p.Deductions.Medicare,
		p.Deductions.Insurance, p.Deductions.Retirement,
		p.NetPay, p.FinalBill, string(p.Status), p.Notes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payslip.Payslip{}, payslip.ErrPayslipExists
		}
		return payslip.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s %s WHERE p.id = $1`, payslipColumns, payslipJoin)

	p, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) GetByEmployee(ctx context.Context, employeeID string) ([]payslip.Payslip, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE p.employee_id = $1
		ORDER BY p.pay_period_start DESC
	`, payslipColumns, payslipJoin)

	return r.queryPayslips(ctx, query, employeeID)
}

func (r *payslipRepository) GetAll(ctx context.Context) ([]payslip.Payslip, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		ORDER BY p.created_at DESC
	`, payslipColumns, payslipJoin)

	return r.queryPayslips(ctx, query)
}

func (r *payslipRepository) LastNumberForPrefix(ctx context.Context, prefix string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT payslip_number FROM payslips
		WHERE payslip_number LIKE $1 || '%'
		ORDER BY payslip_number DESC
		LIMIT 1
	`

	var number string
	err := q.QueryRow(ctx, query, prefix).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get last payslip number: %w", err)
	}

	return number, nil
}

func (r *payslipRepository) Update(ctx context.Context, p payslip.Payslip) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips SET
			pay_period_start = $2, pay_period_end = $3,
			regular_hours = $4, overtime_hours = $5, wage = $6, overtime_rate = $7,
			gross_pay = $8,
			deduction_tax = $9, deduction_social_security = $10, deduction_medicare = $11,
			deduction_insurance = $12, deduction_retirement = $13,
			net_pay = $14, final_bill = $15, status = $16, notes = $17, updated_at = $18
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		p.ID, p.PayPeriodStart, p.PayPeriodEnd,
		p.RegularHours, p.OvertimeHours, p.Wage, p.OvertimeRate,
		p.GrossPay,
		p.Deductions.Tax, p.Deductions.SocialSecurity, p.Deductions.Medicare,
		p.Deductions.Insurance, p.Deductions.Retirement,
		p.NetPay, p.FinalBill, string(p.Status), p.Notes, time.Now(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payslip.ErrPayslipExists
		}
		return fmt.Errorf("failed to update payslip: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payslip.ErrPayslipNotFound
	}

	return nil
}

func (r *payslipRepository) UpdateStatus(ctx context.Context, id string, status payslip.Status) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payslips SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := q.Exec(ctx, query, id, string(status), time.Now())
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to update payslip status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payslip.Payslip{}, payslip.ErrPayslipNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *payslipRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM payslips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payslip.ErrPayslipNotFound
	}

	return nil
}
