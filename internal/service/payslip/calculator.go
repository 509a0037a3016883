package payslip

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/domain/payslip"
	"github.com/workflowhq/workforce-backend-go/internal/domain/shift"
	"github.com/workflowhq/workforce-backend-go/internal/domain/timesheet"
)

// DefaultRequiredHours stands in for the scheduled hours when no shifts
// exist in the pay period, so a wage can still resolve to an hourly rate.
const DefaultRequiredHours = 160

var (
	defaultOvertimeMultiplier = decimal.NewFromFloat(1.5)
	monthsPerYear             = decimal.NewFromInt(12)
	minutesPerHour            = decimal.NewFromInt(60)
	regularHoursCap           = decimal.NewFromInt(8)
)

// Calculator derives pay amounts for one employee and period from the
// employee's wage configuration, the scheduled shifts and the completed
// time entries.
type Calculator struct {
	employeeRepo  employee.EmployeeRepository
	shiftRepo     shift.ShiftRepository
	timeEntryRepo timesheet.TimeEntryRepository
}

func NewCalculator(
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	timeEntryRepo timesheet.TimeEntryRepository,
) *Calculator {
	return &Calculator{
		employeeRepo:  employeeRepo,
		shiftRepo:     shiftRepo,
		timeEntryRepo: timeEntryRepo,
	}
}

// CalculatePay runs the payroll calculation for [periodStart, periodEnd].
// Required hours come from the shifts scheduled in the period (minus break
// time); worked hours come from completed entries, split per entry at the
// 8-hour mark into regular and overtime. The shift and entry reads run
// concurrently without a shared snapshot, so a write landing between them
// can skew one side of the calculation.
func (c *Calculator) CalculatePay(
	ctx context.Context,
	employeeID string,
	periodStart, periodEnd time.Time,
	overtimeRateOverride *decimal.Decimal,
	deductionsOverride *employee.DeductionsOverride,
) (payslip.PayCalculation, error) {
	emp, err := c.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payslip.PayCalculation{}, err
	}
	if emp.Compensation.Wage.IsZero() {
		return payslip.PayCalculation{}, employee.ErrWageNotConfigured
	}

	var (
		shifts  []shift.Shift
		entries []timesheet.TimeEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var gErr error
		shifts, gErr = c.shiftRepo.GetInRange(gctx, employeeID, periodStart, periodEnd)
		return gErr
	})
	g.Go(func() error {
		var gErr error
		entries, gErr = c.timeEntryRepo.GetInRange(gctx, employeeID, periodStart, periodEnd)
		return gErr
	})
	if err := g.Wait(); err != nil {
		return payslip.PayCalculation{}, err
	}

	requiredHours := decimal.Zero
	for _, sh := range shifts {
		scheduled := decimal.NewFromFloat(sh.EndTime.Sub(sh.StartTime).Hours())
		breakHours := decimal.NewFromInt(int64(sh.BreakTimeInMinutes)).Div(minutesPerHour)
		net := scheduled.Sub(breakHours)
		if net.IsPositive() {
			requiredHours = requiredHours.Add(net)
		}
	}

	regularHours := decimal.Zero
	overtimeHours := decimal.Zero
	for _, entry := range entries {
		if entry.ClockOut == nil {
			continue
		}
		worked := decimal.NewFromFloat(entry.ClockOut.Sub(entry.ClockIn).Hours())
		if !worked.IsPositive() {
			continue
		}
		if worked.GreaterThan(regularHoursCap) {
			regularHours = regularHours.Add(regularHoursCap)
			overtimeHours = overtimeHours.Add(worked.Sub(regularHoursCap))
		} else {
			regularHours = regularHours.Add(worked)
		}
	}

	rateBasis := requiredHours
	if rateBasis.IsZero() {
		rateBasis = decimal.NewFromInt(DefaultRequiredHours)
	}

	var hourlyRate decimal.Decimal
	switch emp.Compensation.PayPeriod {
	case employee.PayPeriodMonthly:
		hourlyRate = emp.Compensation.Wage.Div(rateBasis)
	case employee.PayPeriodAnnual:
		hourlyRate = emp.Compensation.Wage.Div(monthsPerYear).Div(rateBasis)
	default:
		return payslip.PayCalculation{}, payslip.ErrUnsupportedPayType
	}

	overtimeRate := hourlyRate.Mul(defaultOvertimeMultiplier)
	if overtimeRateOverride != nil {
		overtimeRate = *overtimeRateOverride
	}

	grossPay := regularHours.Mul(hourlyRate).Add(overtimeHours.Mul(overtimeRate))
	deductions := emp.Deductions.Merge(deductionsOverride)
	netPay := grossPay.Sub(deductions.Total())

	return payslip.PayCalculation{
		RegularHours:  regularHours.Round(2),
		OvertimeHours: overtimeHours.Round(2),
		RequiredHours: requiredHours.Round(2),
		HourlyRate:    hourlyRate.Round(2),
		OvertimeRate:  overtimeRate.Round(2),
		WageAmount:    emp.Compensation.Wage,
		GrossPay:      grossPay.Round(2),
		Deductions:    deductions,
		NetPay:        netPay.Round(2),
		FinalBill:     netPay.Round(2),
	}, nil
}
