package payslip

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/domain/payslip"
	"github.com/workflowhq/workforce-backend-go/internal/domain/shift"
	"github.com/workflowhq/workforce-backend-go/internal/domain/timesheet"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
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

type fakeCalcShiftRepo struct {
	shifts []shift.Shift
}

func (f *fakeCalcShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	return s, nil
}
func (f *fakeCalcShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	return shift.Shift{}, shift.ErrShiftNotFound
}
func (f *fakeCalcShiftRepo) GetByEmployeeFromDate(ctx context.Context, employeeID string, from time.Time) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeCalcShiftRepo) GetByEmployeeUpToDate(ctx context.Context, employeeID string, until time.Time) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeCalcShiftRepo) GetByDate(ctx context.Context, date time.Time) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeCalcShiftRepo) GetByManagerID(ctx context.Context, managerID string) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeCalcShiftRepo) GetOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeCalcShiftRepo) GetInRange(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	return f.shifts, nil
}
func (f *fakeCalcShiftRepo) GetOpenShifts(ctx context.Context, excludeEmployeeID string) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeCalcShiftRepo) Update(ctx context.Context, s shift.Shift) error { return nil }
func (f *fakeCalcShiftRepo) Delete(ctx context.Context, id string) error     { return nil }

type fakeCalcEntryRepo struct {
	entries []timesheet.TimeEntry
}

func (f *fakeCalcEntryRepo) Create(ctx context.Context, e timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	return e, nil
}
func (f *fakeCalcEntryRepo) GetByID(ctx context.Context, id string) (timesheet.TimeEntry, error) {
	return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
}
func (f *fakeCalcEntryRepo) GetOpenEntry(ctx context.Context, employeeID string) (timesheet.TimeEntry, error) {
	return timesheet.TimeEntry{}, timesheet.ErrNotClockedIn
}
func (f *fakeCalcEntryRepo) GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]timesheet.TimeEntry, error) {
	return nil, nil
}
func (f *fakeCalcEntryRepo) GetInRange(ctx context.Context, employeeID string, start, end time.Time) ([]timesheet.TimeEntry, error) {
	return f.entries, nil
}
func (f *fakeCalcEntryRepo) GetByEmployee(ctx context.Context, employeeID string, limit int) ([]timesheet.TimeEntry, error) {
	return nil, nil
}
func (f *fakeCalcEntryRepo) GetAll(ctx context.Context, limit int) ([]timesheet.TimeEntry, error) {
	return nil, nil
}
func (f *fakeCalcEntryRepo) GetStaleOpenEntries(ctx context.Context, cutoff time.Time) ([]timesheet.TimeEntry, error) {
	return nil, nil
}
func (f *fakeCalcEntryRepo) Update(ctx context.Context, e timesheet.TimeEntry) error { return nil }

var (
	periodStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
)

func monthlyEmployee(wage int64) employee.Employee {
	return employee.Employee{
		ID: "emp-1",
		Compensation: employee.Compensation{
			Wage:      decimal.NewFromInt(wage),
			PayPeriod: employee.PayPeriodMonthly,
		},
	}
}

func completedEntry(day, startHour, hours int) timesheet.TimeEntry {
	clockIn := time.Date(2026, 3, day, startHour, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(time.Duration(hours) * time.Hour)
	return timesheet.TimeEntry{ClockIn: clockIn, ClockOut: &clockOut}
}

func newTestCalculator(emp employee.Employee, shifts []shift.Shift, entries []timesheet.TimeEntry) *Calculator {
	return NewCalculator(
		&fakeEmployeeRepo{employees: map[string]employee.Employee{emp.ID: emp}},
		&fakeCalcShiftRepo{shifts: shifts},
		&fakeCalcEntryRepo{entries: entries},
	)
}

func TestCalculatePay_MonthlyWithOvertime(t *testing.T) {
	// No scheduled shifts: the 160-hour default resolves the rate.
	// 4800 / 160 = 30/h, a nine-hour day splits 8 + 1 at 1.5x.
	calc := newTestCalculator(monthlyEmployee(4800), nil, []timesheet.TimeEntry{
		completedEntry(2, 9, 9),
	})

	result, err := calc.CalculatePay(context.Background(), "emp-1", periodStart, periodEnd, nil, nil)
	require.NoError(t, err)

	assert.True(t, result.RegularHours.Equal(decimal.NewFromInt(8)), "regular hours: %s", result.RegularHours)
	assert.True(t, result.OvertimeHours.Equal(decimal.NewFromInt(1)), "overtime hours: %s", result.OvertimeHours)
	assert.True(t, result.HourlyRate.Equal(decimal.NewFromInt(30)), "hourly rate: %s", result.HourlyRate)
	assert.True(t, result.OvertimeRate.Equal(decimal.NewFromInt(45)), "overtime rate: %s", result.OvertimeRate)
	assert.True(t, result.GrossPay.Equal(decimal.NewFromInt(285)), "gross pay: %s", result.GrossPay)
	assert.True(t, result.NetPay.Equal(decimal.NewFromInt(285)), "net pay: %s", result.NetPay)
}

func TestCalculatePay_AnnualWage(t *testing.T) {
	emp := employee.Employee{
		ID: "emp-1",
		Compensation: employee.Compensation{
			Wage:      decimal.NewFromInt(57600),
			PayPeriod: employee.PayPeriodAnnual,
		},
	}
	// 57600 / 12 / 160 = 30/h.
	calc := newTestCalculator(emp, nil, []timesheet.TimeEntry{completedEntry(2, 9, 8)})

	result, err := calc.CalculatePay(context.Background(), "emp-1", periodStart, periodEnd, nil, nil)
	require.NoError(t, err)

	assert.True(t, result.HourlyRate.Equal(decimal.NewFromInt(30)), "hourly rate: %s", result.HourlyRate)
	assert.True(t, result.GrossPay.Equal(decimal.NewFromInt(240)), "gross pay: %s", result.GrossPay)
}

func TestCalculatePay_RequiredHoursFromShifts(t *testing.T) {
	shifts := []shift.Shift{
		{
			StartTime:          time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			EndTime:            time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC),
			BreakTimeInMinutes: 30,
		},
		{
			StartTime:          time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC),
			EndTime:            time.Date(2026, 3, 3, 17, 0, 0, 0, time.UTC),
			BreakTimeInMinutes: 30,
		},
	}
	// 2 x 7.5 scheduled hours; 3000 / 15 = 200/h.
	calc := newTestCalculator(monthlyEmployee(3000), shifts, []timesheet.TimeEntry{
		completedEntry(2, 9, 8),
	})

	result, err := calc.CalculatePay(context.Background(), "emp-1", periodStart, periodEnd, nil, nil)
	require.NoError(t, err)

	assert.True(t, result.RequiredHours.Equal(decimal.NewFromFloat(15)), "required hours: %s", result.RequiredHours)
	assert.True(t, result.HourlyRate.Equal(decimal.NewFromInt(200)), "hourly rate: %s", result.HourlyRate)
}

func TestCalculatePay_OpenEntriesIgnored(t *testing.T) {
	open := timesheet.TimeEntry{ClockIn: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	calc := newTestCalculator(monthlyEmployee(4800), nil, []timesheet.TimeEntry{
		open,
		completedEntry(3, 9, 4),
	})

	result, err := calc.CalculatePay(context.Background(), "emp-1", periodStart, periodEnd, nil, nil)
	require.NoError(t, err)

	assert.True(t, result.RegularHours.Equal(decimal.NewFromInt(4)), "regular hours: %s", result.RegularHours)
	assert.True(t, result.OvertimeHours.IsZero(), "overtime hours: %s", result.OvertimeHours)
}

func TestCalculatePay_OvertimeRateOverride(t *testing.T) {
	override := decimal.NewFromInt(100)
	calc := newTestCalculator(monthlyEmployee(4800), nil, []timesheet.TimeEntry{
		completedEntry(2, 9, 10),
	})

	result, err := calc.CalculatePay(context.Background(), "emp-1", periodStart, periodEnd, &override, nil)
	require.NoError(t, err)

	// 8 x 30 + 2 x 100.
	assert.True(t, result.OvertimeRate.Equal(override), "overtime rate: %s", result.OvertimeRate)
	assert.True(t, result.GrossPay.Equal(decimal.NewFromInt(440)), "gross pay: %s", result.GrossPay)
}

func TestCalculatePay_DeductionsReduceNetPay(t *testing.T) {
	emp := monthlyEmployee(4800)
	emp.Deductions = employee.Deductions{
		Tax:       decimal.NewFromInt(40),
		Insurance: decimal.NewFromInt(10),
	}
	calc := newTestCalculator(emp, nil, []timesheet.TimeEntry{completedEntry(2, 9, 8)})

	overrideTax := decimal.NewFromInt(20)
	result, err := calc.CalculatePay(context.Background(), "emp-1", periodStart, periodEnd, nil, &employee.DeductionsOverride{
		Tax: &overrideTax,
	})
	require.NoError(t, err)

	// 240 gross, tax overridden to 20, insurance default 10.
	assert.True(t, result.GrossPay.Equal(decimal.NewFromInt(240)), "gross pay: %s", result.GrossPay)
	assert.True(t, result.NetPay.Equal(decimal.NewFromInt(210)), "net pay: %s", result.NetPay)
	assert.True(t, result.Deductions.Tax.Equal(overrideTax))
	assert.True(t, result.FinalBill.Equal(result.NetPay))
}

func TestCalculatePay_WageNotConfigured(t *testing.T) {
	emp := employee.Employee{ID: "emp-1"}
	calc := newTestCalculator(emp, nil, nil)

	_, err := calc.CalculatePay(context.Background(), "emp-1", periodStart, periodEnd, nil, nil)
	assert.ErrorIs(t, err, employee.ErrWageNotConfigured)
}

func TestCalculatePay_UnsupportedPayPeriod(t *testing.T) {
	emp := employee.Employee{
		ID: "emp-1",
		Compensation: employee.Compensation{
			Wage:      decimal.NewFromInt(1000),
			PayPeriod: employee.PayPeriod("Weekly"),
		},
	}
	calc := newTestCalculator(emp, nil, nil)

	_, err := calc.CalculatePay(context.Background(), "emp-1", periodStart, periodEnd, nil, nil)
	assert.ErrorIs(t, err, payslip.ErrUnsupportedPayType)
}

func TestCalculatePay_UnknownEmployee(t *testing.T) {
	calc := newTestCalculator(monthlyEmployee(4800), nil, nil)

	_, err := calc.CalculatePay(context.Background(), "nobody", periodStart, periodEnd, nil, nil)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
