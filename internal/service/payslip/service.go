package payslip

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/domain/payslip"
	"github.com/workflowhq/workforce-backend-go/internal/domain/shift"
	"github.com/workflowhq/workforce-backend-go/internal/domain/timesheet"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type PayslipServiceImpl struct {
	payslipRepo payslip.PayslipRepository
	calculator  *Calculator
}

func NewPayslipService(
	payslipRepo payslip.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	timeEntryRepo timesheet.TimeEntryRepository,
) payslip.PayslipService {
	return &PayslipServiceImpl{
		payslipRepo: payslipRepo,
		calculator:  NewCalculator(employeeRepo, shiftRepo, timeEntryRepo),
	}
}

func (s *PayslipServiceImpl) Create(ctx context.Context, req payslip.CreatePayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	periodStart, _ := validator.IsValidDate(req.PayPeriodStart)
	periodEnd, _ := validator.IsValidDate(req.PayPeriodEnd)

	calc, err := s.calculator.CalculatePay(ctx, req.EmployeeID, periodStart, periodEnd, req.OvertimeRate, req.Deductions)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	number, err := s.nextPayslipNumber(ctx)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	p := payslip.Payslip{
		EmployeeID:     req.EmployeeID,
		PayslipNumber:  number,
		PayPeriodStart: periodStart,
		PayPeriodEnd:   periodEnd,
		RegularHours:   calc.RegularHours,
		OvertimeHours:  calc.OvertimeHours,
		Wage:           calc.WageAmount,
		OvertimeRate:   calc.OvertimeRate,
		GrossPay:       calc.GrossPay,
		Deductions:     calc.Deductions,
		NetPay:         calc.NetPay,
		FinalBill:      calc.FinalBill,
		Status:         payslip.StatusDraft,
		Notes:          req.Notes,
	}

	// Duplicate (employee, period) pairs surface here as ErrPayslipExists,
	// backed by the unique constraint rather than a lookup beforehand.
	created, err := s.payslipRepo.Create(ctx, p)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	return mapToPayslipResponse(created), nil
}

func (s *PayslipServiceImpl) GetByID(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	p, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return mapToPayslipResponse(p), nil
}

func (s *PayslipServiceImpl) GetByEmployee(ctx context.Context, employeeID string) ([]payslip.PayslipResponse, error) {
	payslips, err := s.payslipRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToPayslipResponses(payslips), nil
}

func (s *PayslipServiceImpl) GetAll(ctx context.Context) ([]payslip.PayslipResponse, error) {
	payslips, err := s.payslipRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToPayslipResponses(payslips), nil
}

func (s *PayslipServiceImpl) Update(ctx context.Context, req payslip.UpdatePayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	existing, err := s.payslipRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	if existing.Status == payslip.StatusPaid {
		return payslip.PayslipResponse{}, payslip.ErrPayslipAlreadyPaid
	}

	// A pure status change keeps the stored amounts untouched.
	if req.StatusOnly() {
		updated, statusErr := s.payslipRepo.UpdateStatus(ctx, req.ID, payslip.Status(*req.Status))
		if statusErr != nil {
			return payslip.PayslipResponse{}, statusErr
		}
		return mapToPayslipResponse(updated), nil
	}

	periodStart := existing.PayPeriodStart
	periodEnd := existing.PayPeriodEnd
	if req.PayPeriodStart != nil {
		periodStart, _ = validator.IsValidDate(*req.PayPeriodStart)
	}
	if req.PayPeriodEnd != nil {
		periodEnd, _ = validator.IsValidDate(*req.PayPeriodEnd)
	}
	if !periodStart.Before(periodEnd) {
		return payslip.PayslipResponse{}, validator.ValidationErrors{
			{Field: "pay_period_end", Message: "must be after pay_period_start"},
		}
	}

	calc, err := s.calculator.CalculatePay(ctx, existing.EmployeeID, periodStart, periodEnd, req.OvertimeRate, req.Deductions)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	existing.PayPeriodStart = periodStart
	existing.PayPeriodEnd = periodEnd
	existing.RegularHours = calc.RegularHours
	existing.OvertimeHours = calc.OvertimeHours
	existing.Wage = calc.WageAmount
	existing.OvertimeRate = calc.OvertimeRate
	existing.GrossPay = calc.GrossPay
	existing.Deductions = calc.Deductions
	existing.NetPay = calc.NetPay
	existing.FinalBill = calc.FinalBill
	if req.Status != nil {
		existing.Status = payslip.Status(*req.Status)
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}

	if err := s.payslipRepo.Update(ctx, existing); err != nil {
		return payslip.PayslipResponse{}, err
	}

	return mapToPayslipResponse(existing), nil
}

func (s *PayslipServiceImpl) PatchStatus(ctx context.Context, req payslip.PatchStatusRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	existing, err := s.payslipRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	if existing.Status == payslip.StatusPaid {
		return payslip.PayslipResponse{}, payslip.ErrPayslipAlreadyPaid
	}

	updated, err := s.payslipRepo.UpdateStatus(ctx, req.ID, payslip.Status(req.Status))
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	return mapToPayslipResponse(updated), nil
}

func (s *PayslipServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status != payslip.StatusDraft {
		return payslip.ErrCannotDeleteNonDraft
	}
	return s.payslipRepo.Delete(ctx, id)
}

// nextPayslipNumber builds PS<yyyy><mm><seq> with a per-month sequence,
// e.g. PS2026090001.
func (s *PayslipServiceImpl) nextPayslipNumber(ctx context.Context) (string, error) {
	now := time.Now()
	prefix := fmt.Sprintf("PS%04d%02d", now.Year(), int(now.Month()))

	last, err := s.payslipRepo.LastNumberForPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	seq := 1
	if len(last) > len(prefix) {
		if n, convErr := strconv.Atoi(last[len(prefix):]); convErr == nil {
			seq = n + 1
		}
	}

	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

func mapToPayslipResponse(p payslip.Payslip) payslip.PayslipResponse {
	return payslip.PayslipResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		EmployeeName:   p.EmployeeName,
		PayslipNumber:  p.PayslipNumber,
		PayPeriodStart: p.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:   p.PayPeriodEnd.Format("2006-01-02"),
		RegularHours:   p.RegularHours,
		OvertimeHours:  p.OvertimeHours,
		Wage:           p.Wage,
		OvertimeRate:   p.OvertimeRate,
		GrossPay:       p.GrossPay,
		Deductions: payslip.DeductionsResponse{
			Tax:            p.Deductions.Tax,
			SocialSecurity: p.Deductions.SocialSecurity,
			Medicare:       p.Deductions.Medicare,
			Insurance:      p.Deductions.Insurance,
			Retirement:     p.Deductions.Retirement,
		},
		NetPay:    p.NetPay,
		FinalBill: p.FinalBill,
		Status:    string(p.Status),
		Notes:     p.Notes,
	}
}

func mapToPayslipResponses(payslips []payslip.Payslip) []payslip.PayslipResponse {
	result := make([]payslip.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		result = append(result, mapToPayslipResponse(p))
	}
	return result
}
