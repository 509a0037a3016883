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
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type fakePayslipRepo struct {
	payslips   map[string]payslip.Payslip
	lastNumber string
	seenPrefix string
	createErr  error

	created *payslip.Payslip
	updated *payslip.Payslip
	deleted []string

	statusUpdates []payslip.Status
}

func (f *fakePayslipRepo) Create(ctx context.Context, p payslip.Payslip) (payslip.Payslip, error) {
	if f.createErr != nil {
		return payslip.Payslip{}, f.createErr
	}
	p.ID = "ps-1"
	f.created = &p
	return p, nil
}
func (f *fakePayslipRepo) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	p, ok := f.payslips[id]
	if !ok {
		return payslip.Payslip{}, payslip.ErrPayslipNotFound
	}
	return p, nil
}
func (f *fakePayslipRepo) GetByEmployee(ctx context.Context, employeeID string) ([]payslip.Payslip, error) {
	return nil, nil
}
func (f *fakePayslipRepo) GetAll(ctx context.Context) ([]payslip.Payslip, error) { return nil, nil }
func (f *fakePayslipRepo) LastNumberForPrefix(ctx context.Context, prefix string) (string, error) {
	f.seenPrefix = prefix
	return f.lastNumber, nil
}
func (f *fakePayslipRepo) Update(ctx context.Context, p payslip.Payslip) error {
	f.updated = &p
	return nil
}
func (f *fakePayslipRepo) UpdateStatus(ctx context.Context, id string, status payslip.Status) (payslip.Payslip, error) {
	f.statusUpdates = append(f.statusUpdates, status)
	p := f.payslips[id]
	p.Status = status
	return p, nil
}
func (f *fakePayslipRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newTestService(repo *fakePayslipRepo, emp employee.Employee) payslip.PayslipService {
	return NewPayslipService(
		repo,
		&fakeEmployeeRepo{employees: map[string]employee.Employee{emp.ID: emp}},
		&fakeCalcShiftRepo{},
		&fakeCalcEntryRepo{},
	)
}

func TestPayslipCreate_FirstNumberOfMonth(t *testing.T) {
	repo := &fakePayslipRepo{}
	svc := newTestService(repo, monthlyEmployee(4800))

	result, err := svc.Create(context.Background(), payslip.CreatePayslipRequest{
		EmployeeID:     "emp-1",
		PayPeriodStart: "2026-03-01",
		PayPeriodEnd:   "2026-03-31",
	})
	require.NoError(t, err)

	assert.Equal(t, repo.seenPrefix+"0001", result.PayslipNumber)
	assert.Equal(t, string(payslip.StatusDraft), result.Status)
}

func TestPayslipCreate_NumberContinuesSequence(t *testing.T) {
	repo := &fakePayslipRepo{}
	now := time.Now()
	repo.lastNumber = now.Format("PS200601") + "0007"
	svc := newTestService(repo, monthlyEmployee(4800))

	result, err := svc.Create(context.Background(), payslip.CreatePayslipRequest{
		EmployeeID:     "emp-1",
		PayPeriodStart: "2026-03-01",
		PayPeriodEnd:   "2026-03-31",
	})
	require.NoError(t, err)

	assert.Equal(t, repo.seenPrefix+"0008", result.PayslipNumber)
}

func TestPayslipCreate_DuplicatePeriod(t *testing.T) {
	repo := &fakePayslipRepo{createErr: payslip.ErrPayslipExists}
	svc := newTestService(repo, monthlyEmployee(4800))

	_, err := svc.Create(context.Background(), payslip.CreatePayslipRequest{
		EmployeeID:     "emp-1",
		PayPeriodStart: "2026-03-01",
		PayPeriodEnd:   "2026-03-31",
	})
	assert.ErrorIs(t, err, payslip.ErrPayslipExists)
}

func TestPayslipCreate_InvalidPeriodOrder(t *testing.T) {
	repo := &fakePayslipRepo{}
	svc := newTestService(repo, monthlyEmployee(4800))

	_, err := svc.Create(context.Background(), payslip.CreatePayslipRequest{
		EmployeeID:     "emp-1",
		PayPeriodStart: "2026-03-31",
		PayPeriodEnd:   "2026-03-01",
	})

	var vErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &vErrs)
	assert.Nil(t, repo.created)
}

func TestPayslipUpdate_StatusOnlySkipsRecalculation(t *testing.T) {
	gross := decimal.NewFromInt(285)
	repo := &fakePayslipRepo{
		payslips: map[string]payslip.Payslip{
			"ps-1": {
				ID:             "ps-1",
				EmployeeID:     "emp-1",
				PayPeriodStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				PayPeriodEnd:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
				GrossPay:       gross,
				Status:         payslip.StatusDraft,
			},
		},
	}
	svc := newTestService(repo, monthlyEmployee(4800))

	status := string(payslip.StatusApproved)
	result, err := svc.Update(context.Background(), payslip.UpdatePayslipRequest{
		ID:     "ps-1",
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, string(payslip.StatusApproved), result.Status)
	assert.True(t, result.GrossPay.Equal(gross), "gross pay recalculated: %s", result.GrossPay)
	assert.Nil(t, repo.updated)
	assert.Equal(t, []payslip.Status{payslip.StatusApproved}, repo.statusUpdates)
}

func TestPayslipUpdate_PaidIsImmutable(t *testing.T) {
	repo := &fakePayslipRepo{
		payslips: map[string]payslip.Payslip{
			"ps-1": {ID: "ps-1", EmployeeID: "emp-1", Status: payslip.StatusPaid},
		},
	}
	svc := newTestService(repo, monthlyEmployee(4800))

	status := string(payslip.StatusDraft)
	_, err := svc.Update(context.Background(), payslip.UpdatePayslipRequest{ID: "ps-1", Status: &status})
	assert.ErrorIs(t, err, payslip.ErrPayslipAlreadyPaid)
}

func TestPayslipPatchStatus_PaidIsImmutable(t *testing.T) {
	repo := &fakePayslipRepo{
		payslips: map[string]payslip.Payslip{
			"ps-1": {ID: "ps-1", EmployeeID: "emp-1", Status: payslip.StatusPaid},
		},
	}
	svc := newTestService(repo, monthlyEmployee(4800))

	_, err := svc.PatchStatus(context.Background(), payslip.PatchStatusRequest{
		ID:     "ps-1",
		Status: string(payslip.StatusApproved),
	})
	assert.ErrorIs(t, err, payslip.ErrPayslipAlreadyPaid)
}

func TestPayslipDelete_OnlyDrafts(t *testing.T) {
	repo := &fakePayslipRepo{
		payslips: map[string]payslip.Payslip{
			"draft":    {ID: "draft", Status: payslip.StatusDraft},
			"approved": {ID: "approved", Status: payslip.StatusApproved},
		},
	}
	svc := newTestService(repo, monthlyEmployee(4800))

	require.NoError(t, svc.Delete(context.Background(), "draft"))
	assert.Equal(t, []string{"draft"}, repo.deleted)

	err := svc.Delete(context.Background(), "approved")
	assert.ErrorIs(t, err, payslip.ErrCannotDeleteNonDraft)
}

func TestPayslipDelete_NotFound(t *testing.T) {
	repo := &fakePayslipRepo{}
	svc := newTestService(repo, monthlyEmployee(4800))

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, payslip.ErrPayslipNotFound)
}
