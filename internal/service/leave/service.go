package leave

import (
	"context"
	"fmt"

	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/domain/leave"
	"github.com/workflowhq/workforce-backend-go/internal/domain/notification"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/database"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	txm          database.Transactor
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	notifier     notification.Service
}

func NewLeaveService(
	txm database.Transactor,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	notifier notification.Service,
) leave.LeaveService {
	return &LeaveServiceImpl{
		txm:          txm,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
	}
}

func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	// The balance gate runs at request time too, so employees cannot queue
	// up more days than they have left.
	leaveType := leave.LeaveType(req.LeaveType)
	if available := balanceFor(emp, leaveType); req.Days > available {
		return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	lr := leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		ManagerID:  req.ManagerID,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       req.Days,
		LeaveType:  leaveType,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, lr)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.notifier.Notify(ctx, req.EmployeeID, req.ManagerID,
		"Leave request submitted",
		fmt.Sprintf("%s %s requested %d day(s) of %s leave.", emp.FirstName, emp.LastName, req.Days, req.LeaveType),
		notification.TypeInfo, notification.CategoryLeave)

	return mapToLeaveResponse(created), nil
}

func (s *LeaveServiceImpl) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToLeaveResponses(requests), nil
}

func (s *LeaveServiceImpl) GetPendingByManager(ctx context.Context, managerID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.GetPendingByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return mapToLeaveResponses(requests), nil
}

func (s *LeaveServiceImpl) GetAll(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToLeaveResponses(requests), nil
}

func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	lr, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if lr.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}
	if lr.ManagerID != req.ManagerID {
		return leave.LeaveRequestResponse{}, leave.ErrNotRequestManager
	}

	status := leave.Status(req.Status)

	// Balance deduction and status change commit or roll back together,
	// so a failed decision never leaves days deducted on a Pending request.
	var updated leave.LeaveRequest
	err = s.txm.InTx(ctx, func(ctx context.Context) error {
		if status == leave.StatusApproved {
			emp, empErr := s.employeeRepo.GetByID(ctx, lr.EmployeeID)
			if empErr != nil {
				return empErr
			}

			available := balanceFor(emp, lr.LeaveType)
			if lr.Days > available {
				return leave.ErrInsufficientBalance
			}

			balance := emp.LeaveBalance
			switch lr.LeaveType {
			case leave.LeaveTypeAnnual:
				balance.Annual -= lr.Days
			case leave.LeaveTypeSick:
				balance.Sick -= lr.Days
			}

			if balErr := s.employeeRepo.UpdateLeaveBalance(ctx, lr.EmployeeID, balance); balErr != nil {
				return balErr
			}
		}

		var txErr error
		updated, txErr = s.leaveRepo.UpdateStatus(ctx, req.ID, status)
		return txErr
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	typ := notification.TypeSuccess
	verb := "approved"
	if status == leave.StatusRejected {
		typ = notification.TypeWarning
		verb = "rejected"
	}
	s.notifier.Notify(ctx, req.ManagerID, lr.EmployeeID,
		"Leave request "+verb,
		fmt.Sprintf("Your %s leave request for %d day(s) was %s.", lr.LeaveType, lr.Days, verb),
		typ, notification.CategoryLeave)

	return mapToLeaveResponse(updated), nil
}

// ========== HELPERS ==========

func balanceFor(emp employee.Employee, leaveType leave.LeaveType) int {
	if leaveType == leave.LeaveTypeSick {
		return emp.LeaveBalance.Sick
	}
	return emp.LeaveBalance.Annual
}

func mapToLeaveResponse(lr leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:           lr.ID,
		EmployeeID:   lr.EmployeeID,
		EmployeeName: lr.EmployeeName,
		ManagerID:    lr.ManagerID,
		ManagerName:  lr.ManagerName,
		StartDate:    lr.StartDate.Format("2006-01-02"),
		EndDate:      lr.EndDate.Format("2006-01-02"),
		Days:         lr.Days,
		LeaveType:    string(lr.LeaveType),
		Reason:       lr.Reason,
		Status:       string(lr.Status),
	}
}

func mapToLeaveResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	result := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		result = append(result, mapToLeaveResponse(lr))
	}
	return result
}
