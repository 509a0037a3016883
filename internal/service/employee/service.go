package employee

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, err
	}

	if req.ManagerID != nil {
		if _, mgrErr := s.employeeRepo.GetByID(ctx, *req.ManagerID); mgrErr != nil {
			if errors.Is(mgrErr, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrManagerNotFound
			}
			return employee.EmployeeResponse{}, mgrErr
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	role := employee.RoleEmployee
	if req.Role != "" {
		role = employee.Role(req.Role)
	}

	hireDate := time.Now()
	if req.HireDate != nil {
		hireDate, _ = validator.IsValidDate(*req.HireDate)
	}

	emp := employee.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
		ManagerID:    req.ManagerID,
		PositionID:   req.PositionID,
		DepartmentID: req.DepartmentID,
		HireDate:     hireDate,
		Compensation: employee.Compensation{
			Wage:      req.Wage,
			PayPeriod: employee.PayPeriod(req.PayPeriod),
		},
		Deductions:   deductionsFromInput(req.Deductions),
		LeaveBalance: employee.LeaveBalance{Annual: 20, Sick: 10},
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.Filter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, mapToEmployeeResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *EmployeeServiceImpl) ListByManager(ctx context.Context, managerID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetByManagerID(ctx, managerID)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToEmployeeResponse(emp))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.ManagerID != nil && *req.ManagerID != "" {
		if _, mgrErr := s.employeeRepo.GetByID(ctx, *req.ManagerID); mgrErr != nil {
			if errors.Is(mgrErr, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrManagerNotFound
			}
			return employee.EmployeeResponse{}, mgrErr
		}
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.City != nil {
		emp.City = req.City
	}
	if req.Country != nil {
		emp.Country = req.Country
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.ManagerID != nil {
		emp.ManagerID = req.ManagerID
	}
	if req.PositionID != nil {
		emp.PositionID = req.PositionID
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.Wage != nil {
		emp.Compensation.Wage = *req.Wage
	}
	if req.PayPeriod != nil {
		emp.Compensation.PayPeriod = employee.PayPeriod(*req.PayPeriod)
	}
	if req.Deductions != nil {
		emp.Deductions = deductionsFromInput(req.Deductions)
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

// ========== HELPERS ==========

func deductionsFromInput(input *employee.DeductionsInput) employee.Deductions {
	if input == nil {
		return employee.Deductions{}
	}
	return employee.Deductions{
		Tax:            input.Tax,
		SocialSecurity: input.SocialSecurity,
		Medicare:       input.Medicare,
		Insurance:      input.Insurance,
		Retirement:     input.Retirement,
	}
}

func mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Email:        emp.Email,
		Role:         string(emp.Role),
		Phone:        emp.Phone,
		Address:      emp.Address,
		City:         emp.City,
		Country:      emp.Country,
		ManagerID:    emp.ManagerID,
		ManagerName:  emp.ManagerName,
		PositionID:   emp.PositionID,
		DepartmentID: emp.DepartmentID,
		HireDate:     emp.HireDate.Format("2006-01-02"),
		Wage:         emp.Compensation.Wage,
		PayPeriod:    string(emp.Compensation.PayPeriod),
		Deductions: employee.DeductionsOutput{
			Tax:            emp.Deductions.Tax,
			SocialSecurity: emp.Deductions.SocialSecurity,
			Medicare:       emp.Deductions.Medicare,
			Insurance:      emp.Deductions.Insurance,
			Retirement:     emp.Deductions.Retirement,
		},
		AnnualLeave: emp.LeaveBalance.Annual,
		SickLeave:   emp.LeaveBalance.Sick,
	}
}
