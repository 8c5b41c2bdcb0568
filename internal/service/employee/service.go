package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// Create is the admin path for adding an employee. Accounts created this way
// skip the approval queue and land directly in approved.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if _, err := s.EmployeeRepository.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Email:         req.Email,
		PasswordHash:  &passwordHash,
		FullName:      req.FullName,
		Role:          employee.Role(req.Role),
		AccountStatus: employee.AccountStatusApproved,
		Position:      req.Position,
		Department:    req.Department,
		PhoneNumber:   req.PhoneNumber,
		HireDate:      hireDate,
		BaseSalary:    req.BaseSalary,
		LeaveBalance:  req.LeaveBalance,
		Active:        true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) ListPending(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.ListByAccountStatus(ctx, employee.AccountStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending accounts: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) ApproveAccount(ctx context.Context, id string) error {
	return s.EmployeeRepository.UpdateAccountStatus(ctx, id, employee.AccountStatusApproved)
}

func (s *EmployeeServiceImpl) RejectAccount(ctx context.Context, id string) error {
	return s.EmployeeRepository.UpdateAccountStatus(ctx, id, employee.AccountStatusRejected)
}

func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.EmployeeRepository.SetActive(ctx, id, false)
}

func (s *EmployeeServiceImpl) GetProfile(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	return s.Get(ctx, employeeID)
}

func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, req employee.UpdateProfileRequest) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}
	return s.EmployeeRepository.UpdateProfile(ctx, req)
}
