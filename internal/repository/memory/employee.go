package memory

import (
	"context"
	"strings"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{store: store}
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.employees {
		if strings.EqualFold(existing.Email, emp.Email) {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	now := time.Now()
	emp.ID = newID()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	stored := emp
	r.store.employees = append(r.store.employees, &stored)
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, emp := range r.store.employees {
		if emp.ID == id {
			return *emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, emp := range r.store.employees {
		if strings.EqualFold(emp.Email, email) {
			return *emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]employee.Employee, 0, len(r.store.employees))
	for _, emp := range r.store.employees {
		result = append(result, *emp)
	}
	return result, nil
}

func (r *employeeRepositoryImpl) ListByAccountStatus(ctx context.Context, status employee.AccountStatus) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []employee.Employee
	for _, emp := range r.store.employees {
		if emp.AccountStatus == status {
			result = append(result, *emp)
		}
	}
	return result, nil
}

func (r *employeeRepositoryImpl) UpdateProfile(ctx context.Context, req employee.UpdateProfileRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, emp := range r.store.employees {
		if emp.ID != req.EmployeeID {
			continue
		}
		if req.FullName != nil {
			emp.FullName = *req.FullName
		}
		if req.PhoneNumber != nil {
			emp.PhoneNumber = req.PhoneNumber
		}
		if req.Address != nil {
			emp.Address = req.Address
		}
		if req.AvatarURL != nil {
			emp.AvatarURL = req.AvatarURL
		}
		emp.UpdatedAt = time.Now()
		return nil
	}
	return employee.ErrEmployeeNotFound
}

func (r *employeeRepositoryImpl) UpdateAccountStatus(ctx context.Context, id string, status employee.AccountStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, emp := range r.store.employees {
		if emp.ID != id {
			continue
		}
		if emp.AccountStatus != employee.AccountStatusPending {
			return employee.ErrAccountNotPending
		}
		emp.AccountStatus = status
		emp.UpdatedAt = time.Now()
		return nil
	}
	return employee.ErrEmployeeNotFound
}

func (r *employeeRepositoryImpl) AdjustLeaveBalance(ctx context.Context, id string, delta int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, emp := range r.store.employees {
		if emp.ID != id {
			continue
		}
		emp.LeaveBalance += delta
		emp.UpdatedAt = time.Now()
		return nil
	}
	return employee.ErrEmployeeNotFound
}

func (r *employeeRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, emp := range r.store.employees {
		if emp.ID != id {
			continue
		}
		emp.Active = active
		emp.UpdatedAt = time.Now()
		return nil
	}
	return employee.ErrEmployeeNotFound
}
