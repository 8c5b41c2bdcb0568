package employee

import (
	"context"
)

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ListByAccountStatus(ctx context.Context, status AccountStatus) ([]Employee, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) error
	// UpdateAccountStatus transitions a pending account to approved or rejected.
	// Returns ErrAccountNotPending when the account already left pending.
	UpdateAccountStatus(ctx context.Context, id string, status AccountStatus) error
	AdjustLeaveBalance(ctx context.Context, id string, delta int) error
	SetActive(ctx context.Context, id string, active bool) error
}
