package employee

import (
	"context"
)

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	ListPending(ctx context.Context) ([]EmployeeResponse, error)
	ApproveAccount(ctx context.Context, id string) error
	RejectAccount(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	GetProfile(ctx context.Context, employeeID string) (EmployeeResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) error
}
