package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
)

// LeaveServiceImpl owns the leave request ledger: every creation and status
// transition goes through here, the repositories stay dumb.
type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	tx database.Transactor
}

func NewLeaveService(leaveRequestRepository leave.LeaveRequestRepository, employeeRepository employee.EmployeeRepository, tx database.Transactor) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		tx:                     tx,
	}
}

// Submit implements leave.LeaveService. Validation fully precedes mutation:
// nothing is appended on any error path.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if !leave.IsValidLeaveType(req.Type) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidLeaveType
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if endDate.Before(startDate) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return leave.LeaveRequestResponse{}, leave.ErrUnknownEmployee
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}
	if !emp.Active {
		return leave.LeaveRequestResponse{}, leave.ErrUnknownEmployee
	}

	now := time.Now()
	request := leave.LeaveRequest{
		EmployeeID:  emp.ID,
		Type:        leave.LeaveType(req.Type),
		StartDate:   startDate,
		EndDate:     endDate,
		Days:        leave.InclusiveDays(startDate, endDate),
		Reason:      req.Reason,
		Status:      leave.LeaveRequestStatusPending,
		AppliedDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToResponse(created), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, requestID string, actingAdminID string) (leave.LeaveRequestResponse, error) {
	if err := s.requireAdmin(ctx, actingAdminID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var updated leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var txErr error
		updated, txErr = s.LeaveRequestRepository.TransitionStatus(txCtx, requestID, leave.LeaveRequestStatusApproved, actingAdminID, time.Now(), nil)
		if txErr != nil {
			return txErr
		}

		// Annual leave consumes entitlement on approval.
		if updated.Type == leave.LeaveTypeAnnual {
			if txErr := s.EmployeeRepository.AdjustLeaveBalance(txCtx, updated.EmployeeID, -updated.Days); txErr != nil {
				return fmt.Errorf("failed to deduct leave balance: %w", txErr)
			}
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(updated), nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, requestID string, actingAdminID string, reason string) (leave.LeaveRequestResponse, error) {
	if err := s.requireAdmin(ctx, actingAdminID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var rejectionReason *string
	if reason != "" {
		rejectionReason = &reason
	}

	updated, err := s.LeaveRequestRepository.TransitionStatus(ctx, requestID, leave.LeaveRequestStatusRejected, actingAdminID, time.Now(), rejectionReason)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(updated), nil
}

// ListForEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListForEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.ToResponses(requests), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return leave.ToResponses(requests), nil
}

func (s *LeaveServiceImpl) requireAdmin(ctx context.Context, actingAdminID string) error {
	actor, err := s.EmployeeRepository.GetByID(ctx, actingAdminID)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return leave.ErrNotAuthorized
		}
		return fmt.Errorf("failed to resolve acting admin: %w", err)
	}
	if !actor.IsAdmin() {
		return leave.ErrNotAuthorized
	}
	return nil
}
