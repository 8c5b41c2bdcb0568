package leave

import (
	"context"
)

// LeaveService is the sole authority for leave request creation, status
// transition, and role-scoped retrieval.
type LeaveService interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	Approve(ctx context.Context, requestID string, actingAdminID string) (LeaveRequestResponse, error)
	Reject(ctx context.Context, requestID string, actingAdminID string, reason string) (LeaveRequestResponse, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	ListPending(ctx context.Context) ([]LeaveRequestResponse, error)
}
