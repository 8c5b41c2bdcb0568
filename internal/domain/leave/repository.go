package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for the leave_requests table.
// The store is append-only: records are created once and only their
// status transition fields ever change.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// ListByEmployeeID returns all of an employee's requests, most recent first.
	ListByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// ListPending returns all pending requests in insertion order.
	ListPending(ctx context.Context) ([]LeaveRequest, error)
	// TransitionStatus moves a pending request to a terminal status. The update
	// is guarded on the current status being pending, so of two racing calls
	// exactly one succeeds and the other gets ErrLeaveRequestNotPending.
	TransitionStatus(ctx context.Context, id string, to LeaveRequestStatus, actedBy string, actedAt time.Time, reason *string) (LeaveRequest, error)
}
