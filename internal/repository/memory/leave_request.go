package memory

import (
	"context"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
)

type leaveRequestRepositoryImpl struct {
	store *Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{store: store}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	request.ID = newID()
	request.CreatedAt = now
	request.UpdatedAt = now
	request.EmployeeName = r.employeeName(request.EmployeeID)

	stored := request
	r.store.leaveRequests = append(r.store.leaveRequests, &stored)
	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, lr := range r.store.leaveRequests {
		if lr.ID == id {
			return *lr, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (r *leaveRequestRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// Walk backwards: insertion order is chronological, callers want most
	// recent first.
	var result []leave.LeaveRequest
	for i := len(r.store.leaveRequests) - 1; i >= 0; i-- {
		if r.store.leaveRequests[i].EmployeeID == employeeID {
			result = append(result, *r.store.leaveRequests[i])
		}
	}
	return result, nil
}

func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []leave.LeaveRequest
	for _, lr := range r.store.leaveRequests {
		if lr.Status == leave.LeaveRequestStatusPending {
			result = append(result, *lr)
		}
	}
	return result, nil
}

func (r *leaveRequestRepositoryImpl) TransitionStatus(ctx context.Context, id string, to leave.LeaveRequestStatus, actedBy string, actedAt time.Time, reason *string) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, lr := range r.store.leaveRequests {
		if lr.ID != id {
			continue
		}
		// Same guard as the postgres backend's conditional UPDATE: the
		// transition fires once, a racing second call loses here.
		if !lr.Status.CanTransitionTo(to) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotPending
		}
		lr.Status = to
		lr.ApprovedBy = &actedBy
		lr.ApprovedAt = &actedAt
		if to == leave.LeaveRequestStatusRejected {
			lr.RejectionReason = reason
		}
		lr.UpdatedAt = time.Now()
		return *lr, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

// employeeName resolves the display name for joined listings. Caller holds
// the store lock.
func (r *leaveRequestRepositoryImpl) employeeName(employeeID string) *string {
	for _, emp := range r.store.employees {
		if emp.ID == employeeID {
			name := emp.FullName
			return &name
		}
	}
	return nil
}
