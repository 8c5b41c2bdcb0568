package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeCasual    LeaveType = "casual"
	LeaveTypeEmergency LeaveType = "emergency"
)

func IsValidLeaveType(t string) bool {
	switch LeaveType(t) {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypeCasual, LeaveTypeEmergency:
		return true
	}
	return false
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// allowedTransitions is the full state machine: pending is the only
// non-terminal state, approved and rejected admit no further edges.
var allowedTransitions = map[LeaveRequestStatus][]LeaveRequestStatus{
	LeaveRequestStatusPending:  {LeaveRequestStatusApproved, LeaveRequestStatusRejected},
	LeaveRequestStatusApproved: {},
	LeaveRequestStatusRejected: {},
}

// CanTransitionTo reports whether the status machine permits s -> to.
func (s LeaveRequestStatus) CanTransitionTo(to LeaveRequestStatus) bool {
	for _, next := range allowedTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// LeaveRequest entity. Immutable after creation except for the status
// transition fields; requests are never deleted.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType

	StartDate time.Time
	EndDate   time.Time
	Days      int

	Reason string

	Status          LeaveRequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	AppliedDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for admin listings
	EmployeeName *string
}

// InclusiveDays returns the whole-calendar-day count between start and end
// with both boundary dates counted: a single-day leave yields 1. Dates are
// normalized to midnight UTC first so time-of-day and timezone offsets
// never affect the count.
func InclusiveDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
