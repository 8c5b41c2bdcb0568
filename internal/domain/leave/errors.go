package leave

import "errors"

var (
	ErrInvalidDateRange       = errors.New("end date must not be before start date")
	ErrUnknownEmployee        = errors.New("employee does not resolve to a known active employee")
	ErrInvalidLeaveType       = errors.New("leave type not recognized")
	ErrLeaveRequestNotFound   = errors.New("leave request not found")
	ErrLeaveRequestNotPending = errors.New("leave request already approved or rejected")
	ErrNotAuthorized          = errors.New("only administrators may approve or reject leave requests")
)
