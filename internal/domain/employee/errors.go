package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrAccountNotPending  = errors.New("account already approved or rejected")
	ErrAccountNotApproved = errors.New("account not approved yet")
	ErrAdminRequired      = errors.New("admin privilege required")
	ErrEmployeeInactive   = errors.New("employee is inactive")
)
