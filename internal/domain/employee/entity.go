package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin Role = "admin" // HR administrator - manages accounts, leave, payroll
	RoleStaff Role = "staff" // Regular employee
)

// AccountStatus tracks the onboarding approval of an account.
// New registrations start as pending until an admin approves or rejects them.
type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusApproved AccountStatus = "approved"
	AccountStatusRejected AccountStatus = "rejected"
)

type Employee struct {
	ID            string
	Email         string
	PasswordHash  *string
	FullName      string
	Role          Role
	AccountStatus AccountStatus
	Position      *string
	Department    *string
	PhoneNumber   *string
	Address       *string
	AvatarURL     *string
	HireDate      time.Time
	BaseSalary    *decimal.Decimal
	LeaveBalance  int
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin checks if the employee holds the administrator role
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// CanLogin checks if the account passed admin approval and is still active
func (e *Employee) CanLogin() bool {
	return e.AccountStatus == AccountStatusApproved && e.Active
}

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleStaff:
		return true
	}
	return false
}
