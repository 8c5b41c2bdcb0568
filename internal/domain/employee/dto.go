package employee

import (
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Email        string           `json:"email"`
	Password     string           `json:"password"`
	FullName     string           `json:"full_name"`
	Role         string           `json:"role"`
	Position     *string          `json:"position,omitempty"`
	Department   *string          `json:"department,omitempty"`
	PhoneNumber  *string          `json:"phone_number,omitempty"`
	HireDate     string           `json:"hire_date"`
	BaseSalary   *decimal.Decimal `json:"base_salary,omitempty"`
	LeaveBalance int              `json:"leave_balance"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or staff",
		})
	}

	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be 10-15 digits",
		})
	}

	if r.LeaveBalance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_balance",
			Message: "leave_balance must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProfileRequest struct {
	EmployeeID  string  `json:"-"`
	FullName    *string `json:"full_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be 10-15 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeResponse never exposes the password hash
type EmployeeResponse struct {
	ID            string           `json:"id"`
	Email         string           `json:"email"`
	FullName      string           `json:"full_name"`
	Role          Role             `json:"role"`
	AccountStatus AccountStatus    `json:"account_status"`
	Position      *string          `json:"position,omitempty"`
	Department    *string          `json:"department,omitempty"`
	PhoneNumber   *string          `json:"phone_number,omitempty"`
	Address       *string          `json:"address,omitempty"`
	AvatarURL     *string          `json:"avatar_url,omitempty"`
	HireDate      string           `json:"hire_date"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	LeaveBalance  int              `json:"leave_balance"`
	Active        bool             `json:"active"`
	CreatedAt     time.Time        `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Email:         e.Email,
		FullName:      e.FullName,
		Role:          e.Role,
		AccountStatus: e.AccountStatus,
		Position:      e.Position,
		Department:    e.Department,
		PhoneNumber:   e.PhoneNumber,
		Address:       e.Address,
		AvatarURL:     e.AvatarURL,
		HireDate:      e.HireDate.Format("2006-01-02"),
		BaseSalary:    e.BaseSalary,
		LeaveBalance:  e.LeaveBalance,
		Active:        e.Active,
		CreatedAt:     e.CreatedAt,
	}
}
