package payroll

import (
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertPayrollRequest struct {
	EmployeeID  string          `json:"employee_id"`
	PeriodMonth int             `json:"period_month"`
	PeriodYear  int             `json:"period_year"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	Notes       *string         `json:"notes,omitempty"`
}

func (r *UpsertPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: "period_month must be between 1 and 12",
		})
	}

	if r.PeriodYear < 2000 || r.PeriodYear > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_year",
			Message: "period_year is out of range",
		})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if r.Allowances.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "allowances",
			Message: "allowances must not be negative",
		})
	}

	if r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollRecordResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	PeriodMonth  int             `json:"period_month"`
	PeriodYear   int             `json:"period_year"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Status       PayrollStatus   `json:"status"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
	PaidBy       *string         `json:"paid_by,omitempty"`
	Notes        *string         `json:"notes,omitempty"`
}

func ToResponse(rec PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		PeriodMonth:  rec.PeriodMonth,
		PeriodYear:   rec.PeriodYear,
		BaseSalary:   rec.BaseSalary,
		Allowances:   rec.Allowances,
		Deductions:   rec.Deductions,
		NetSalary:    rec.NetSalary,
		Status:       rec.Status,
		PaidAt:       rec.PaidAt,
		PaidBy:       rec.PaidBy,
		Notes:        rec.Notes,
	}
}

func ToResponses(records []PayrollRecord) []PayrollRecordResponse {
	responses := make([]PayrollRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, ToResponse(rec))
	}
	return responses
}
