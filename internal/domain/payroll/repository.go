package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access for payroll records.
type PayrollRepository interface {
	// Upsert inserts or replaces the record for (employee, month, year).
	// Paid records are immutable: upserting over one returns ErrPayrollAlreadyPaid.
	Upsert(ctx context.Context, rec PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	ListByPeriod(ctx context.Context, month, year int) ([]PayrollRecord, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error)
	// MarkPaid transitions a draft record to paid. Guarded on the current
	// status, so a second call returns ErrPayrollAlreadyPaid.
	MarkPaid(ctx context.Context, id string, paidBy string, paidAt time.Time) error
}
