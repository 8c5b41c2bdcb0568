package payroll

import (
	"context"
)

type PayrollService interface {
	Upsert(ctx context.Context, req UpsertPayrollRequest) (PayrollRecordResponse, error)
	ListPeriod(ctx context.Context, month, year int) ([]PayrollRecordResponse, error)
	GetMine(ctx context.Context, employeeID string) ([]PayrollRecordResponse, error)
	MarkPaid(ctx context.Context, id string, paidBy string) error
}
