package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.EmployeeRepository
}

func NewPayrollService(payrollRepository payroll.PayrollRepository, employeeRepository employee.EmployeeRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:  payrollRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Upsert creates or replaces the draft record for the employee's period.
// The net salary is always recomputed server-side.
func (s *PayrollServiceImpl) Upsert(ctx context.Context, req payroll.UpsertPayrollRequest) (payroll.PayrollRecordResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	rec, err := s.PayrollRepository.Upsert(ctx, payroll.PayrollRecord{
		EmployeeID:  emp.ID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		BaseSalary:  req.BaseSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		NetSalary:   payroll.Net(req.BaseSalary, req.Allowances, req.Deductions),
		Status:      payroll.PayrollStatusDraft,
		Notes:       req.Notes,
	})
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return payroll.ToResponse(rec), nil
}

func (s *PayrollServiceImpl) ListPeriod(ctx context.Context, month, year int) ([]payroll.PayrollRecordResponse, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return nil, payroll.ErrInvalidPeriod
	}

	records, err := s.PayrollRepository.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll period: %w", err)
	}
	return payroll.ToResponses(records), nil
}

func (s *PayrollServiceImpl) GetMine(ctx context.Context, employeeID string) ([]payroll.PayrollRecordResponse, error) {
	records, err := s.PayrollRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	return payroll.ToResponses(records), nil
}

func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string, paidBy string) error {
	return s.PayrollRepository.MarkPaid(ctx, id, paidBy, time.Now().UTC())
}
