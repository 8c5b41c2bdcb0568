package memory

import (
	"context"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
)

type payrollRepositoryImpl struct {
	store *Store
}

func NewPayrollRepository(store *Store) payroll.PayrollRepository {
	return &payrollRepositoryImpl{store: store}
}

func (r *payrollRepositoryImpl) Upsert(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	for _, existing := range r.store.payrolls {
		if existing.EmployeeID == rec.EmployeeID &&
			existing.PeriodMonth == rec.PeriodMonth &&
			existing.PeriodYear == rec.PeriodYear {
			if existing.Status == payroll.PayrollStatusPaid {
				return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyPaid
			}
			existing.BaseSalary = rec.BaseSalary
			existing.Allowances = rec.Allowances
			existing.Deductions = rec.Deductions
			existing.NetSalary = rec.NetSalary
			existing.Notes = rec.Notes
			existing.UpdatedAt = now
			return *existing, nil
		}
	}

	rec.ID = newID()
	rec.Status = payroll.PayrollStatusDraft
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.EmployeeName = r.employeeName(rec.EmployeeID)

	stored := rec
	r.store.payrolls = append(r.store.payrolls, &stored)
	return rec, nil
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rec := range r.store.payrolls {
		if rec.ID == id {
			return *rec, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (r *payrollRepositoryImpl) ListByPeriod(ctx context.Context, month, year int) ([]payroll.PayrollRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []payroll.PayrollRecord
	for _, rec := range r.store.payrolls {
		if rec.PeriodMonth == month && rec.PeriodYear == year {
			out := *rec
			out.EmployeeName = r.employeeName(rec.EmployeeID)
			result = append(result, out)
		}
	}
	return result, nil
}

func (r *payrollRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []payroll.PayrollRecord
	for i := len(r.store.payrolls) - 1; i >= 0; i-- {
		if r.store.payrolls[i].EmployeeID == employeeID {
			result = append(result, *r.store.payrolls[i])
		}
	}
	return result, nil
}

func (r *payrollRepositoryImpl) MarkPaid(ctx context.Context, id string, paidBy string, paidAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rec := range r.store.payrolls {
		if rec.ID != id {
			continue
		}
		if rec.Status != payroll.PayrollStatusDraft {
			return payroll.ErrPayrollAlreadyPaid
		}
		rec.Status = payroll.PayrollStatusPaid
		rec.PaidAt = &paidAt
		rec.PaidBy = &paidBy
		rec.UpdatedAt = time.Now()
		return nil
	}
	return payroll.ErrPayrollRecordNotFound
}

func (r *payrollRepositoryImpl) employeeName(employeeID string) *string {
	for _, emp := range r.store.employees {
		if emp.ID == employeeID {
			name := emp.FullName
			return &name
		}
	}
	return nil
}
