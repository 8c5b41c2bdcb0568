package postgresql

import (
	"context"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func (r *payrollRepositoryImpl) Upsert(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	// Paid records are immutable; the WHERE clause on the conflict update
	// keeps them untouched so we can detect the attempt afterwards.
	query := `
		INSERT INTO payroll_records (
			id, employee_id, period_month, period_year,
			base_salary, allowances, deductions, net_salary,
			status, notes, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6, $7,
			'draft', $8, NOW(), NOW()
		)
		ON CONFLICT (employee_id, period_month, period_year) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			allowances = EXCLUDED.allowances,
			deductions = EXCLUDED.deductions,
			net_salary = EXCLUDED.net_salary,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		WHERE payroll_records.status = 'draft'
		RETURNING id, status, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.PeriodMonth, rec.PeriodYear,
		rec.BaseSalary, rec.Allowances, rec.Deductions, rec.NetSalary,
		rec.Notes,
	).Scan(&rec.ID, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			// Conflict row exists but was filtered out: already paid.
			return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyPaid
		}
		return payroll.PayrollRecord{}, err
	}

	return rec, nil
}

const payrollColumns = `
	p.id, p.employee_id, p.period_month, p.period_year,
	p.base_salary, p.allowances, p.deductions, p.net_salary,
	p.status, p.paid_at, p.paid_by, p.notes, p.created_at, p.updated_at,
	e.full_name AS employee_name
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear,
		&rec.BaseSalary, &rec.Allowances, &rec.Deductions, &rec.NetSalary,
		&rec.Status, &rec.PaidAt, &rec.PaidBy, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	return rec, err
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.id = $1
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}

func (r *payrollRepositoryImpl) ListByPeriod(ctx context.Context, month, year int) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.period_month = $1 AND p.period_year = $2
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *payrollRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.employee_id = $1
		ORDER BY p.period_year DESC, p.period_month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *payrollRepositoryImpl) MarkPaid(ctx context.Context, id string, paidBy string, paidAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	// Guarded on draft so paying fires at most once.
	query := `
		UPDATE payroll_records
		SET status = 'paid', paid_by = $2, paid_at = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'draft'
	`

	commandTag, err := q.Exec(ctx, query, id, paidBy, paidAt)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payroll_records WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return payroll.ErrPayrollRecordNotFound
	}
	return payroll.ErrPayrollAlreadyPaid
}
