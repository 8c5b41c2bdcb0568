package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payrollFixture struct {
	service payroll.PayrollService
	admin   employee.Employee
	staff   employee.Employee
}

func newPayrollFixture(t *testing.T) *payrollFixture {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)

	admin, err := employeeRepo.Create(ctx, employee.Employee{
		Email:         "admin@dayflow.io",
		FullName:      "Admin",
		Role:          employee.RoleAdmin,
		AccountStatus: employee.AccountStatusApproved,
		HireDate:      time.Now(),
		Active:        true,
	})
	require.NoError(t, err)

	staff, err := employeeRepo.Create(ctx, employee.Employee{
		Email:         "staff@dayflow.io",
		FullName:      "Staff",
		Role:          employee.RoleStaff,
		AccountStatus: employee.AccountStatusApproved,
		HireDate:      time.Now(),
		Active:        true,
	})
	require.NoError(t, err)

	return &payrollFixture{
		service: NewPayrollService(memory.NewPayrollRepository(store), employeeRepo),
		admin:   admin,
		staff:   staff,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestUpsert_ComputesNetSalary(t *testing.T) {
	f := newPayrollFixture(t)

	rec, err := f.service.Upsert(context.Background(), payroll.UpsertPayrollRequest{
		EmployeeID:  f.staff.ID,
		PeriodMonth: 3,
		PeriodYear:  2024,
		BaseSalary:  dec("5000.00"),
		Allowances:  dec("350.50"),
		Deductions:  dec("120.25"),
	})
	require.NoError(t, err)

	assert.Equal(t, payroll.PayrollStatusDraft, rec.Status)
	assert.True(t, rec.NetSalary.Equal(dec("5230.25")), "net salary was %s", rec.NetSalary)
}

func TestUpsert_ReplacesDraftForSamePeriod(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()

	first, err := f.service.Upsert(ctx, payroll.UpsertPayrollRequest{
		EmployeeID:  f.staff.ID,
		PeriodMonth: 3,
		PeriodYear:  2024,
		BaseSalary:  dec("5000"),
	})
	require.NoError(t, err)

	second, err := f.service.Upsert(ctx, payroll.UpsertPayrollRequest{
		EmployeeID:  f.staff.ID,
		PeriodMonth: 3,
		PeriodYear:  2024,
		BaseSalary:  dec("5200"),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	records, err := f.service.ListPeriod(ctx, 3, 2024)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].BaseSalary.Equal(dec("5200")))
}

func TestUpsert_UnknownEmployee(t *testing.T) {
	f := newPayrollFixture(t)

	_, err := f.service.Upsert(context.Background(), payroll.UpsertPayrollRequest{
		EmployeeID:  "ghost",
		PeriodMonth: 3,
		PeriodYear:  2024,
		BaseSalary:  dec("5000"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMarkPaid_PaidRecordsAreImmutable(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()

	rec, err := f.service.Upsert(ctx, payroll.UpsertPayrollRequest{
		EmployeeID:  f.staff.ID,
		PeriodMonth: 4,
		PeriodYear:  2024,
		BaseSalary:  dec("5000"),
	})
	require.NoError(t, err)

	require.NoError(t, f.service.MarkPaid(ctx, rec.ID, f.admin.ID))

	// Second payment attempt fails.
	err = f.service.MarkPaid(ctx, rec.ID, f.admin.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyPaid)

	// Upserting over a paid record fails.
	_, err = f.service.Upsert(ctx, payroll.UpsertPayrollRequest{
		EmployeeID:  f.staff.ID,
		PeriodMonth: 4,
		PeriodYear:  2024,
		BaseSalary:  dec("9999"),
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyPaid)
}

func TestMarkPaid_NotFound(t *testing.T) {
	f := newPayrollFixture(t)

	err := f.service.MarkPaid(context.Background(), "missing", f.admin.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestListPeriod_InvalidPeriod(t *testing.T) {
	f := newPayrollFixture(t)

	_, err := f.service.ListPeriod(context.Background(), 13, 2024)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestGetMine_OnlyOwnRecords(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()

	_, err := f.service.Upsert(ctx, payroll.UpsertPayrollRequest{
		EmployeeID:  f.staff.ID,
		PeriodMonth: 5,
		PeriodYear:  2024,
		BaseSalary:  dec("5000"),
	})
	require.NoError(t, err)

	_, err = f.service.Upsert(ctx, payroll.UpsertPayrollRequest{
		EmployeeID:  f.admin.ID,
		PeriodMonth: 5,
		PeriodYear:  2024,
		BaseSalary:  dec("8000"),
	})
	require.NoError(t, err)

	mine, err := f.service.GetMine(ctx, f.staff.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, f.staff.ID, mine[0].EmployeeID)
}
