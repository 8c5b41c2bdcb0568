package leave

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	service      leave.LeaveService
	employeeRepo employee.EmployeeRepository
	admin        employee.Employee
	staff        employee.Employee
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	leaveRepo := memory.NewLeaveRequestRepository(store)

	admin, err := employeeRepo.Create(ctx, employee.Employee{
		Email:         "admin@dayflow.io",
		FullName:      "Admin",
		Role:          employee.RoleAdmin,
		AccountStatus: employee.AccountStatusApproved,
		HireDate:      time.Now(),
		LeaveBalance:  18,
		Active:        true,
	})
	require.NoError(t, err)

	staff, err := employeeRepo.Create(ctx, employee.Employee{
		Email:         "staff@dayflow.io",
		FullName:      "Staff",
		Role:          employee.RoleStaff,
		AccountStatus: employee.AccountStatusApproved,
		HireDate:      time.Now(),
		LeaveBalance:  12,
		Active:        true,
	})
	require.NoError(t, err)

	return &ledgerFixture{
		service:      NewLeaveService(leaveRepo, employeeRepo, memory.NewTransactor()),
		employeeRepo: employeeRepo,
		admin:        admin,
		staff:        staff,
	}
}

func (f *ledgerFixture) submit(t *testing.T, employeeID, leaveType, start, end string) leave.LeaveRequestResponse {
	t.Helper()
	created, err := f.service.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: employeeID,
		Type:       leaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     "family matters",
	})
	require.NoError(t, err)
	return created
}

func TestSubmit_ComputesInclusiveDays(t *testing.T) {
	f := newLedgerFixture(t)

	single := f.submit(t, f.staff.ID, "sick", "2024-03-01", "2024-03-01")
	assert.Equal(t, 1, single.Days)

	week := f.submit(t, f.staff.ID, "annual", "2024-03-01", "2024-03-05")
	assert.Equal(t, 5, week.Days)
}

func TestSubmit_FreshRequestIsPending(t *testing.T) {
	f := newLedgerFixture(t)

	created := f.submit(t, f.staff.ID, "casual", "2024-06-10", "2024-06-11")
	assert.Equal(t, leave.LeaveRequestStatusPending, created.Status)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.AppliedDate)
}

func TestSubmit_InvalidDateRange(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: f.staff.ID,
		Type:       "annual",
		StartDate:  "2024-03-05",
		EndDate:    "2024-03-01",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)

	// Nothing was appended.
	mine, err := f.service.ListForEmployee(ctx, f.staff.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestSubmit_UnknownEmployee(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "no-such-employee",
		Type:       "annual",
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-02",
	})
	assert.ErrorIs(t, err, leave.ErrUnknownEmployee)

	pending, err := f.service.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSubmit_InactiveEmployee(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	require.NoError(t, f.employeeRepo.SetActive(ctx, f.staff.ID, false))

	_, err := f.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: f.staff.ID,
		Type:       "annual",
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-02",
	})
	assert.ErrorIs(t, err, leave.ErrUnknownEmployee)
}

func TestSubmit_InvalidLeaveType(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.service.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: f.staff.ID,
		Type:       "sabbatical",
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-02",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidLeaveType)
}

func TestApprove_ThenReject_SecondCallFails(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	created := f.submit(t, f.staff.ID, "casual", "2024-04-01", "2024-04-03")

	approved, err := f.service.Approve(ctx, created.ID, f.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, approved.Status)
	assert.Equal(t, &f.admin.ID, approved.ApprovedBy)

	_, err = f.service.Reject(ctx, created.ID, f.admin.ID, "late call")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotPending)

	// First transition stuck.
	mine, err := f.service.ListForEmployee(ctx, f.staff.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, leave.LeaveRequestStatusApproved, mine[0].Status)
}

func TestReject_ThenApprove_SecondCallFails(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	created := f.submit(t, f.staff.ID, "sick", "2024-04-01", "2024-04-01")

	rejected, err := f.service.Reject(ctx, created.ID, f.admin.ID, "no coverage that week")
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "no coverage that week", *rejected.RejectionReason)

	_, err = f.service.Approve(ctx, created.ID, f.admin.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotPending)
}

func TestApprove_RequestNotFound(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.service.Approve(context.Background(), "missing-id", f.admin.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestApprove_NonAdminActor(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	created := f.submit(t, f.staff.ID, "annual", "2024-05-01", "2024-05-02")

	_, err := f.service.Approve(ctx, created.ID, f.staff.ID)
	assert.ErrorIs(t, err, leave.ErrNotAuthorized)

	_, err = f.service.Reject(ctx, created.ID, "ghost-admin", "")
	assert.ErrorIs(t, err, leave.ErrNotAuthorized)

	// Still pending, still transitionable.
	pending, err := f.service.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, created.ID, pending[0].ID)
}

func TestApprove_AnnualDeductsLeaveBalance(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	created := f.submit(t, f.staff.ID, "annual", "2024-07-01", "2024-07-05")

	_, err := f.service.Approve(ctx, created.ID, f.admin.ID)
	require.NoError(t, err)

	emp, err := f.employeeRepo.GetByID(ctx, f.staff.ID)
	require.NoError(t, err)
	assert.Equal(t, 12-5, emp.LeaveBalance)
}

func TestApprove_SickLeavesBalanceUntouched(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	created := f.submit(t, f.staff.ID, "sick", "2024-07-01", "2024-07-03")

	_, err := f.service.Approve(ctx, created.ID, f.admin.ID)
	require.NoError(t, err)

	emp, err := f.employeeRepo.GetByID(ctx, f.staff.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, emp.LeaveBalance)
}

func TestListPending_ExcludesProcessedAndKeepsInsertionOrder(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	first := f.submit(t, f.staff.ID, "annual", "2024-08-01", "2024-08-02")
	second := f.submit(t, f.staff.ID, "casual", "2024-08-10", "2024-08-10")
	third := f.submit(t, f.staff.ID, "sick", "2024-08-20", "2024-08-21")

	_, err := f.service.Reject(ctx, second.ID, f.admin.ID, "")
	require.NoError(t, err)

	pending, err := f.service.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, third.ID, pending[1].ID)
	for _, lr := range pending {
		assert.Equal(t, leave.LeaveRequestStatusPending, lr.Status)
	}
}

func TestListForEmployee_ExactSubsetMostRecentFirst(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	mine1 := f.submit(t, f.staff.ID, "annual", "2024-09-01", "2024-09-02")
	f.submit(t, f.admin.ID, "casual", "2024-09-05", "2024-09-05")
	mine2 := f.submit(t, f.staff.ID, "sick", "2024-09-10", "2024-09-10")

	mine, err := f.service.ListForEmployee(ctx, f.staff.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, mine2.ID, mine[0].ID)
	assert.Equal(t, mine1.ID, mine[1].ID)

	// Idempotent read: same result with no intervening writes.
	again, err := f.service.ListForEmployee(ctx, f.staff.ID)
	require.NoError(t, err)
	assert.Equal(t, mine, again)
}

func TestConcurrentApproveReject_ExactlyOneWins(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	created := f.submit(t, f.staff.ID, "casual", "2024-10-01", "2024-10-02")

	var wg sync.WaitGroup
	var approveErr, rejectErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, approveErr = f.service.Approve(ctx, created.ID, f.admin.ID)
	}()
	go func() {
		defer wg.Done()
		_, rejectErr = f.service.Reject(ctx, created.ID, f.admin.ID, "conflict")
	}()
	wg.Wait()

	if approveErr == nil {
		assert.ErrorIs(t, rejectErr, leave.ErrLeaveRequestNotPending)
	} else {
		assert.ErrorIs(t, approveErr, leave.ErrLeaveRequestNotPending)
		assert.NoError(t, rejectErr)
	}

	// Whichever won, the request left pending exactly once.
	pending, err := f.service.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
