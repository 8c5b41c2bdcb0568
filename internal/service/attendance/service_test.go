package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttendanceFixture(t *testing.T, clock time.Time) (*AttendanceServiceImpl, employee.Employee) {
	t.Helper()

	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)

	emp, err := employeeRepo.Create(context.Background(), employee.Employee{
		Email:         "staff@dayflow.io",
		FullName:      "Staff",
		Role:          employee.RoleStaff,
		AccountStatus: employee.AccountStatusApproved,
		HireDate:      time.Now(),
		Active:        true,
	})
	require.NoError(t, err)

	service := &AttendanceServiceImpl{
		AttendanceRepository: memory.NewAttendanceRepository(store),
		EmployeeRepository:   employeeRepo,
		workdayStart:         "09:00",
		now:                  func() time.Time { return clock },
	}
	return service, emp
}

func TestClockIn_OnTime(t *testing.T) {
	clock := time.Date(2024, 3, 4, 8, 45, 0, 0, time.UTC)
	service, emp := newAttendanceFixture(t, clock)

	resp, err := service.ClockIn(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, resp.Status)
	assert.Equal(t, "2024-03-04", resp.Date)
	require.NotNil(t, resp.ClockIn)
	assert.Equal(t, "08:45", *resp.ClockIn)
	assert.Nil(t, resp.ClockOut)
}

func TestClockIn_Late(t *testing.T) {
	clock := time.Date(2024, 3, 4, 9, 20, 0, 0, time.UTC)
	service, emp := newAttendanceFixture(t, clock)

	resp, err := service.ClockIn(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
}

func TestClockIn_TwicePerDay(t *testing.T) {
	clock := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	service, emp := newAttendanceFixture(t, clock)
	ctx := context.Background()

	_, err := service.ClockIn(ctx, emp.ID)
	require.NoError(t, err)

	_, err = service.ClockIn(ctx, emp.ID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOut_ComputesWorkMinutes(t *testing.T) {
	clock := time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC)
	service, emp := newAttendanceFixture(t, clock)
	ctx := context.Background()

	_, err := service.ClockIn(ctx, emp.ID)
	require.NoError(t, err)

	service.now = func() time.Time {
		return time.Date(2024, 3, 4, 17, 15, 0, 0, time.UTC)
	}

	resp, err := service.ClockOut(ctx, emp.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.WorkMinutes)
	assert.Equal(t, 8*60+45, *resp.WorkMinutes)
	require.NotNil(t, resp.ClockOut)
	assert.Equal(t, "17:15", *resp.ClockOut)

	_, err = service.ClockOut(ctx, emp.ID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	clock := time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC)
	service, emp := newAttendanceFixture(t, clock)

	_, err := service.ClockOut(context.Background(), emp.ID)
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestListByDate(t *testing.T) {
	clock := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	service, emp := newAttendanceFixture(t, clock)
	ctx := context.Background()

	_, err := service.ClockIn(ctx, emp.ID)
	require.NoError(t, err)

	records, err := service.ListByDate(ctx, "2024-03-04")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, emp.ID, records[0].EmployeeID)

	empty, err := service.ListByDate(ctx, "2024-03-05")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = service.ListByDate(ctx, "04-03-2024")
	assert.Error(t, err)
}
