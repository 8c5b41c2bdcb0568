package memory

import (
	"context"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{store: store}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	att.ID = newID()
	att.CreatedAt = now
	att.UpdatedAt = now

	stored := att
	r.store.attendances = append(r.store.attendances, &stored)
	return att, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, att := range r.store.attendances {
		if att.EmployeeID == employeeID && sameDate(att.Date, date) {
			return *att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *attendanceRepositoryImpl) SetClockOut(ctx context.Context, id string, clockOut time.Time, workMinutes int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, att := range r.store.attendances {
		if att.ID != id {
			continue
		}
		att.ClockOut = &clockOut
		att.WorkMinutes = &workMinutes
		att.UpdatedAt = time.Now()
		return nil
	}
	return attendance.ErrAttendanceNotFound
}

func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []attendance.Attendance
	for i := len(r.store.attendances) - 1; i >= 0; i-- {
		if r.store.attendances[i].EmployeeID == employeeID {
			result = append(result, *r.store.attendances[i])
		}
	}
	return result, nil
}

func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []attendance.Attendance
	for _, att := range r.store.attendances {
		if sameDate(att.Date, date) {
			rec := *att
			rec.EmployeeName = r.employeeName(att.EmployeeID)
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *attendanceRepositoryImpl) employeeName(employeeID string) *string {
	for _, emp := range r.store.employees {
		if emp.ID == employeeID {
			name := emp.FullName
			return &name
		}
	}
	return nil
}
