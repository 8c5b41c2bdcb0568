package attendance

import (
	"context"
	"time"
)

// AttendanceRepository - interface for the attendances table
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	// GetByEmployeeAndDate returns ErrAttendanceNotFound when the employee
	// has no record for that calendar date.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	SetClockOut(ctx context.Context, id string, clockOut time.Time, workMinutes int) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}
