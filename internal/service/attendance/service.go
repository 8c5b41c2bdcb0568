package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository

	// workdayStart is the "HH:MM" cutoff for the on_time status.
	workdayStart string
	now          func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository, workdayStart string) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		workdayStart:         workdayStart,
		now:                  time.Now,
	}
}

func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.Active {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	now := s.now().UTC()
	today := midnight(now)

	if _, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today); err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	} else if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		ClockIn:    &now,
		Status:     s.clockInStatus(now),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.ToResponse(created), nil
}

func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.now().UTC()
	today := midnight(now)

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if record.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if record.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	workMinutes := int(now.Sub(*record.ClockIn).Minutes())
	if workMinutes < 0 {
		workMinutes = 0
	}

	if err := s.AttendanceRepository.SetClockOut(ctx, record.ID, now, workMinutes); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record clock-out: %w", err)
	}

	record.ClockOut = &now
	record.WorkMinutes = &workMinutes
	return attendance.ToResponse(record), nil
}

func (s *AttendanceServiceImpl) ListMine(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return attendance.ToResponses(records), nil
}

func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, midnight(day.UTC()))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	return attendance.ToResponses(records), nil
}

func (s *AttendanceServiceImpl) clockInStatus(clockIn time.Time) attendance.Status {
	cutoff, err := time.Parse("15:04", s.workdayStart)
	if err != nil {
		return attendance.StatusOnTime
	}

	day := midnight(clockIn)
	start := day.Add(time.Duration(cutoff.Hour())*time.Hour + time.Duration(cutoff.Minute())*time.Minute)
	if clockIn.After(start) {
		return attendance.StatusLate
	}
	return attendance.StatusOnTime
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
