package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
)

const recentRequestLimit = 5

// DashboardServiceImpl aggregates read models from the other domains. It owns
// no table of its own.
type DashboardServiceImpl struct {
	employee.EmployeeRepository
	leave.LeaveRequestRepository
	attendance.AttendanceRepository

	now func() time.Time
}

func NewDashboardService(employeeRepository employee.EmployeeRepository, leaveRequestRepository leave.LeaveRequestRepository, attendanceRepository attendance.AttendanceRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		EmployeeRepository:     employeeRepository,
		LeaveRequestRepository: leaveRequestRepository,
		AttendanceRepository:   attendanceRepository,
		now:                    time.Now,
	}
}

func (s *DashboardServiceImpl) AdminDashboard(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	var summary dashboard.EmployeeSummaryResponse
	for _, emp := range employees {
		summary.TotalEmployees++
		if emp.Active && emp.AccountStatus == employee.AccountStatusApproved {
			summary.ActiveEmployees++
		}
		if emp.AccountStatus == employee.AccountStatusPending {
			summary.PendingAccounts++
		}
	}

	pending, err := s.LeaveRequestRepository.ListPending(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to list pending leave requests: %w", err)
	}

	today := midnight(s.now().UTC())
	records, err := s.AttendanceRepository.ListByDate(ctx, today)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	stats := dashboard.AttendanceStatsResponse{Date: today.Format("2006-01-02")}
	for _, rec := range records {
		stats.Total++
		switch rec.Status {
		case attendance.StatusOnTime:
			stats.OnTime++
		case attendance.StatusLate:
			stats.Late++
		case attendance.StatusAbsent:
			stats.Absent++
		}
	}
	if stats.Total > 0 {
		stats.OnTimePercent = float64(stats.OnTime) / float64(stats.Total) * 100
		stats.LatePercent = float64(stats.Late) / float64(stats.Total) * 100
	}

	return dashboard.AdminDashboardResponse{
		EmployeeSummary:   summary,
		PendingLeaveCount: int64(len(pending)),
		AttendanceToday:   stats,
	}, nil
}

func (s *DashboardServiceImpl) EmployeeDashboard(ctx context.Context, employeeID string) (dashboard.EmployeeDashboardResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	requests, err := s.LeaveRequestRepository.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	var pendingCount, approvedCount int64
	for _, lr := range requests {
		switch lr.Status {
		case leave.LeaveRequestStatusPending:
			pendingCount++
		case leave.LeaveRequestStatusApproved:
			approvedCount++
		}
	}

	recent := requests
	if len(recent) > recentRequestLimit {
		recent = recent[:recentRequestLimit]
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	now := s.now().UTC()
	stats := dashboard.WorkStatsResponse{Month: now.Format("2006-01")}
	for _, rec := range records {
		if rec.Date.Year() != now.Year() || rec.Date.Month() != now.Month() {
			continue
		}
		if rec.WorkMinutes != nil {
			stats.WorkMinutes += int64(*rec.WorkMinutes)
		}
		switch rec.Status {
		case attendance.StatusOnTime:
			stats.OnTimeCount++
		case attendance.StatusLate:
			stats.LateCount++
		}
	}

	return dashboard.EmployeeDashboardResponse{
		LeaveBalance:     emp.LeaveBalance,
		PendingRequests:  pendingCount,
		ApprovedRequests: approvedCount,
		WorkStats:        stats,
		RecentRequests:   leave.ToResponses(recent),
	}, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
