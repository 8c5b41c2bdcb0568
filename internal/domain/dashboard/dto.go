package dashboard

import (
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
)

// ========== ADMIN DASHBOARD ==========

// AdminDashboardResponse is the combined response for the admin dashboard
type AdminDashboardResponse struct {
	EmployeeSummary   EmployeeSummaryResponse `json:"employee_summary"`
	PendingLeaveCount int64                   `json:"pending_leave_count"`
	AttendanceToday   AttendanceStatsResponse `json:"attendance_today"`
}

// EmployeeSummaryResponse contains directory head counts
type EmployeeSummaryResponse struct {
	TotalEmployees  int64 `json:"total_employees"`
	ActiveEmployees int64 `json:"active_employees"`
	PendingAccounts int64 `json:"pending_accounts"`
}

// AttendanceStatsResponse represents attendance statistics for one day
type AttendanceStatsResponse struct {
	OnTime        int64   `json:"on_time"`
	Late          int64   `json:"late"`
	Absent        int64   `json:"absent"`
	Total         int64   `json:"total"`
	OnTimePercent float64 `json:"on_time_percent"`
	LatePercent   float64 `json:"late_percent"`
	Date          string  `json:"date"` // Format: "YYYY-MM-DD"
}

// ========== EMPLOYEE DASHBOARD ==========

// EmployeeDashboardResponse is the combined response for the employee dashboard
type EmployeeDashboardResponse struct {
	LeaveBalance     int                         `json:"leave_balance"`
	PendingRequests  int64                       `json:"pending_requests"`
	ApprovedRequests int64                       `json:"approved_requests"`
	WorkStats        WorkStatsResponse           `json:"work_stats"`
	RecentRequests   []leave.LeaveRequestResponse `json:"recent_requests"`
}

// WorkStatsResponse contains this month's attendance counts for the employee
type WorkStatsResponse struct {
	WorkMinutes int64  `json:"work_minutes"`
	OnTimeCount int64  `json:"on_time_count"`
	LateCount   int64  `json:"late_count"`
	Month       string `json:"month"` // Format: "YYYY-MM"
}
