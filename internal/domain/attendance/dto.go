package attendance

import (
	"time"
)

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	ClockIn      *string `json:"clock_in,omitempty"`  // "HH:MM"
	ClockOut     *string `json:"clock_out,omitempty"` // "HH:MM"
	WorkMinutes  *int    `json:"work_minutes,omitempty"`
	Status       Status  `json:"status"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		WorkMinutes:  a.WorkMinutes,
		Status:       a.Status,
	}
	resp.ClockIn = formatClock(a.ClockIn)
	resp.ClockOut = formatClock(a.ClockOut)
	return resp
}

func ToResponses(records []Attendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, ToResponse(a))
	}
	return responses
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
