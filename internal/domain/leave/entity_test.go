package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInclusiveDays(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2024-03-01", "2024-03-01", 1},
		{"five days", "2024-03-01", "2024-03-05", 5},
		{"across month boundary", "2024-03-30", "2024-04-02", 4},
		{"across leap day", "2024-02-28", "2024-03-01", 3},
		{"across year boundary", "2023-12-30", "2024-01-02", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start, err := time.Parse("2006-01-02", c.start)
			assert.NoError(t, err)
			end, err := time.Parse("2006-01-02", c.end)
			assert.NoError(t, err)
			assert.Equal(t, c.want, InclusiveDays(start, end))
		})
	}
}

func TestInclusiveDays_IgnoresTimeOfDayAndZone(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)

	// 23:30 on the 1st to 01:15 on the 2nd is still two calendar days.
	start := time.Date(2024, 3, 1, 23, 30, 0, 0, jakarta)
	end := time.Date(2024, 3, 2, 1, 15, 0, 0, jakarta)
	assert.Equal(t, 2, InclusiveDays(start, end))

	// Same calendar day in different zones.
	startUTC := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	endWIB := time.Date(2024, 3, 1, 18, 0, 0, 0, jakarta)
	assert.Equal(t, 1, InclusiveDays(startUTC, endWIB))
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, LeaveRequestStatusPending.CanTransitionTo(LeaveRequestStatusApproved))
	assert.True(t, LeaveRequestStatusPending.CanTransitionTo(LeaveRequestStatusRejected))

	// Terminal states admit no edges, including back to pending.
	assert.False(t, LeaveRequestStatusApproved.CanTransitionTo(LeaveRequestStatusRejected))
	assert.False(t, LeaveRequestStatusApproved.CanTransitionTo(LeaveRequestStatusPending))
	assert.False(t, LeaveRequestStatusRejected.CanTransitionTo(LeaveRequestStatusApproved))
	assert.False(t, LeaveRequestStatusRejected.CanTransitionTo(LeaveRequestStatusPending))
	assert.False(t, LeaveRequestStatusPending.CanTransitionTo(LeaveRequestStatusPending))
}

func TestIsValidLeaveType(t *testing.T) {
	for _, valid := range []string{"annual", "sick", "casual", "emergency"} {
		assert.True(t, IsValidLeaveType(valid), valid)
	}
	for _, invalid := range []string{"", "maternity", "ANNUAL", "vacation"} {
		assert.False(t, IsValidLeaveType(invalid), invalid)
	}
}
