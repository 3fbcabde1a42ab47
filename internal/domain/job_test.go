package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2025-07-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2025-07-01", FormatDate(d))
}

func TestParseDate_RejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "07/01/2025", "2025-13-01", "2025-07-01T10:00:00Z"} {
		_, err := ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDay_TruncatesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	stamp := time.Date(2025, 7, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), Day(stamp))
}

func TestJobValidate(t *testing.T) {
	tests := []struct {
		name    string
		job     Job
		wantErr bool
	}{
		{"valid", Job{Title: "Banners", TotalHours: 40, PerDayHours: 8}, false},
		{"missing title", Job{TotalHours: 40, PerDayHours: 8}, true},
		{"zero total", Job{Title: "x", TotalHours: 0, PerDayHours: 8}, true},
		{"negative per-day", Job{Title: "x", TotalHours: 10, PerDayHours: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.job.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobMilestone(t *testing.T) {
	ship := time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)
	j := Job{ShippingDate: &ship}
	require.NotNil(t, j.Milestone(MilestoneShipping))
	assert.Equal(t, ship, *j.Milestone(MilestoneShipping))
	assert.Nil(t, j.Milestone(MilestoneInHand))
	assert.Nil(t, j.Milestone(MilestoneKind("bogus")))
}

func TestCloneSchedule_Independent(t *testing.T) {
	j := Job{Schedule: []ScheduleEntry{
		{Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), Hours: 8},
	}}
	clone := j.CloneSchedule()
	clone[0].Hours = 99
	assert.Equal(t, 8.0, j.Schedule[0].Hours)
}
