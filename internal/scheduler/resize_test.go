package scheduler

import (
	"testing"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeDayJob(t *testing.T) domain.Job {
	t.Helper()
	entries, err := BuildSchedule(date(2025, 7, 1), 24, 8)
	require.NoError(t, err) // 07-01, 07-02, 07-03
	ship := date(2025, 7, 9)
	return domain.Job{
		ID:           "job-1",
		Title:        "Banners",
		TotalHours:   24,
		PerDayHours:  8,
		Schedule:     entries,
		ShippingDate: &ship,
	}
}

func TestExtendSchedule_FillsBusinessDaysThroughEnd(t *testing.T) {
	job := threeDayJob(t)

	extended, err := ExtendSchedule(job, 2, date(2025, 7, 8))
	require.NoError(t, err)
	require.Len(t, extended.Schedule, 6)

	assert.Equal(t, date(2025, 7, 4), extended.Schedule[3].Date)
	assert.Equal(t, date(2025, 7, 7), extended.Schedule[4].Date)
	assert.Equal(t, date(2025, 7, 8), extended.Schedule[5].Date)
	for _, e := range extended.Schedule[3:] {
		assert.Equal(t, 8.0, e.Hours, "new days get the default per-day hours")
	}
}

func TestExtendSchedule_Idempotent(t *testing.T) {
	job := threeDayJob(t)

	once, err := ExtendSchedule(job, 2, date(2025, 7, 8))
	require.NoError(t, err)
	twice, err := ExtendSchedule(once, len(once.Schedule)-1, date(2025, 7, 8))
	require.NoError(t, err)

	assert.Equal(t, scheduleDates(once), scheduleDates(twice))
}

func TestExtendSchedule_OntoShippingDateRejected(t *testing.T) {
	job := threeDayJob(t)
	before := scheduleDates(job)

	extended, err := ExtendSchedule(job, 2, date(2025, 7, 9))
	r, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, CodeMilestoneConflict, r.Code)
	assert.Equal(t, before, scheduleDates(extended), "extension discarded entirely")
}

func TestExtendSchedule_NonLastEntryRejected(t *testing.T) {
	job := threeDayJob(t)
	before := scheduleDates(job)

	for _, idx := range []int{0, 1} {
		extended, err := ExtendSchedule(job, idx, date(2025, 7, 8))
		r, ok := AsRejection(err)
		require.True(t, ok, "index %d", idx)
		assert.Equal(t, CodeResizeNotAllowed, r.Code)
		assert.Equal(t, before, scheduleDates(extended))
	}
}

func TestExtendSchedule_EmptyScheduleRejected(t *testing.T) {
	job := domain.Job{ID: "j", Title: "t", TotalHours: 8, PerDayHours: 8}
	_, err := ExtendSchedule(job, 0, date(2025, 7, 8))
	r, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, CodeResizeNotAllowed, r.Code)
}

func TestExtendSchedule_EndBeforeLastDayAddsNothing(t *testing.T) {
	job := threeDayJob(t)
	extended, err := ExtendSchedule(job, 2, date(2025, 7, 2))
	require.NoError(t, err)
	assert.Equal(t, scheduleDates(job), scheduleDates(extended))
}

func TestTruncateLast(t *testing.T) {
	job := threeDayJob(t)
	truncated := TruncateLast(job)
	assert.Len(t, truncated.Schedule, 2)
	assert.Len(t, job.Schedule, 3, "input untouched")

	empty := TruncateLast(domain.Job{})
	assert.Empty(t, empty.Schedule)
}
