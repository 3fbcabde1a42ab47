package testutil

import (
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/dancinggoatstudios/shopcal/internal/scheduler"
	"github.com/google/uuid"
)

// Job options
type JobOption func(*domain.Job)

func WithShippingDate(d time.Time) JobOption {
	return func(j *domain.Job) {
		day := domain.Day(d)
		j.ShippingDate = &day
	}
}

func WithInHandDate(d time.Time) JobOption {
	return func(j *domain.Job) {
		day := domain.Day(d)
		j.InHandDate = &day
	}
}

func WithCalendarGroup(group string) JobOption {
	return func(j *domain.Job) {
		j.CalendarGroup = group
	}
}

func WithColorKey(key string) JobOption {
	return func(j *domain.Job) {
		j.ColorKey = key
	}
}

func WithHours(total, perDay float64) JobOption {
	return func(j *domain.Job) {
		j.TotalHours = total
		j.PerDayHours = perDay
	}
}

// NewTestJob builds a job with a generated schedule starting at start.
// Defaults: 24 total hours at 8 per day, blue, no milestones.
func NewTestJob(title string, start time.Time, opts ...JobOption) *domain.Job {
	now := time.Now().UTC()
	j := &domain.Job{
		ID:          uuid.New().String(),
		Title:       title,
		TotalHours:  24,
		PerDayHours: 8,
		ColorKey:    "blue",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(j)
	}
	entries, err := scheduler.BuildSchedule(start, j.TotalHours, j.PerDayHours)
	if err != nil {
		panic(err)
	}
	j.Schedule = entries
	return j
}
