package domain

import (
	"fmt"
	"time"
)

// ScheduleEntry is one working day allocated to a job.
type ScheduleEntry struct {
	Date  time.Time
	Hours float64
}

// Job is the scheduling unit: a block of work-hours spread across
// business days, bounded above by optional milestone dates.
type Job struct {
	ID          string
	Title       string
	TotalHours  float64
	PerDayHours float64

	// Schedule is ordered by calendar date ascending; index position is
	// day N of the job and is never renumbered.
	Schedule []ScheduleEntry

	ShippingDate *time.Time
	InHandDate   *time.Time

	CalendarGroup string
	ColorKey      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks job creation parameters.
func (j *Job) Validate() error {
	if j.Title == "" {
		return fmt.Errorf("job title is required")
	}
	if j.TotalHours <= 0 {
		return fmt.Errorf("total hours must be positive, got %v", j.TotalHours)
	}
	if j.PerDayHours <= 0 {
		return fmt.Errorf("per-day hours must be positive, got %v", j.PerDayHours)
	}
	return nil
}

// LastEntry returns the final schedule entry, if any.
func (j *Job) LastEntry() (ScheduleEntry, bool) {
	if len(j.Schedule) == 0 {
		return ScheduleEntry{}, false
	}
	return j.Schedule[len(j.Schedule)-1], true
}

// Milestone returns the date for the given milestone kind, nil when unset.
func (j *Job) Milestone(kind MilestoneKind) *time.Time {
	switch kind {
	case MilestoneShipping:
		return j.ShippingDate
	case MilestoneInHand:
		return j.InHandDate
	}
	return nil
}

// ScheduledHours sums the hours across all schedule entries.
func (j *Job) ScheduledHours() float64 {
	var total float64
	for _, e := range j.Schedule {
		total += e.Hours
	}
	return total
}

// CloneSchedule returns an independent copy of the schedule slice, so
// engine operations can build a candidate without touching the snapshot.
func (j *Job) CloneSchedule() []ScheduleEntry {
	out := make([]ScheduleEntry, len(j.Schedule))
	copy(out, j.Schedule)
	return out
}

// ProjectedEvent is a derived, view-only calendar entry. It is always
// recomputed from a Job and never persisted or mutated directly.
type ProjectedEvent struct {
	JobID string
	Date  time.Time
	Title string
	Color string
	Kind  EventKind
}
