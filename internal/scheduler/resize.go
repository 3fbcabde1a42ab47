package scheduler

import (
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

// ExtendSchedule splits a resized tail entry into additional business-day
// entries running through newEndDate, each at the job's default per-day
// hours. Only the last entry of a schedule may be resized; the operation is
// an explicit extension of scope and does not rebalance total hours.
// Appending deduplicates by date, so repeating the same resize is a no-op.
//
// On rejection the returned job is the input snapshot, unchanged.
func ExtendSchedule(job domain.Job, index int, newEndDate time.Time) (domain.Job, error) {
	if len(job.Schedule) == 0 {
		return job, reject(CodeResizeNotAllowed, "job has no scheduled days to extend")
	}
	last := len(job.Schedule) - 1
	if index != last {
		return job, reject(CodeResizeNotAllowed,
			"only the last scheduled day can be resized (day %d of %d)", index+1, last+1)
	}

	end := domain.Day(newEndDate)
	existing := make(map[time.Time]bool, len(job.Schedule))
	for _, e := range job.Schedule {
		existing[e.Date] = true
	}

	candidate := job.CloneSchedule()
	for day := NextBusinessDay(job.Schedule[last].Date); !day.After(end); day = NextBusinessDay(day) {
		if existing[day] {
			continue
		}
		candidate = append(candidate, domain.ScheduleEntry{Date: day, Hours: job.PerDayHours})
		existing[day] = true
	}

	if err := ValidateMilestoneBound(&job, candidate); err != nil {
		return job, err
	}

	job.Schedule = candidate
	return job, nil
}

// TruncateLast drops the trailing schedule entry. Removing the last day of
// an empty schedule is a no-op.
func TruncateLast(job domain.Job) domain.Job {
	if len(job.Schedule) == 0 {
		return job
	}
	job.Schedule = job.CloneSchedule()[:len(job.Schedule)-1]
	return job
}
