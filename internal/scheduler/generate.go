package scheduler

import (
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

// BuildSchedule produces the initial ordered schedule for a job: starting
// at the first business day on or after start, each working day receives
// min(perDayHours, remaining) until the total is exhausted. The last entry
// may carry less than perDayHours; no entry ever lands on a weekend.
func BuildSchedule(start time.Time, totalHours, perDayHours float64) ([]domain.ScheduleEntry, error) {
	if start.IsZero() {
		return nil, reject(CodeInvalidParameters, "start date is required")
	}
	if totalHours <= 0 {
		return nil, reject(CodeInvalidParameters, "total hours must be positive, got %v", totalHours)
	}
	if perDayHours <= 0 {
		return nil, reject(CodeInvalidParameters, "per-day hours must be positive, got %v", perDayHours)
	}

	var entries []domain.ScheduleEntry
	day := NextBusinessDayFrom(start)
	remaining := totalHours
	for remaining > 0 {
		hours := perDayHours
		if remaining < hours {
			hours = remaining
		}
		entries = append(entries, domain.ScheduleEntry{Date: day, Hours: hours})
		remaining -= hours
		day = NextBusinessDay(day)
	}
	return entries, nil
}
