package scheduler

import (
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

// MoveEntry recomputes a job's schedule after day `index` is dragged to
// rawDate. The target is normalized to the next business day, entries
// before the moved one are untouched, and every entry from the moved one
// onward is rebased by re-walking business days from the new anchor. Hours
// travel with their entries; only dates shift.
//
// On rejection the returned job is the input snapshot, unchanged.
func MoveEntry(job domain.Job, index int, rawDate time.Time) (domain.Job, error) {
	if index < 0 || index >= len(job.Schedule) {
		return job, reject(CodeInvalidParameters, "no schedule day at index %d", index)
	}

	anchor := NextBusinessDayFrom(rawDate)
	if err := validateNoRegress(job.Schedule, index, anchor); err != nil {
		return job, err
	}

	candidate := job.CloneSchedule()
	day := anchor
	for i := index; i < len(candidate); i++ {
		candidate[i].Date = day
		day = NextBusinessDay(day)
	}

	if err := ValidateMilestoneBound(&job, candidate); err != nil {
		return job, err
	}

	job.Schedule = candidate
	return job, nil
}
