package scheduler

import (
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

// ValidateMilestoneBound checks the milestone-before rule: every entry of
// the candidate schedule must be strictly earlier than each of the job's
// milestone dates that is set. All-or-nothing: the first violation rejects
// the whole candidate.
func ValidateMilestoneBound(job *domain.Job, candidate []domain.ScheduleEntry) error {
	check := func(kind domain.MilestoneKind, bound *time.Time) error {
		if bound == nil {
			return nil
		}
		limit := domain.Day(*bound)
		for _, e := range candidate {
			if !e.Date.Before(limit) {
				return reject(CodeMilestoneConflict,
					"day %s is not before the %s date %s",
					domain.FormatDate(e.Date), kind, domain.FormatDate(limit))
			}
		}
		return nil
	}
	if err := check(domain.MilestoneShipping, job.ShippingDate); err != nil {
		return err
	}
	return check(domain.MilestoneInHand, job.InHandDate)
}

// validateNoRegress checks that a moved entry does not slip before or onto
// the date of the entry ahead of it in sequence. Index positions are
// monotonic by construction and never renumbered, so a move that would
// reorder the sequence is rejected instead of silently renumbering.
func validateNoRegress(prior []domain.ScheduleEntry, index int, newDate time.Time) error {
	if index == 0 {
		return nil
	}
	prev := prior[index-1].Date
	if !newDate.After(prev) {
		return reject(CodeMoveRejected,
			"day %d cannot move to %s: day %d is already scheduled on %s",
			index+1, domain.FormatDate(newDate), index, domain.FormatDate(prev))
	}
	return nil
}

// ValidateMilestoneMove checks the milestone-move rule: a milestone dragged
// to a new date must land strictly after every scheduled work day.
func ValidateMilestoneMove(job *domain.Job, kind domain.MilestoneKind, newDate time.Time) error {
	day := domain.Day(newDate)
	for _, e := range job.Schedule {
		if !e.Date.Before(day) {
			return reject(CodeMilestoneConflict,
				"%s date %s must be after the last scheduled day %s",
				kind, domain.FormatDate(day), domain.FormatDate(e.Date))
		}
	}
	return nil
}
