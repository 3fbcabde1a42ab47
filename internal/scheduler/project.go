package scheduler

import (
	"fmt"
	"strconv"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

// ViewFilter selects which projected events are visible.
type ViewFilter struct {
	// ActiveGroups limits work events to jobs in these calendar groups.
	// A nil map means every group is visible.
	ActiveGroups map[string]bool
	ShowShipping bool
	ShowInHand   bool
}

// AllVisible is the filter that shows every group and both milestones.
var AllVisible = ViewFilter{ShowShipping: true, ShowInHand: true}

func (f ViewFilter) groupActive(group string) bool {
	if f.ActiveGroups == nil {
		return true
	}
	return f.ActiveGroups[group]
}

// ProjectJob derives the renderable events for a single job. Work-day
// titles encode cumulative hour consumption as "Title : applied /
// remaining"; an entry that would push the remaining balance negative is
// flagged with the overrun color instead of the job's own. Milestone dates
// become pseudo-events in the job's color.
func ProjectJob(job *domain.Job, filter ViewFilter) []domain.ProjectedEvent {
	if !filter.groupActive(job.CalendarGroup) {
		return nil
	}

	var events []domain.ProjectedEvent
	remaining := job.TotalHours
	for _, e := range job.Schedule {
		// An entry that would push the balance negative is an overrun;
		// the applied amount clamps to what actually remains.
		overrun := e.Hours > remaining
		applied := e.Hours
		if remaining < applied {
			applied = remaining
		}
		title := fmt.Sprintf("%s : %s / %s", job.Title, formatHours(applied), formatHours(remaining))

		// Guard against driving the balance negative on malformed data.
		if remaining >= applied {
			remaining -= applied
		}

		color := job.ColorKey
		if overrun {
			color = domain.OverrunColorKey
		}

		events = append(events, domain.ProjectedEvent{
			JobID: job.ID,
			Date:  e.Date,
			Title: title,
			Color: color,
			Kind:  domain.EventWork,
		})
	}

	if filter.ShowShipping && job.ShippingDate != nil {
		events = append(events, domain.ProjectedEvent{
			JobID: job.ID,
			Date:  domain.Day(*job.ShippingDate),
			Title: fmt.Sprintf("%s : ships", job.Title),
			Color: job.ColorKey,
			Kind:  domain.EventShipping,
		})
	}
	if filter.ShowInHand && job.InHandDate != nil {
		events = append(events, domain.ProjectedEvent{
			JobID: job.ID,
			Date:  domain.Day(*job.InHandDate),
			Title: fmt.Sprintf("%s : in hand", job.Title),
			Color: job.ColorKey,
			Kind:  domain.EventInHand,
		})
	}

	return events
}

// ProjectJobs derives the full event set for a list of jobs.
func ProjectJobs(jobs []*domain.Job, filter ViewFilter) []domain.ProjectedEvent {
	var events []domain.ProjectedEvent
	for _, job := range jobs {
		events = append(events, ProjectJob(job, filter)...)
	}
	return events
}

// formatHours renders an hour count without trailing zeros (8, 7.5, 0.25).
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
