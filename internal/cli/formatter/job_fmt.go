package formatter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

// FormatJobList renders a table of jobs: id, title, hour totals, span and
// milestones. colorOf maps a job color key to a renderable hex value.
func FormatJobList(jobs []*domain.Job, colorOf func(string) string) string {
	headers := []string{"ID", "TITLE", "HOURS", "DAYS", "START", "END", "SHIP", "IN HAND", "GROUP"}
	rows := make([][]string, 0, len(jobs))

	for _, j := range jobs {
		start, end := Dim("--"), Dim("--")
		if len(j.Schedule) > 0 {
			start = domain.FormatDate(j.Schedule[0].Date)
			end = domain.FormatDate(j.Schedule[len(j.Schedule)-1].Date)
		}

		style := EventStyle(colorOf(j.ColorKey))
		group := j.CalendarGroup
		if group == "" {
			group = Dim("--")
		}

		rows = append(rows, []string{
			Dim(TruncID(j.ID)),
			style.Render(j.Title),
			fmt.Sprintf("%s/%s", Hours(j.TotalHours), Hours(j.PerDayHours)),
			strconv.Itoa(len(j.Schedule)),
			start,
			end,
			milestoneCell(j.ShippingDate),
			milestoneCell(j.InHandDate),
			group,
		})
	}

	return RenderTable(headers, rows)
}

// FormatSchedule renders a job's day-by-day schedule with a running
// remaining-hours column.
func FormatSchedule(job *domain.Job) string {
	headers := []string{"DAY", "DATE", "WEEKDAY", "HOURS", "REMAINING"}
	rows := make([][]string, 0, len(job.Schedule))

	remaining := job.TotalHours
	for i, e := range job.Schedule {
		hoursCell := Hours(e.Hours)
		if e.Hours > remaining {
			hoursCell = StyleRed.Render(hoursCell)
		}

		applied := e.Hours
		if applied > remaining {
			applied = remaining
		}
		remaining -= applied

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			domain.FormatDate(e.Date),
			e.Date.Weekday().String()[:3],
			hoursCell,
			Hours(remaining),
		})
	}

	header := Header(job.Title)
	return fmt.Sprintf("%s\n%s", header, RenderTable(headers, rows))
}

// Hours formats an hour count without trailing zeros (8, 7.5, 0.25).
func Hours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func milestoneCell(t *time.Time) string {
	if t == nil {
		return Dim("--")
	}
	return domain.FormatDate(*t)
}
