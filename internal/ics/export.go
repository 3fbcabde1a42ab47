// Package ics renders the projected shop calendar as an iCalendar feed,
// so the schedule can be subscribed to from external calendar apps.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

const prodID = "-//Dancing Goat Studios//shopcal//EN"

// Export serializes projected events into a VCALENDAR. Every event is an
// all-day VEVENT: work days carry the cumulative-hours title, milestone
// pseudo-events their kind. UIDs are stable per (job, date, kind) so
// re-published feeds update in place instead of duplicating.
func Export(events []domain.ProjectedEvent, colorOf func(string) string, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, ev := range events {
		ve := cal.AddEvent(eventUID(ev))
		ve.SetDtStampTime(now.UTC())
		ve.SetSummary(ev.Title)
		ve.SetAllDayStartAt(ev.Date)
		// DTEND is exclusive for all-day events.
		ve.SetAllDayEndAt(ev.Date.AddDate(0, 0, 1))
		if ev.Kind != domain.EventWork {
			ve.SetDescription(fmt.Sprintf("%s milestone", ev.Kind))
		}
		if color := colorOf(ev.Color); color != "" {
			ve.SetColor(color)
		}
	}

	return cal.Serialize()
}

func eventUID(ev domain.ProjectedEvent) string {
	return fmt.Sprintf("%s-%s-%s@shopcal", ev.JobID, domain.FormatDate(ev.Date), ev.Kind)
}
