package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

const (
	cellWidth  = 16
	cellEvents = 3
)

var (
	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(cellEvents + 1).
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorDim)

	todayStyle = cellStyle.BorderForeground(ColorHeader)
)

// MonthSelection identifies a single work event to render highlighted.
// Dates are distinct within a job, so job ID plus date pins one entry.
type MonthSelection struct {
	JobID string
	Date  time.Time
}

// FormatMonth renders a Monday-first month grid with the given projected
// events placed in their day cells. colorOf maps a color key to a hex
// value; sel, when non-nil, marks the selected work event.
func FormatMonth(year int, month time.Month, events []domain.ProjectedEvent, colorOf func(string) string, today time.Time, sel *MonthSelection) string {
	byDay := make(map[string][]domain.ProjectedEvent)
	for _, ev := range events {
		k := domain.FormatDate(ev.Date)
		byDay[k] = append(byDay[k], ev)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Walk back to the Monday on or before the first of the month.
	cursor := first
	for cursor.Weekday() != time.Monday {
		cursor = cursor.AddDate(0, 0, -1)
	}

	var b strings.Builder
	b.WriteString(Header(first.Format("January 2006")))
	b.WriteString("\n")

	for cursor.Month() == month || cursor.Before(first) {
		cells := make([]string, 0, 7)
		for i := 0; i < 7; i++ {
			cells = append(cells, renderDayCell(cursor, month, byDay[domain.FormatDate(cursor)], colorOf, today, sel))
			cursor = cursor.AddDate(0, 0, 1)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	return b.String()
}

func renderDayCell(day time.Time, month time.Month, events []domain.ProjectedEvent, colorOf func(string) string, today time.Time, sel *MonthSelection) string {
	label := fmt.Sprintf("%2d %s", day.Day(), day.Weekday().String()[:3])
	switch {
	case day.Month() != month:
		label = Dim(label)
	case day.Weekday() == time.Saturday || day.Weekday() == time.Sunday:
		label = Dim(label)
	default:
		label = Bold(label)
	}

	lines := []string{label}
	for i, ev := range events {
		if i == cellEvents {
			lines[len(lines)-1] = Dim(fmt.Sprintf("+%d more", len(events)-cellEvents+1))
			break
		}
		style := EventStyle(colorOf(ev.Color))
		if isSelected(ev, sel) {
			style = style.Reverse(true)
		}
		lines = append(lines, style.Render(truncate(eventLabel(ev), cellWidth-2)))
	}

	style := cellStyle
	if domain.SameDay(day, today) {
		style = todayStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func isSelected(ev domain.ProjectedEvent, sel *MonthSelection) bool {
	return sel != nil &&
		ev.Kind == domain.EventWork &&
		ev.JobID == sel.JobID &&
		domain.SameDay(ev.Date, sel.Date)
}

func eventLabel(ev domain.ProjectedEvent) string {
	switch ev.Kind {
	case domain.EventShipping:
		return "▲ " + ev.Title
	case domain.EventInHand:
		return "● " + ev.Title
	default:
		return ev.Title
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
