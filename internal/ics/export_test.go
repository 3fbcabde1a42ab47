package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestExport_SerializesAllDayEvents(t *testing.T) {
	events := []domain.ProjectedEvent{
		{
			JobID: "job-1",
			Date:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			Title: "Banners : 8 / 40",
			Color: "blue",
			Kind:  domain.EventWork,
		},
		{
			JobID: "job-1",
			Date:  time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC),
			Title: "Banners : ships",
			Color: "blue",
			Kind:  domain.EventShipping,
		},
	}
	colorOf := func(key string) string {
		if key == "blue" {
			return "#83a598"
		}
		return key
	}

	feed := Export(events, colorOf, time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))

	assert.True(t, strings.HasPrefix(feed, "BEGIN:VCALENDAR"))
	assert.Contains(t, feed, "METHOD:PUBLISH")
	assert.Contains(t, feed, "SUMMARY:Banners : 8 / 40")
	assert.Contains(t, feed, "DTSTART;VALUE=DATE:20250701")
	assert.Contains(t, feed, "DTEND;VALUE=DATE:20250702")
	assert.Contains(t, feed, "job-1-2025-07-01-work@shopcal")
	assert.Contains(t, feed, "job-1-2025-07-09-shipping@shopcal")
	assert.Contains(t, feed, "shipping milestone")
	assert.Equal(t, 2, strings.Count(feed, "BEGIN:VEVENT"))
}

func TestExport_EmptyFeedIsValid(t *testing.T) {
	feed := Export(nil, func(s string) string { return s }, time.Now())
	assert.Contains(t, feed, "BEGIN:VCALENDAR")
	assert.Contains(t, feed, "END:VCALENDAR")
	assert.NotContains(t, feed, "BEGIN:VEVENT")
}
