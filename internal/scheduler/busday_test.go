package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBusinessDay(t *testing.T) {
	// 2025-06-30 is a Monday.
	for offset, want := range []bool{true, true, true, true, true, false, false} {
		d := date(2025, 6, 30).AddDate(0, 0, offset)
		assert.Equal(t, want, IsBusinessDay(d), "%s (%s)", d.Format("2006-01-02"), d.Weekday())
	}
}

func TestNextBusinessDay_AlwaysAdvances(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{"monday to tuesday", date(2025, 6, 30), date(2025, 7, 1)},
		{"friday skips weekend", date(2025, 7, 4), date(2025, 7, 7)},
		{"saturday to monday", date(2025, 7, 5), date(2025, 7, 7)},
		{"sunday to monday", date(2025, 7, 6), date(2025, 7, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextBusinessDay(tt.from))
		})
	}
}

func TestNextBusinessDayFrom_KeepsBusinessDay(t *testing.T) {
	wed := date(2025, 7, 2)
	assert.Equal(t, wed, NextBusinessDayFrom(wed))

	sat := date(2025, 7, 5)
	assert.Equal(t, date(2025, 7, 7), NextBusinessDayFrom(sat))
}

func TestNextBusinessDayFrom_DropsTimeOfDay(t *testing.T) {
	stamp := time.Date(2025, 7, 2, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, date(2025, 7, 2), NextBusinessDayFrom(stamp))
}

func TestPrevBusinessDay_AlwaysRecedes(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{"tuesday steps to monday", date(2025, 7, 8), date(2025, 7, 7)},
		{"monday crosses the weekend", date(2025, 7, 7), date(2025, 7, 4)},
		{"sunday lands on friday", date(2025, 7, 6), date(2025, 7, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrevBusinessDay(tt.from))
		})
	}
}
