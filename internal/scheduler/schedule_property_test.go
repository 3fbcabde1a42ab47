package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildSchedule_Invariants property-tests the generator: no weekend
// entries, hours sum to the requested total, dates strictly ascending.
func TestBuildSchedule_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		start := date(2025, 1, 1).AddDate(0, 0, rng.Intn(365))
		total := float64(rng.Intn(160)+1) / 2.0   // 0.5–80h
		perDay := float64(rng.Intn(16)+1) / 2.0   // 0.5–8h

		entries, err := BuildSchedule(start, total, perDay)
		require.NoError(t, err, "trial %d", trial)
		require.NotEmpty(t, entries, "trial %d", trial)

		var sum float64
		for i, e := range entries {
			assert.True(t, IsBusinessDay(e.Date),
				"trial %d: entry %d on %s", trial, i, e.Date.Weekday())
			assert.Greater(t, e.Hours, 0.0, "trial %d", trial)
			assert.LessOrEqual(t, e.Hours, perDay, "trial %d", trial)
			if i > 0 {
				assert.True(t, e.Date.After(entries[i-1].Date),
					"trial %d: dates must be strictly ascending", trial)
			}
			sum += e.Hours
		}
		assert.InDelta(t, total, sum, 1e-9, "trial %d", trial)
	}
}

// TestMoveEntry_Invariants property-tests the reschedule engine: any
// accepted move keeps dates distinct, ascending, weekend-free, with the
// prefix and all hour allocations untouched.
func TestMoveEntry_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 300; trial++ {
		start := date(2025, 3, 3).AddDate(0, 0, rng.Intn(60))
		total := float64(rng.Intn(10)+1) * 4 // up to 10 days of work
		entries, err := BuildSchedule(start, total, 4)
		require.NoError(t, err)

		job := domain.Job{ID: "j", Title: "t", TotalHours: total, PerDayHours: 4, Schedule: entries}
		index := rng.Intn(len(entries))
		target := start.AddDate(0, 0, rng.Intn(30)-5)

		moved, err := MoveEntry(job, index, target)
		if err != nil {
			_, ok := AsRejection(err)
			require.True(t, ok, "trial %d: unexpected error %v", trial, err)
			assert.Equal(t, scheduleDates(job), scheduleDates(moved),
				"trial %d: rejection must not change the schedule", trial)
			continue
		}

		require.Len(t, moved.Schedule, len(entries), "trial %d", trial)
		for i, e := range moved.Schedule {
			assert.True(t, IsBusinessDay(e.Date), "trial %d", trial)
			assert.Equal(t, entries[i].Hours, e.Hours,
				"trial %d: hours must travel with their entry", trial)
			if i > 0 {
				assert.True(t, e.Date.After(moved.Schedule[i-1].Date),
					"trial %d: order must hold after a move", trial)
			}
			if i < index {
				assert.Equal(t, entries[i].Date, e.Date,
					"trial %d: prefix must be untouched", trial)
			}
		}
		if index > 0 {
			assert.False(t, moved.Schedule[index].Date.Before(entries[index-1].Date),
				"trial %d: no-regress invariant", trial)
		}
	}
}

// TestExtendSchedule_Invariants property-tests the resize splitter:
// idempotence and milestone safety under random end dates.
func TestExtendSchedule_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 300; trial++ {
		start := date(2025, 5, 1).AddDate(0, 0, rng.Intn(30))
		entries, err := BuildSchedule(start, 16, 8)
		require.NoError(t, err)

		var ship *time.Time
		if rng.Intn(2) == 0 {
			s := entries[len(entries)-1].Date.AddDate(0, 0, rng.Intn(14)+1)
			ship = &s
		}
		job := domain.Job{
			ID: "j", Title: "t", TotalHours: 16, PerDayHours: 8,
			Schedule: entries, ShippingDate: ship,
		}

		end := start.AddDate(0, 0, rng.Intn(20))
		once, err := ExtendSchedule(job, len(job.Schedule)-1, end)
		if err != nil {
			assert.Equal(t, scheduleDates(job), scheduleDates(once), "trial %d", trial)
			continue
		}

		twice, err := ExtendSchedule(once, len(once.Schedule)-1, end)
		require.NoError(t, err, "trial %d", trial)
		assert.Equal(t, scheduleDates(once), scheduleDates(twice),
			"trial %d: repeating the same resize must be a no-op", trial)

		if ship != nil {
			for _, e := range once.Schedule {
				assert.True(t, e.Date.Before(domain.Day(*ship)),
					"trial %d: milestone bound must hold", trial)
			}
		}
	}
}
