package scheduler

import (
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

// IsBusinessDay reports whether the date falls Monday through Friday.
func IsBusinessDay(d time.Time) bool {
	wd := d.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

// NextBusinessDay returns the first business day strictly after d. It is
// used to step forward from an already-placed schedule day, so it always
// advances at least one calendar day.
func NextBusinessDay(d time.Time) time.Time {
	next := domain.Day(d).AddDate(0, 0, 1)
	for !IsBusinessDay(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// PrevBusinessDay returns the first business day strictly before d. It is
// the stepping counterpart of NextBusinessDay for keyboard-driven moves.
func PrevBusinessDay(d time.Time) time.Time {
	prev := domain.Day(d).AddDate(0, 0, -1)
	for !IsBusinessDay(prev) {
		prev = prev.AddDate(0, 0, -1)
	}
	return prev
}

// NextBusinessDayFrom returns d itself when it is a business day, otherwise
// the first business day after it. Used to normalize a drop target that may
// land on a weekend.
func NextBusinessDayFrom(d time.Time) time.Time {
	cur := domain.Day(d)
	for !IsBusinessDay(cur) {
		cur = cur.AddDate(0, 0, 1)
	}
	return cur
}
