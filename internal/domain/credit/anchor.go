package credit

import (
	"time"

	"clubhouse/internal/pkg/clock"
)

// IsAnniversary reports whether today is the monthly billing anniversary of a
// membership that started on start. Anchors past the end of a short month
// fold onto that month's last day, so a Jan 31 anchor fires on Feb 28/29.
func IsAnniversary(start, today time.Time) bool {
	return today.Day() == anchorDayIn(start.Day(), today.Year(), today.Month(), today.Location())
}

// NextAnchor returns the anniversary date in the calendar month following from.
func NextAnchor(start, from time.Time) time.Time {
	loc := from.Location()
	firstOfNext := time.Date(from.Year(), from.Month()+1, 1, 0, 0, 0, 0, loc)
	day := anchorDayIn(start.Day(), firstOfNext.Year(), firstOfNext.Month(), loc)
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, loc)
}

func anchorDayIn(startDay, year int, month time.Month, loc *time.Location) int {
	return min(startDay, clock.DaysIn(year, month, loc))
}
