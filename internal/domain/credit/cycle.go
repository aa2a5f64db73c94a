package credit

import (
	"errors"
	"time"

	"clubhouse/internal/pkg/clock"
)

var ErrNegativeGraceDays = errors.New("grace days cannot be negative")

// Cycle is one monthly credit-validity window.
type Cycle struct {
	start     time.Time
	end       time.Time
	expiresAt time.Time
}

// CycleStartingOn builds the window that opens on today for a membership
// anchored on anchor. The window closes the day before the next anniversary
// and its credits expire at the end of that day.
func CycleStartingOn(anchor, today time.Time) Cycle {
	start := clock.DateOf(today)
	end := NextAnchor(anchor, start).AddDate(0, 0, -1)
	return Cycle{
		start:     start,
		end:       end,
		expiresAt: clock.EndOfDay(end),
	}
}

// ActivationCycle is the first window of a membership; its credits stay
// usable for graceDays after the window closes.
func ActivationCycle(anchor, today time.Time, graceDays int) (Cycle, error) {
	if graceDays < 0 {
		return Cycle{}, ErrNegativeGraceDays
	}
	c := CycleStartingOn(anchor, today)
	c.expiresAt = clock.EndOfDay(c.end.AddDate(0, 0, graceDays))
	return c, nil
}

func (c Cycle) Start() time.Time     { return c.start }
func (c Cycle) End() time.Time       { return c.end }
func (c Cycle) ExpiresAt() time.Time { return c.expiresAt }
