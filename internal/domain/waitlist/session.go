package waitlist

import (
	"time"

	"github.com/google/uuid"
)

// Session is the read-only view of a scheduled class the waitlist belongs to.
type Session struct {
	ID                uuid.UUID
	ClassName         string
	StartsAt          time.Time
	CurrentEnrollment int
	MaxCapacity       int
}

// OpenSeats is the capacity left once enrolled members and live claim holds
// are accounted for.
func (s Session) OpenSeats(liveHolds int) int {
	return max(0, s.MaxCapacity-s.CurrentEnrollment-liveHolds)
}
