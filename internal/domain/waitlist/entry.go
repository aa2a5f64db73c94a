package waitlist

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errors.New("invalid waitlist status")
	ErrNotWaiting         = errors.New("waitlist entry is not waiting")
	ErrClaimNotLapsed     = errors.New("claim window has not lapsed")
	ErrInvalidClaimWindow = errors.New("claim window must be positive")
)

// DefaultClaimWindow is how long a promoted user has to claim the seat.
const DefaultClaimWindow = 5 * time.Minute

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusNotified  Status = "notified"
	StatusClaimed   Status = "claimed"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusNotified, StatusClaimed, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Entry struct {
	id             uuid.UUID
	sessionID      uuid.UUID
	userID         uuid.UUID
	position       int
	status         Status
	notifiedAt     *time.Time
	claimExpiresAt *time.Time
	createdAt      time.Time
}

func ReconstructEntry(
	id, sessionID, userID uuid.UUID,
	position int,
	status Status,
	notifiedAt, claimExpiresAt *time.Time,
	createdAt time.Time,
) *Entry {
	return &Entry{
		id:             id,
		sessionID:      sessionID,
		userID:         userID,
		position:       position,
		status:         status,
		notifiedAt:     notifiedAt,
		claimExpiresAt: claimExpiresAt,
		createdAt:      createdAt,
	}
}

// Notify offers the freed seat to this entry for the length of window.
func (e *Entry) Notify(now time.Time, window time.Duration) error {
	if window <= 0 {
		return ErrInvalidClaimWindow
	}
	if e.status != StatusWaiting {
		return ErrNotWaiting
	}
	expires := now.Add(window)
	e.status = StatusNotified
	e.notifiedAt = &now
	e.claimExpiresAt = &expires
	return nil
}

// Expire closes a lapsed claim so the seat can be offered to the next waiter.
func (e *Entry) Expire(now time.Time) error {
	if !e.ClaimLapsed(now) {
		return ErrClaimNotLapsed
	}
	e.status = StatusExpired
	return nil
}

// HoldsSeat is true while a notified entry is still inside its claim window.
func (e *Entry) HoldsSeat(now time.Time) bool {
	return e.status == StatusNotified && e.claimExpiresAt != nil && now.Before(*e.claimExpiresAt)
}

func (e *Entry) ClaimLapsed(now time.Time) bool {
	return e.status == StatusNotified && e.claimExpiresAt != nil && !now.Before(*e.claimExpiresAt)
}

func (e *Entry) ID() uuid.UUID              { return e.id }
func (e *Entry) SessionID() uuid.UUID       { return e.sessionID }
func (e *Entry) UserID() uuid.UUID          { return e.userID }
func (e *Entry) Position() int              { return e.position }
func (e *Entry) Status() Status             { return e.status }
func (e *Entry) NotifiedAt() *time.Time     { return e.notifiedAt }
func (e *Entry) ClaimExpiresAt() *time.Time { return e.claimExpiresAt }
func (e *Entry) CreatedAt() time.Time       { return e.createdAt }
