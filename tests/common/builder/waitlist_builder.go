//go:build unit || e2e

package builder

import (
	"time"

	"clubhouse/internal/domain/waitlist"

	"github.com/google/uuid"
)

type WaitlistEntryBuilder struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	UserID         uuid.UUID
	Position       int
	Status         waitlist.Status
	NotifiedAt     *time.Time
	ClaimExpiresAt *time.Time
	CreatedAt      time.Time
}

func NewWaitlistEntryBuilder() *WaitlistEntryBuilder {
	return &WaitlistEntryBuilder{
		ID:        uuid.New(),
		SessionID: uuid.New(),
		UserID:    uuid.New(),
		Position:  1,
		Status:    waitlist.StatusWaiting,
		CreatedAt: time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (w *WaitlistEntryBuilder) With(mutate func(*WaitlistEntryBuilder)) *WaitlistEntryBuilder {
	mutate(w)
	return w
}

func (w *WaitlistEntryBuilder) BuildDomain() *waitlist.Entry {
	return waitlist.ReconstructEntry(
		w.ID, w.SessionID, w.UserID,
		w.Position,
		w.Status,
		w.NotifiedAt, w.ClaimExpiresAt,
		w.CreatedAt,
	)
}

func (w *WaitlistEntryBuilder) WithSessionID(id uuid.UUID) *WaitlistEntryBuilder {
	w.SessionID = id
	return w
}

func (w *WaitlistEntryBuilder) WithPosition(pos int) *WaitlistEntryBuilder {
	w.Position = pos
	return w
}

// NotifiedAtTime puts the entry into the notified state with a claim window.
func (w *WaitlistEntryBuilder) NotifiedAtTime(at time.Time, window time.Duration) *WaitlistEntryBuilder {
	expires := at.Add(window)
	w.Status = waitlist.StatusNotified
	w.NotifiedAt = &at
	w.ClaimExpiresAt = &expires
	return w
}
