package freeze

import (
	"errors"
	"strings"
	"time"

	"clubhouse/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus           = errors.New("invalid freeze status")
	ErrInvalidDuration         = errors.New("freeze duration must be 1 or 2 months")
	ErrMissingStartDate        = errors.New("freeze start date is required")
	ErrStartDateInPast         = errors.New("freeze start date cannot be in the past")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrInvalidTransition       = errors.New("invalid freeze request transition")
)

const (
	MinDurationMonths = 1
	MaxDurationMonths = 2
)

type Request struct {
	id              uuid.UUID
	memberID        uuid.UUID
	requestedStart  time.Time
	requestedEnd    time.Time
	durationMonths  int
	status          Status
	freezeYear      int
	feeTotalCents   int64
	feePaid         bool
	actualStart     *time.Time
	actualEnd       *time.Time
	rejectionReason *string
	reviewedBy      *uuid.UUID
	reviewedAt      *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewRequest creates a pending freeze request. The freeze year is the year the
// request is made in, not the year the freeze starts.
func NewRequest(memberID uuid.UUID, start time.Time, months int, monthlyFeeCents int64, now time.Time) (*Request, error) {
	if months < MinDurationMonths || months > MaxDurationMonths {
		return nil, ErrInvalidDuration
	}
	if start.IsZero() {
		return nil, ErrMissingStartDate
	}
	today := clock.DateOf(now)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
	if start.Before(today) {
		return nil, ErrStartDateInPast
	}

	return &Request{
		id:             uuid.New(),
		memberID:       memberID,
		requestedStart: start,
		requestedEnd:   start.AddDate(0, months, 0),
		durationMonths: months,
		status:         StatusPending,
		freezeYear:     now.Year(),
		feeTotalCents:  int64(months) * monthlyFeeCents,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

type ReconstructParams struct {
	ID              uuid.UUID
	MemberID        uuid.UUID
	RequestedStart  time.Time
	RequestedEnd    time.Time
	DurationMonths  int
	Status          Status
	FreezeYear      int
	FeeTotalCents   int64
	FeePaid         bool
	ActualStart     *time.Time
	ActualEnd       *time.Time
	RejectionReason *string
	ReviewedBy      *uuid.UUID
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructRequest(p ReconstructParams) *Request {
	return &Request{
		id:              p.ID,
		memberID:        p.MemberID,
		requestedStart:  p.RequestedStart,
		requestedEnd:    p.RequestedEnd,
		durationMonths:  p.DurationMonths,
		status:          p.Status,
		freezeYear:      p.FreezeYear,
		feeTotalCents:   p.FeeTotalCents,
		feePaid:         p.FeePaid,
		actualStart:     p.ActualStart,
		actualEnd:       p.ActualEnd,
		rejectionReason: p.RejectionReason,
		reviewedBy:      p.ReviewedBy,
		reviewedAt:      p.ReviewedAt,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}
}

// Approve schedules the freeze. Admins may move the start date; the duration
// is fixed at request time.
func (r *Request) Approve(adminID uuid.UUID, startOverride *time.Time, now time.Time) error {
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	start := r.requestedStart
	if startOverride != nil && !startOverride.IsZero() {
		start = *startOverride
	}
	end := start.AddDate(0, r.durationMonths, 0)

	r.actualStart = &start
	r.actualEnd = &end
	r.status = StatusApproved
	r.markReviewed(adminID, now)
	return nil
}

func (r *Request) Reject(adminID uuid.UUID, reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrRejectionReasonRequired
	}
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	r.rejectionReason = &reason
	r.status = StatusRejected
	r.markReviewed(adminID, now)
	return nil
}

// Activate is the payment step that puts an approved freeze into effect.
func (r *Request) Activate(now time.Time) error {
	if r.status != StatusApproved {
		return ErrInvalidTransition
	}
	r.status = StatusActive
	r.feePaid = true
	r.updatedAt = now
	return nil
}

func (r *Request) Complete(now time.Time) error {
	if r.status != StatusActive {
		return ErrInvalidTransition
	}
	r.status = StatusCompleted
	r.updatedAt = now
	return nil
}

func (r *Request) Cancel(now time.Time) error {
	if !r.status.IsOutstanding() {
		return ErrInvalidTransition
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

// IsDue reports whether an active freeze has run its course by today.
func (r *Request) IsDue(today time.Time) bool {
	return r.status == StatusActive && r.actualEnd != nil && !r.actualEnd.After(today)
}

func (r *Request) BelongsTo(memberID uuid.UUID) bool {
	return r.memberID == memberID
}

func (r *Request) markReviewed(adminID uuid.UUID, now time.Time) {
	r.reviewedBy = &adminID
	r.reviewedAt = &now
	r.updatedAt = now
}

func (r *Request) ID() uuid.UUID             { return r.id }
func (r *Request) MemberID() uuid.UUID       { return r.memberID }
func (r *Request) RequestedStart() time.Time { return r.requestedStart }
func (r *Request) RequestedEnd() time.Time   { return r.requestedEnd }
func (r *Request) DurationMonths() int       { return r.durationMonths }
func (r *Request) Status() Status            { return r.status }
func (r *Request) FreezeYear() int           { return r.freezeYear }
func (r *Request) FeeTotalCents() int64      { return r.feeTotalCents }
func (r *Request) FeePaid() bool             { return r.feePaid }
func (r *Request) ActualStart() *time.Time   { return r.actualStart }
func (r *Request) ActualEnd() *time.Time     { return r.actualEnd }
func (r *Request) RejectionReason() *string  { return r.rejectionReason }
func (r *Request) ReviewedBy() *uuid.UUID    { return r.reviewedBy }
func (r *Request) ReviewedAt() *time.Time    { return r.reviewedAt }
func (r *Request) CreatedAt() time.Time      { return r.createdAt }
func (r *Request) UpdatedAt() time.Time      { return r.updatedAt }
