package member

import (
	"errors"
	"time"

	"clubhouse/internal/domain/credit"
	"clubhouse/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrMissingStartDate     = errors.New("membership start date is required")
	ErrAlreadyActivated     = errors.New("membership is already activated")
	ErrEmptySubscriptionRef = errors.New("subscription reference cannot be empty")
)

type Member struct {
	id              uuid.UUID
	userID          uuid.UUID
	tierName        string
	status          Status
	startDate       *time.Time
	annualFeePaidAt *time.Time
	subscriptionRef *string
	foundingMember  bool
	gender          string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewMember creates a membership at application approval; billing has not
// started yet so there is no anchor date.
func NewMember(userID uuid.UUID, tierName string, foundingMember bool, gender string, now time.Time) *Member {
	return &Member{
		id:             uuid.New(),
		userID:         userID,
		tierName:       tierName,
		status:         StatusPendingActivation,
		foundingMember: foundingMember,
		gender:         gender,
		createdAt:      now,
		updatedAt:      now,
	}
}

func ReconstructMember(
	id, userID uuid.UUID,
	tierName string,
	status Status,
	startDate, annualFeePaidAt *time.Time,
	subscriptionRef *string,
	foundingMember bool,
	gender string,
	createdAt, updatedAt time.Time,
) *Member {
	return &Member{
		id:              id,
		userID:          userID,
		tierName:        tierName,
		status:          status,
		startDate:       startDate,
		annualFeePaidAt: annualFeePaidAt,
		subscriptionRef: subscriptionRef,
		foundingMember:  foundingMember,
		gender:          gender,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// TransitionTo moves the member along the lifecycle graph. Repeating the
// current status is a no-op and reports changed=false so webhook redelivery
// stays harmless.
func (m *Member) TransitionTo(next Status, now time.Time) (changed bool, err error) {
	if !next.IsValid() {
		return false, ErrInvalidStatus
	}
	if m.status == next {
		return false, nil
	}
	if !m.status.CanTransitionTo(next) {
		return false, ErrInvalidStatusTransition
	}
	m.status = next
	m.updatedAt = now
	return true, nil
}

// Activate starts billing. The anchor is kept if one was recorded at signup,
// otherwise the activation day becomes the anchor.
func (m *Member) Activate(on time.Time) error {
	if m.status != StatusPendingActivation {
		return ErrAlreadyActivated
	}
	if m.startDate == nil {
		d := clock.DateOf(on)
		m.startDate = &d
	}
	_, err := m.TransitionTo(StatusActive, on)
	return err
}

// RecordAnnualFeePaid stores the first payment time; later calls keep the
// original timestamp because the field is never cleared or rewritten.
func (m *Member) RecordAnnualFeePaid(at time.Time) bool {
	if m.annualFeePaidAt != nil {
		return false
	}
	t := at
	m.annualFeePaidAt = &t
	m.updatedAt = at
	return true
}

func (m *Member) LinkSubscription(ref string, now time.Time) error {
	if ref == "" {
		return ErrEmptySubscriptionRef
	}
	if m.subscriptionRef != nil && *m.subscriptionRef == ref {
		return nil
	}
	m.subscriptionRef = &ref
	m.updatedAt = now
	return nil
}

func (m *Member) CreditBundle() credit.Bundle {
	return Allocate(m.tierName)
}

func (m *Member) IsActive() bool { return m.status == StatusActive }

func (m *Member) HasSubscription() bool {
	return m.subscriptionRef != nil && *m.subscriptionRef != ""
}

func (m *Member) ID() uuid.UUID               { return m.id }
func (m *Member) UserID() uuid.UUID           { return m.userID }
func (m *Member) Tier() Tier                  { return NormalizeTier(m.tierName) }
func (m *Member) Status() Status              { return m.status }
func (m *Member) StartDate() *time.Time       { return m.startDate }
func (m *Member) AnnualFeePaidAt() *time.Time { return m.annualFeePaidAt }
func (m *Member) SubscriptionRef() *string    { return m.subscriptionRef }
func (m *Member) FoundingMember() bool        { return m.foundingMember }
func (m *Member) Gender() string              { return m.gender }
func (m *Member) CreatedAt() time.Time        { return m.createdAt }
func (m *Member) UpdatedAt() time.Time        { return m.updatedAt }
