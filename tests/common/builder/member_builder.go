//go:build unit || e2e

package builder

import (
	"time"

	"clubhouse/internal/domain/member"

	"github.com/google/uuid"
)

type MemberBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Tier            string
	Status          member.Status
	StartDate       *time.Time
	AnnualFeePaidAt *time.Time
	SubscriptionRef *string
	Founding        bool
	Gender          string
	CreatedAt       time.Time
}

// NewMemberBuilder defaults to a fully paid active gold member anchored on Jan 15 2024.
func NewMemberBuilder() *MemberBuilder {
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	paid := start.Add(10 * time.Hour)
	ref := "sub_test_123"
	return &MemberBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		Tier:            "Gold Membership",
		Status:          member.StatusActive,
		StartDate:       &start,
		AnnualFeePaidAt: &paid,
		SubscriptionRef: &ref,
		Gender:          "female",
		CreatedAt:       start,
	}
}

func (m *MemberBuilder) With(mutate func(*MemberBuilder)) *MemberBuilder {
	mutate(m)
	return m
}

func (m *MemberBuilder) BuildDomain() *member.Member {
	return member.ReconstructMember(
		m.ID, m.UserID,
		m.Tier,
		m.Status,
		m.StartDate, m.AnnualFeePaidAt,
		m.SubscriptionRef,
		m.Founding,
		m.Gender,
		m.CreatedAt, m.CreatedAt,
	)
}

func (m *MemberBuilder) WithID(id uuid.UUID) *MemberBuilder {
	m.ID = id
	return m
}

func (m *MemberBuilder) WithUserID(id uuid.UUID) *MemberBuilder {
	m.UserID = id
	return m
}

func (m *MemberBuilder) WithTier(tier string) *MemberBuilder {
	m.Tier = tier
	return m
}

func (m *MemberBuilder) WithStatus(status member.Status) *MemberBuilder {
	m.Status = status
	return m
}

func (m *MemberBuilder) WithStartDate(d time.Time) *MemberBuilder {
	m.StartDate = &d
	return m
}

func (m *MemberBuilder) WithoutStartDate() *MemberBuilder {
	m.StartDate = nil
	return m
}

func (m *MemberBuilder) WithAnnualFeePaidAt(t time.Time) *MemberBuilder {
	m.AnnualFeePaidAt = &t
	return m
}

func (m *MemberBuilder) WithoutAnnualFee() *MemberBuilder {
	m.AnnualFeePaidAt = nil
	return m
}

func (m *MemberBuilder) WithSubscriptionRef(ref string) *MemberBuilder {
	m.SubscriptionRef = &ref
	return m
}

func (m *MemberBuilder) WithoutSubscription() *MemberBuilder {
	m.SubscriptionRef = nil
	return m
}

// AsPendingActivation resets the member to the state right after approval.
func (m *MemberBuilder) AsPendingActivation() *MemberBuilder {
	m.Status = member.StatusPendingActivation
	m.StartDate = nil
	m.SubscriptionRef = nil
	return m
}
