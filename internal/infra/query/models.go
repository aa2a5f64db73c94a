package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Members struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Tier                string
	Status              string
	MembershipStartDate pgtype.Date
	AnnualFeePaidAt     pgtype.Timestamptz
	SubscriptionRef     pgtype.Text
	FoundingMember      bool
	Gender              string
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

type CreditGrants struct {
	ID               uuid.UUID
	MemberID         uuid.UUID
	CreditType       string
	CreditsTotal     int32
	CreditsRemaining int32
	CycleStart       pgtype.Date
	CycleEnd         pgtype.Date
	ExpiresAt        pgtype.Timestamptz
	CreatedAt        pgtype.Timestamptz
}

type FreezeRequests struct {
	ID                  uuid.UUID
	MemberID            uuid.UUID
	RequestedStartDate  pgtype.Date
	RequestedEndDate    pgtype.Date
	DurationMonths      int32
	Status              string
	FreezeYear          int32
	FreezeFeeTotalCents int64
	FeePaid             bool
	ActualStartDate     pgtype.Date
	ActualEndDate       pgtype.Date
	RejectionReason     pgtype.Text
	ReviewedBy          pgtype.UUID
	ReviewedAt          pgtype.Timestamptz
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

type ClassSessions struct {
	ID                uuid.UUID
	ClassName         string
	StartsAt          pgtype.Timestamptz
	CurrentEnrollment int32
	MaxCapacity       int32
}

type ClassWaitlist struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	UserID         uuid.UUID
	Position       int32
	Status         string
	NotifiedAt     pgtype.Timestamptz
	ClaimExpiresAt pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
}
