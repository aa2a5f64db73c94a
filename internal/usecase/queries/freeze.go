package queries

import (
	"context"

	"clubhouse/internal/domain/freeze"
	"clubhouse/internal/infra"
	"clubhouse/internal/pkg/clock"
	"clubhouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMemberNotFound = errs.New("membership not found")

type FreezeReadStore interface {
	ListByMemberYear(ctx context.Context, memberID uuid.UUID, year int) ([]*freeze.Request, error)
}

type FreezeQueries interface {
	// Eligibility uses the current year when year is zero.
	Eligibility(ctx context.Context, userID uuid.UUID, year int) (*FreezeEligibilityView, error)
}

type freezeQueriesImpl struct {
	members  MemberReadStore
	requests FreezeReadStore
	clock    clock.Clock
}

func NewFreezeQueries(members MemberReadStore, requests FreezeReadStore, clk clock.Clock) FreezeQueries {
	return &freezeQueriesImpl{
		members:  members,
		requests: requests,
		clock:    clk,
	}
}

func (q *freezeQueriesImpl) Eligibility(ctx context.Context, userID uuid.UUID, year int) (*FreezeEligibilityView, error) {
	if year == 0 {
		year = q.clock.Now().Year()
	}

	m, err := q.members.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrMemberNotFound)
		}
		return nil, err
	}

	requests, err := q.requests.ListByMemberYear(ctx, m.ID(), year)
	if err != nil {
		return nil, err
	}

	e := freeze.CheckEligibility(requests, year)
	return &FreezeEligibilityView{
		Year:            e.Year,
		CanFreeze:       e.CanFreeze,
		MonthsUsed:      e.MonthsUsed,
		MonthsRemaining: e.MonthsRemaining,
		FreezesUsed:     e.FreezesUsed,
		HasPending:      e.HasPending,
	}, nil
}
