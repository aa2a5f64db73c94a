package converter

import (
	"time"

	"clubhouse/internal/domain/credit"
	"clubhouse/internal/infra/query"
	"clubhouse/internal/pkg/pgconv"
)

func GrantToInsertParams(g *credit.Grant) query.InsertCreditGrantParams {
	c := g.Cycle()
	return query.InsertCreditGrantParams{
		ID:               g.ID(),
		MemberID:         g.MemberID(),
		CreditType:       g.Kind().String(),
		CreditsTotal:     int32(g.CreditsTotal()),
		CreditsRemaining: int32(g.CreditsRemaining()),
		CycleStart:       pgconv.DateToPgtype(c.Start()),
		CycleEnd:         pgconv.DateToPgtype(c.End()),
		ExpiresAt:        pgconv.TimeToPgtype(c.ExpiresAt()),
	}
}

func GrantFromRow(row query.CreditGrants, loc *time.Location) (*credit.Grant, error) {
	kind, err := credit.NewKind(row.CreditType)
	if err != nil {
		return nil, err
	}
	return credit.ReconstructGrant(
		row.ID, row.MemberID,
		kind,
		int(row.CreditsTotal), int(row.CreditsRemaining),
		pgconv.DateFromPgtype(row.CycleStart, loc),
		pgconv.DateFromPgtype(row.CycleEnd, loc),
		pgconv.TimeFromPgtype(row.ExpiresAt).In(loc),
	)
}
