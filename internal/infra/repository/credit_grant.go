package repository

import (
	"context"
	"time"

	"clubhouse/internal/domain/credit"
	"clubhouse/internal/infra"
	"clubhouse/internal/infra/query"
	"clubhouse/internal/infra/repository/converter"
	"clubhouse/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreditGrantQueries interface {
	InsertCreditGrant(ctx context.Context, db query.DBTX, arg query.InsertCreditGrantParams) (int64, error)
	ListCreditGrantsByMemberCycle(ctx context.Context, db query.DBTX, memberID uuid.UUID, cycleStart pgtype.Date) ([]query.CreditGrants, error)
}

type CreditGrantRepository struct {
	queries CreditGrantQueries
	loc     *time.Location
}

func NewCreditGrantRepository(queries CreditGrantQueries, loc *time.Location) *CreditGrantRepository {
	return &CreditGrantRepository{
		queries: queries,
		loc:     loc,
	}
}

// InsertIfAbsent relies on the (member, type, cycle_start) constraint; a
// second insert for the same cycle affects no rows.
func (r *CreditGrantRepository) InsertIfAbsent(ctx context.Context, tx query.DBTX, g *credit.Grant) (bool, error) {
	affected, err := r.queries.InsertCreditGrant(ctx, tx, converter.GrantToInsertParams(g))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert credit grant", err)
	}
	return affected > 0, nil
}

func (r *CreditGrantRepository) ListByMemberCycle(ctx context.Context, tx query.DBTX, memberID uuid.UUID, cycleStart time.Time) ([]*credit.Grant, error) {
	rows, err := r.queries.ListCreditGrantsByMemberCycle(ctx, tx, memberID, pgconv.DateToPgtype(cycleStart))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list credit grants", err)
	}

	grants := make([]*credit.Grant, 0, len(rows))
	for _, row := range rows {
		g, err := converter.GrantFromRow(row, r.loc)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt credit grant row", err, infra.KindDBFailure)
		}
		grants = append(grants, g)
	}
	return grants, nil
}
