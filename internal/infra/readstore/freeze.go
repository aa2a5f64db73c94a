package readstore

import (
	"context"
	"time"

	"clubhouse/internal/domain/freeze"
	"clubhouse/internal/infra"
	"clubhouse/internal/infra/query"
	"clubhouse/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type FreezeReadQueries interface {
	ListFreezeRequestsByMemberYear(ctx context.Context, db query.DBTX, memberID uuid.UUID, year int32) ([]query.FreezeRequests, error)
}

type FreezeReadStore struct {
	queries FreezeReadQueries
	db      query.DBTX
	loc     *time.Location
}

func NewFreezeReadStore(queries FreezeReadQueries, db query.DBTX, loc *time.Location) *FreezeReadStore {
	return &FreezeReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *FreezeReadStore) ListByMemberYear(ctx context.Context, memberID uuid.UUID, year int) ([]*freeze.Request, error) {
	rows, err := r.queries.ListFreezeRequestsByMemberYear(ctx, r.db, memberID, int32(year))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list freeze requests", err)
	}
	reqs, err := converter.FreezeRequestsFromRows(rows, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt freeze request row", err, infra.KindDBFailure)
	}
	return reqs, nil
}
