package readstore

import (
	"context"
	"time"

	"clubhouse/internal/domain/member"
	"clubhouse/internal/infra"
	"clubhouse/internal/infra/query"
	"clubhouse/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type MemberReadQueries interface {
	GetMemberByUserID(ctx context.Context, db query.DBTX, userID uuid.UUID) (query.Members, error)
}

type MemberReadStore struct {
	queries MemberReadQueries
	db      query.DBTX
	loc     *time.Location
}

func NewMemberReadStore(queries MemberReadQueries, db query.DBTX, loc *time.Location) *MemberReadStore {
	return &MemberReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *MemberReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*member.Member, error) {
	row, err := r.queries.GetMemberByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find member by user ID", err)
	}
	m, err := converter.MemberFromRow(row, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt member row", err, infra.KindDBFailure)
	}
	return m, nil
}
