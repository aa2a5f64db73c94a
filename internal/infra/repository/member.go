package repository

import (
	"context"
	"time"

	"clubhouse/internal/domain/member"
	"clubhouse/internal/infra"
	"clubhouse/internal/infra/query"
	"clubhouse/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type MemberQueries interface {
	GetMemberByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Members, error)
	GetMemberByIDForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Members, error)
	GetMemberByUserID(ctx context.Context, db query.DBTX, userID uuid.UUID) (query.Members, error)
	GetMemberBySubscriptionRef(ctx context.Context, db query.DBTX, ref string) (query.Members, error)
	ListActiveMembers(ctx context.Context, db query.DBTX) ([]query.Members, error)
	UpdateMember(ctx context.Context, db query.DBTX, arg query.UpdateMemberParams) (int64, error)
}

type MemberRepository struct {
	queries MemberQueries
	loc     *time.Location
}

func NewMemberRepository(queries MemberQueries, loc *time.Location) *MemberRepository {
	return &MemberRepository{
		queries: queries,
		loc:     loc,
	}
}

func (r *MemberRepository) FindByID(ctx context.Context, tx query.DBTX, id uuid.UUID) (*member.Member, error) {
	row, err := r.queries.GetMemberByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find member by ID", err)
	}
	return r.toDomain(row)
}

func (r *MemberRepository) FindByIDForUpdate(ctx context.Context, tx query.DBTX, id uuid.UUID) (*member.Member, error) {
	row, err := r.queries.GetMemberByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock member", err)
	}
	return r.toDomain(row)
}

func (r *MemberRepository) FindByUserID(ctx context.Context, tx query.DBTX, userID uuid.UUID) (*member.Member, error) {
	row, err := r.queries.GetMemberByUserID(ctx, tx, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find member by user ID", err)
	}
	return r.toDomain(row)
}

func (r *MemberRepository) FindBySubscriptionRef(ctx context.Context, tx query.DBTX, ref string) (*member.Member, error) {
	row, err := r.queries.GetMemberBySubscriptionRef(ctx, tx, ref)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find member by subscription", err)
	}
	return r.toDomain(row)
}

func (r *MemberRepository) ListActive(ctx context.Context, tx query.DBTX) ([]*member.Member, error) {
	rows, err := r.queries.ListActiveMembers(ctx, tx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active members", err)
	}

	members := make([]*member.Member, 0, len(rows))
	for _, row := range rows {
		m, err := r.toDomain(row)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

func (r *MemberRepository) Update(ctx context.Context, tx query.DBTX, m *member.Member) error {
	affected, err := r.queries.UpdateMember(ctx, tx, converter.MemberToUpdateParams(m))
	if err != nil {
		return infra.WrapRepoErr("failed to update member", err)
	}
	if affected == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "member not found")
	}
	return nil
}

func (r *MemberRepository) toDomain(row query.Members) (*member.Member, error) {
	m, err := converter.MemberFromRow(row, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt member row", err, infra.KindDBFailure)
	}
	return m, nil
}
