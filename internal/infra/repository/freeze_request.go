package repository

import (
	"context"
	"time"

	"clubhouse/internal/domain/freeze"
	"clubhouse/internal/infra"
	"clubhouse/internal/infra/query"
	"clubhouse/internal/infra/repository/converter"
	"clubhouse/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type FreezeRequestQueries interface {
	CreateFreezeRequest(ctx context.Context, db query.DBTX, arg query.CreateFreezeRequestParams) error
	GetFreezeRequestByIDForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.FreezeRequests, error)
	ListFreezeRequestsByMemberYear(ctx context.Context, db query.DBTX, memberID uuid.UUID, year int32) ([]query.FreezeRequests, error)
	ListDueFreezeRequests(ctx context.Context, db query.DBTX, today pgtype.Date) ([]query.FreezeRequests, error)
	UpdateFreezeRequest(ctx context.Context, db query.DBTX, arg query.UpdateFreezeRequestParams) (int64, error)
}

type FreezeRequestRepository struct {
	queries FreezeRequestQueries
	loc     *time.Location
}

func NewFreezeRequestRepository(queries FreezeRequestQueries, loc *time.Location) *FreezeRequestRepository {
	return &FreezeRequestRepository{
		queries: queries,
		loc:     loc,
	}
}

// Create surfaces a second outstanding request for the same member as
// KindDuplicateKey via the partial unique index.
func (r *FreezeRequestRepository) Create(ctx context.Context, tx query.DBTX, req *freeze.Request) error {
	if err := r.queries.CreateFreezeRequest(ctx, tx, converter.FreezeRequestToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create freeze request", err)
	}
	return nil
}

func (r *FreezeRequestRepository) FindByIDForUpdate(ctx context.Context, tx query.DBTX, id uuid.UUID) (*freeze.Request, error) {
	row, err := r.queries.GetFreezeRequestByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock freeze request", err)
	}
	req, err := converter.FreezeRequestFromRow(row, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt freeze request row", err, infra.KindDBFailure)
	}
	return req, nil
}

func (r *FreezeRequestRepository) ListByMemberYear(ctx context.Context, tx query.DBTX, memberID uuid.UUID, year int) ([]*freeze.Request, error) {
	rows, err := r.queries.ListFreezeRequestsByMemberYear(ctx, tx, memberID, int32(year))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list freeze requests", err)
	}
	return r.toDomainList(rows)
}

func (r *FreezeRequestRepository) ListDue(ctx context.Context, tx query.DBTX, today time.Time) ([]*freeze.Request, error) {
	rows, err := r.queries.ListDueFreezeRequests(ctx, tx, pgconv.DateToPgtype(today))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due freeze requests", err)
	}
	return r.toDomainList(rows)
}

func (r *FreezeRequestRepository) Update(ctx context.Context, tx query.DBTX, req *freeze.Request) error {
	affected, err := r.queries.UpdateFreezeRequest(ctx, tx, converter.FreezeRequestToUpdateParams(req))
	if err != nil {
		return infra.WrapRepoErr("failed to update freeze request", err)
	}
	if affected == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "freeze request not found")
	}
	return nil
}

func (r *FreezeRequestRepository) toDomainList(rows []query.FreezeRequests) ([]*freeze.Request, error) {
	reqs, err := converter.FreezeRequestsFromRows(rows, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt freeze request row", err, infra.KindDBFailure)
	}
	return reqs, nil
}
