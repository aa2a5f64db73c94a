package repository

import (
	"context"
	"time"

	"clubhouse/internal/domain/waitlist"
	"clubhouse/internal/infra"
	"clubhouse/internal/infra/query"
	"clubhouse/internal/infra/repository/converter"
	"clubhouse/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type WaitlistQueries interface {
	GetNextWaitingEntry(ctx context.Context, db query.DBTX, sessionID uuid.UUID) (query.ClassWaitlist, error)
	CountLiveClaimHolds(ctx context.Context, db query.DBTX, sessionID uuid.UUID, now pgtype.Timestamptz) (int64, error)
	MarkWaitlistEntryNotified(ctx context.Context, db query.DBTX, arg query.MarkWaitlistEntryNotifiedParams) (int64, error)
	ListLapsedClaims(ctx context.Context, db query.DBTX, now pgtype.Timestamptz, limit int32) ([]query.ClassWaitlist, error)
	MarkWaitlistEntryExpired(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type WaitlistRepository struct {
	queries WaitlistQueries
}

func NewWaitlistRepository(queries WaitlistQueries) *WaitlistRepository {
	return &WaitlistRepository{
		queries: queries,
	}
}

func (r *WaitlistRepository) NextWaiting(ctx context.Context, tx query.DBTX, sessionID uuid.UUID) (*waitlist.Entry, error) {
	row, err := r.queries.GetNextWaitingEntry(ctx, tx, sessionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find next waitlist entry", err)
	}
	entry, err := converter.WaitlistEntryFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt waitlist row", err, infra.KindDBFailure)
	}
	return entry, nil
}

func (r *WaitlistRepository) CountLiveHolds(ctx context.Context, tx query.DBTX, sessionID uuid.UUID, now time.Time) (int, error) {
	n, err := r.queries.CountLiveClaimHolds(ctx, tx, sessionID, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count claim holds", err)
	}
	return int(n), nil
}

func (r *WaitlistRepository) MarkNotified(ctx context.Context, tx query.DBTX, e *waitlist.Entry) (bool, error) {
	affected, err := r.queries.MarkWaitlistEntryNotified(ctx, tx, converter.WaitlistEntryToNotifiedParams(e))
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark waitlist entry notified", err)
	}
	return affected > 0, nil
}

func (r *WaitlistRepository) ListLapsed(ctx context.Context, tx query.DBTX, now time.Time, limit int) ([]*waitlist.Entry, error) {
	rows, err := r.queries.ListLapsedClaims(ctx, tx, pgconv.TimeToPgtype(now), int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lapsed claims", err)
	}

	entries := make([]*waitlist.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := converter.WaitlistEntryFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt waitlist row", err, infra.KindDBFailure)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *WaitlistRepository) MarkExpired(ctx context.Context, tx query.DBTX, e *waitlist.Entry) (bool, error) {
	affected, err := r.queries.MarkWaitlistEntryExpired(ctx, tx, e.ID())
	if err != nil {
		return false, infra.WrapRepoErr("failed to expire waitlist entry", err)
	}
	return affected > 0, nil
}
