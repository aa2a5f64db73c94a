package repository

import (
	"context"

	"clubhouse/internal/domain/waitlist"
	"clubhouse/internal/infra"
	"clubhouse/internal/infra/query"
	"clubhouse/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type SessionQueries interface {
	GetClassSessionForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ClassSessions, error)
}

type SessionRepository struct {
	queries SessionQueries
}

func NewSessionRepository(queries SessionQueries) *SessionRepository {
	return &SessionRepository{queries: queries}
}

func (r *SessionRepository) LockByID(ctx context.Context, tx query.DBTX, id uuid.UUID) (*waitlist.Session, error) {
	row, err := r.queries.GetClassSessionForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock class session", err)
	}
	return converter.SessionFromRow(row), nil
}
