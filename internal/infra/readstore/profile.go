package readstore

import (
	"context"

	"clubhouse/internal/domain/user"
	"clubhouse/internal/infra"
	"clubhouse/internal/infra/query"

	"github.com/google/uuid"
)

type ProfileReadQueries interface {
	GetProfileEmail(ctx context.Context, db query.DBTX, id uuid.UUID) (string, error)
}

// ProfileReadStore resolves contact addresses from the profiles table.
type ProfileReadStore struct {
	queries ProfileReadQueries
	db      query.DBTX
}

func NewProfileReadStore(queries ProfileReadQueries, db query.DBTX) *ProfileReadStore {
	return &ProfileReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileReadStore) EmailForUser(ctx context.Context, userID uuid.UUID) (user.Email, error) {
	raw, err := r.queries.GetProfileEmail(ctx, r.db, userID)
	if err != nil {
		return user.Email{}, infra.WrapRepoErr("failed to find profile email", err)
	}
	email, err := user.NewEmail(raw)
	if err != nil {
		return user.Email{}, infra.WrapRepoErr("profile email is not deliverable", err, infra.KindNotFound)
	}
	return email, nil
}
