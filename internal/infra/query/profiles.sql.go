package query

import (
	"context"

	"github.com/google/uuid"
)

const getProfileEmail = `SELECT email FROM profiles WHERE id = $1`

func (q *Queries) GetProfileEmail(ctx context.Context, db DBTX, id uuid.UUID) (string, error) {
	var email string
	err := db.QueryRow(ctx, getProfileEmail, id).Scan(&email)
	return email, err
}
