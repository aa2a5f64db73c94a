package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertCreditGrant = `INSERT INTO credit_grants (
    id, member_id, credit_type, credits_total, credits_remaining, cycle_start, cycle_end, expires_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT ON CONSTRAINT credit_grants_member_type_cycle_key DO NOTHING`

type InsertCreditGrantParams struct {
	ID               uuid.UUID
	MemberID         uuid.UUID
	CreditType       string
	CreditsTotal     int32
	CreditsRemaining int32
	CycleStart       pgtype.Date
	CycleEnd         pgtype.Date
	ExpiresAt        pgtype.Timestamptz
}

// InsertCreditGrant returns 0 when a grant for the same member, type and
// cycle start already exists.
func (q *Queries) InsertCreditGrant(ctx context.Context, db DBTX, arg InsertCreditGrantParams) (int64, error) {
	tag, err := db.Exec(ctx, insertCreditGrant,
		arg.ID,
		arg.MemberID,
		arg.CreditType,
		arg.CreditsTotal,
		arg.CreditsRemaining,
		arg.CycleStart,
		arg.CycleEnd,
		arg.ExpiresAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listCreditGrantsByMemberCycle = `SELECT id, member_id, credit_type, credits_total, credits_remaining,
       cycle_start, cycle_end, expires_at, created_at
FROM credit_grants
WHERE member_id = $1 AND cycle_start = $2
ORDER BY credit_type`

func (q *Queries) ListCreditGrantsByMemberCycle(ctx context.Context, db DBTX, memberID uuid.UUID, cycleStart pgtype.Date) ([]CreditGrants, error) {
	rows, err := db.Query(ctx, listCreditGrantsByMemberCycle, memberID, cycleStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CreditGrants
	for rows.Next() {
		var g CreditGrants
		if err := rows.Scan(
			&g.ID,
			&g.MemberID,
			&g.CreditType,
			&g.CreditsTotal,
			&g.CreditsRemaining,
			&g.CycleStart,
			&g.CycleEnd,
			&g.ExpiresAt,
			&g.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}
