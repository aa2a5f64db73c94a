package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const memberColumns = `id, user_id, tier, status, membership_start_date, annual_fee_paid_at,
       subscription_ref, founding_member, gender, created_at, updated_at`

func scanMember(row pgx.Row) (Members, error) {
	var m Members
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Tier,
		&m.Status,
		&m.MembershipStartDate,
		&m.AnnualFeePaidAt,
		&m.SubscriptionRef,
		&m.FoundingMember,
		&m.Gender,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

const getMemberByID = `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

func (q *Queries) GetMemberByID(ctx context.Context, db DBTX, id uuid.UUID) (Members, error) {
	return scanMember(db.QueryRow(ctx, getMemberByID, id))
}

const getMemberByIDForUpdate = getMemberByID + ` FOR UPDATE`

func (q *Queries) GetMemberByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Members, error) {
	return scanMember(db.QueryRow(ctx, getMemberByIDForUpdate, id))
}

const getMemberByUserID = `SELECT ` + memberColumns + ` FROM members WHERE user_id = $1`

func (q *Queries) GetMemberByUserID(ctx context.Context, db DBTX, userID uuid.UUID) (Members, error) {
	return scanMember(db.QueryRow(ctx, getMemberByUserID, userID))
}

const getMemberBySubscriptionRef = `SELECT ` + memberColumns + ` FROM members WHERE subscription_ref = $1 FOR UPDATE`

func (q *Queries) GetMemberBySubscriptionRef(ctx context.Context, db DBTX, ref string) (Members, error) {
	return scanMember(db.QueryRow(ctx, getMemberBySubscriptionRef, ref))
}

const listActiveMembers = `SELECT ` + memberColumns + `
FROM members
WHERE status = 'active' AND membership_start_date IS NOT NULL
ORDER BY id`

func (q *Queries) ListActiveMembers(ctx context.Context, db DBTX) ([]Members, error) {
	rows, err := db.Query(ctx, listActiveMembers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Members
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// annual_fee_paid_at is only ever filled, never cleared or moved.
const updateMember = `UPDATE members
SET status                = $2,
    membership_start_date = $3,
    annual_fee_paid_at    = COALESCE(annual_fee_paid_at, $4),
    subscription_ref      = $5,
    updated_at            = $6
WHERE id = $1`

type UpdateMemberParams struct {
	ID                  uuid.UUID
	Status              string
	MembershipStartDate pgtype.Date
	AnnualFeePaidAt     pgtype.Timestamptz
	SubscriptionRef     pgtype.Text
	UpdatedAt           pgtype.Timestamptz
}

func (q *Queries) UpdateMember(ctx context.Context, db DBTX, arg UpdateMemberParams) (int64, error) {
	tag, err := db.Exec(ctx, updateMember,
		arg.ID,
		arg.Status,
		arg.MembershipStartDate,
		arg.AnnualFeePaidAt,
		arg.SubscriptionRef,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
