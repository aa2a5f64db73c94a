package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const freezeRequestColumns = `id, member_id, requested_start_date, requested_end_date, duration_months, status,
       freeze_year, freeze_fee_total_cents, fee_paid, actual_start_date, actual_end_date,
       rejection_reason, reviewed_by, reviewed_at, created_at, updated_at`

func scanFreezeRequest(row pgx.Row) (FreezeRequests, error) {
	var f FreezeRequests
	err := row.Scan(
		&f.ID,
		&f.MemberID,
		&f.RequestedStartDate,
		&f.RequestedEndDate,
		&f.DurationMonths,
		&f.Status,
		&f.FreezeYear,
		&f.FreezeFeeTotalCents,
		&f.FeePaid,
		&f.ActualStartDate,
		&f.ActualEndDate,
		&f.RejectionReason,
		&f.ReviewedBy,
		&f.ReviewedAt,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	return f, err
}

func collectFreezeRequests(rows pgx.Rows) ([]FreezeRequests, error) {
	defer rows.Close()
	var items []FreezeRequests
	for rows.Next() {
		f, err := scanFreezeRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

const createFreezeRequest = `INSERT INTO freeze_requests (
    id, member_id, requested_start_date, requested_end_date, duration_months, status,
    freeze_year, freeze_fee_total_cents, fee_paid, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`

type CreateFreezeRequestParams struct {
	ID                  uuid.UUID
	MemberID            uuid.UUID
	RequestedStartDate  pgtype.Date
	RequestedEndDate    pgtype.Date
	DurationMonths      int32
	Status              string
	FreezeYear          int32
	FreezeFeeTotalCents int64
	FeePaid             bool
	CreatedAt           pgtype.Timestamptz
}

func (q *Queries) CreateFreezeRequest(ctx context.Context, db DBTX, arg CreateFreezeRequestParams) error {
	_, err := db.Exec(ctx, createFreezeRequest,
		arg.ID,
		arg.MemberID,
		arg.RequestedStartDate,
		arg.RequestedEndDate,
		arg.DurationMonths,
		arg.Status,
		arg.FreezeYear,
		arg.FreezeFeeTotalCents,
		arg.FeePaid,
		arg.CreatedAt,
	)
	return err
}

const getFreezeRequestByIDForUpdate = `SELECT ` + freezeRequestColumns + ` FROM freeze_requests WHERE id = $1 FOR UPDATE`

func (q *Queries) GetFreezeRequestByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (FreezeRequests, error) {
	return scanFreezeRequest(db.QueryRow(ctx, getFreezeRequestByIDForUpdate, id))
}

const listFreezeRequestsByMemberYear = `SELECT ` + freezeRequestColumns + `
FROM freeze_requests
WHERE member_id = $1 AND freeze_year = $2
ORDER BY created_at`

func (q *Queries) ListFreezeRequestsByMemberYear(ctx context.Context, db DBTX, memberID uuid.UUID, year int32) ([]FreezeRequests, error) {
	rows, err := db.Query(ctx, listFreezeRequestsByMemberYear, memberID, year)
	if err != nil {
		return nil, err
	}
	return collectFreezeRequests(rows)
}

const listDueFreezeRequests = `SELECT ` + freezeRequestColumns + `
FROM freeze_requests
WHERE status = 'active' AND actual_end_date <= $1
ORDER BY actual_end_date
FOR UPDATE SKIP LOCKED`

func (q *Queries) ListDueFreezeRequests(ctx context.Context, db DBTX, today pgtype.Date) ([]FreezeRequests, error) {
	rows, err := db.Query(ctx, listDueFreezeRequests, today)
	if err != nil {
		return nil, err
	}
	return collectFreezeRequests(rows)
}

const updateFreezeRequest = `UPDATE freeze_requests
SET status            = $2,
    fee_paid          = $3,
    actual_start_date = $4,
    actual_end_date   = $5,
    rejection_reason  = $6,
    reviewed_by       = $7,
    reviewed_at       = $8,
    updated_at        = $9
WHERE id = $1`

type UpdateFreezeRequestParams struct {
	ID              uuid.UUID
	Status          string
	FeePaid         bool
	ActualStartDate pgtype.Date
	ActualEndDate   pgtype.Date
	RejectionReason pgtype.Text
	ReviewedBy      pgtype.UUID
	ReviewedAt      pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) UpdateFreezeRequest(ctx context.Context, db DBTX, arg UpdateFreezeRequestParams) (int64, error) {
	tag, err := db.Exec(ctx, updateFreezeRequest,
		arg.ID,
		arg.Status,
		arg.FeePaid,
		arg.ActualStartDate,
		arg.ActualEndDate,
		arg.RejectionReason,
		arg.ReviewedBy,
		arg.ReviewedAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
