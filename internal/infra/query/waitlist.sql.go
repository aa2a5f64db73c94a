package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const getClassSessionForUpdate = `SELECT id, class_name, starts_at, current_enrollment, max_capacity
FROM class_sessions
WHERE id = $1
FOR UPDATE`

func (q *Queries) GetClassSessionForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (ClassSessions, error) {
	var s ClassSessions
	err := db.QueryRow(ctx, getClassSessionForUpdate, id).Scan(
		&s.ID,
		&s.ClassName,
		&s.StartsAt,
		&s.CurrentEnrollment,
		&s.MaxCapacity,
	)
	return s, err
}

const waitlistColumns = `id, session_id, user_id, position, status, notified_at, claim_expires_at, created_at`

func scanWaitlistEntry(row pgx.Row) (ClassWaitlist, error) {
	var w ClassWaitlist
	err := row.Scan(
		&w.ID,
		&w.SessionID,
		&w.UserID,
		&w.Position,
		&w.Status,
		&w.NotifiedAt,
		&w.ClaimExpiresAt,
		&w.CreatedAt,
	)
	return w, err
}

const countLiveClaimHolds = `SELECT count(*)
FROM class_waitlist
WHERE session_id = $1 AND status = 'notified' AND claim_expires_at > $2`

func (q *Queries) CountLiveClaimHolds(ctx context.Context, db DBTX, sessionID uuid.UUID, now pgtype.Timestamptz) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countLiveClaimHolds, sessionID, now).Scan(&n)
	return n, err
}

const getNextWaitingEntry = `SELECT ` + waitlistColumns + `
FROM class_waitlist
WHERE session_id = $1 AND status = 'waiting'
ORDER BY position
LIMIT 1`

func (q *Queries) GetNextWaitingEntry(ctx context.Context, db DBTX, sessionID uuid.UUID) (ClassWaitlist, error) {
	return scanWaitlistEntry(db.QueryRow(ctx, getNextWaitingEntry, sessionID))
}

const markWaitlistEntryNotified = `UPDATE class_waitlist
SET status = 'notified', notified_at = $2, claim_expires_at = $3
WHERE id = $1 AND status = 'waiting'`

type MarkWaitlistEntryNotifiedParams struct {
	ID             uuid.UUID
	NotifiedAt     pgtype.Timestamptz
	ClaimExpiresAt pgtype.Timestamptz
}

// MarkWaitlistEntryNotified returns 0 when another caller already moved the
// entry out of waiting.
func (q *Queries) MarkWaitlistEntryNotified(ctx context.Context, db DBTX, arg MarkWaitlistEntryNotifiedParams) (int64, error) {
	tag, err := db.Exec(ctx, markWaitlistEntryNotified, arg.ID, arg.NotifiedAt, arg.ClaimExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listLapsedClaims = `SELECT ` + waitlistColumns + `
FROM class_waitlist
WHERE status = 'notified' AND claim_expires_at <= $1
ORDER BY claim_expires_at
LIMIT $2
FOR UPDATE SKIP LOCKED`

func (q *Queries) ListLapsedClaims(ctx context.Context, db DBTX, now pgtype.Timestamptz, limit int32) ([]ClassWaitlist, error) {
	rows, err := db.Query(ctx, listLapsedClaims, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ClassWaitlist
	for rows.Next() {
		w, err := scanWaitlistEntry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

const markWaitlistEntryExpired = `UPDATE class_waitlist
SET status = 'expired'
WHERE id = $1 AND status = 'notified'`

func (q *Queries) MarkWaitlistEntryExpired(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, markWaitlistEntryExpired, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
