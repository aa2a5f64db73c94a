//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateProfile(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO profiles (id, email, full_name) VALUES ($1, $2, $3)",
		userID, email, strings.Split(email, "@")[0])
	require.NoError(t, err)
	return userID
}

// MemberRow describes a members row; nil pointers are stored as NULL.
type MemberRow struct {
	UserID          uuid.UUID
	Tier            string
	Status          string
	StartDate       *time.Time
	AnnualFeePaidAt *time.Time
	SubscriptionRef *string
}

// ActiveGoldMember is a fully paid gold member who started on startDate.
func ActiveGoldMember(userID uuid.UUID, startDate time.Time, subscriptionRef string) MemberRow {
	paid := startDate
	return MemberRow{
		UserID:          userID,
		Tier:            "Gold Membership",
		Status:          "active",
		StartDate:       &startDate,
		AnnualFeePaidAt: &paid,
		SubscriptionRef: &subscriptionRef,
	}
}

func CreateMember(t *testing.T, db DBLike, row MemberRow) uuid.UUID {
	t.Helper()

	memberID := uuid.New()
	var start *string
	if row.StartDate != nil {
		s := row.StartDate.Format(time.DateOnly)
		start = &s
	}
	_, err := db.Exec(context.Background(), `
		INSERT INTO members (id, user_id, tier, status, membership_start_date, annual_fee_paid_at, subscription_ref)
		VALUES ($1, $2, $3, $4, $5::date, $6, $7)`,
		memberID, row.UserID, row.Tier, row.Status, start, row.AnnualFeePaidAt, row.SubscriptionRef)
	require.NoError(t, err)
	return memberID
}

func CreateClassSession(t *testing.T, db DBLike, className string, startsAt time.Time, enrolled, capacity int) uuid.UUID {
	t.Helper()

	sessionID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO class_sessions (id, class_name, starts_at, current_enrollment, max_capacity) VALUES ($1, $2, $3, $4, $5)",
		sessionID, className, startsAt, enrolled, capacity)
	require.NoError(t, err)
	return sessionID
}

func AddWaitlistEntry(t *testing.T, db DBLike, sessionID, userID uuid.UUID, position int) uuid.UUID {
	t.Helper()

	entryID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO class_waitlist (id, session_id, user_id, position, status) VALUES ($1, $2, $3, $4, 'waiting')",
		entryID, sessionID, userID, position)
	require.NoError(t, err)
	return entryID
}

func MemberStatus(t *testing.T, db DBLike, memberID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM members WHERE id = $1", memberID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountCreditGrants(t *testing.T, db DBLike, memberID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM credit_grants WHERE member_id = $1", memberID).Scan(&n)
	require.NoError(t, err)
	return n
}

func WaitlistStatus(t *testing.T, db DBLike, entryID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM class_waitlist WHERE id = $1", entryID).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
