package shared

import (
	"context"
	"time"

	"clubhouse/internal/domain/credit"
	"clubhouse/internal/domain/freeze"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/domain/waitlist"
	"clubhouse/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Members() MemberRepository
	CreditGrants() CreditGrantRepository
	FreezeRequests() FreezeRequestRepository
	Waitlist() WaitlistRepository
	Sessions() SessionRepository
	WebhookEvents() WebhookEventRepository
	DB() query.DBTX
}

type MemberRepository interface {
	FindByID(ctx context.Context, tx query.DBTX, id uuid.UUID) (*member.Member, error)
	FindByIDForUpdate(ctx context.Context, tx query.DBTX, id uuid.UUID) (*member.Member, error)
	FindByUserID(ctx context.Context, tx query.DBTX, userID uuid.UUID) (*member.Member, error)
	FindBySubscriptionRef(ctx context.Context, tx query.DBTX, ref string) (*member.Member, error)
	ListActive(ctx context.Context, tx query.DBTX) ([]*member.Member, error)
	Update(ctx context.Context, tx query.DBTX, m *member.Member) error
}

type CreditGrantRepository interface {
	// InsertIfAbsent reports false when the grant already exists for its cycle.
	InsertIfAbsent(ctx context.Context, tx query.DBTX, g *credit.Grant) (bool, error)
	ListByMemberCycle(ctx context.Context, tx query.DBTX, memberID uuid.UUID, cycleStart time.Time) ([]*credit.Grant, error)
}

type FreezeRequestRepository interface {
	Create(ctx context.Context, tx query.DBTX, r *freeze.Request) error
	FindByIDForUpdate(ctx context.Context, tx query.DBTX, id uuid.UUID) (*freeze.Request, error)
	ListByMemberYear(ctx context.Context, tx query.DBTX, memberID uuid.UUID, year int) ([]*freeze.Request, error)
	ListDue(ctx context.Context, tx query.DBTX, today time.Time) ([]*freeze.Request, error)
	Update(ctx context.Context, tx query.DBTX, r *freeze.Request) error
}

type WaitlistRepository interface {
	// NextWaiting returns nil when nobody is waiting for the session.
	NextWaiting(ctx context.Context, tx query.DBTX, sessionID uuid.UUID) (*waitlist.Entry, error)
	CountLiveHolds(ctx context.Context, tx query.DBTX, sessionID uuid.UUID, now time.Time) (int, error)
	// MarkNotified reports false when the entry was no longer waiting.
	MarkNotified(ctx context.Context, tx query.DBTX, e *waitlist.Entry) (bool, error)
	ListLapsed(ctx context.Context, tx query.DBTX, now time.Time, limit int) ([]*waitlist.Entry, error)
	MarkExpired(ctx context.Context, tx query.DBTX, e *waitlist.Entry) (bool, error)
}

type SessionRepository interface {
	// LockByID reads the session and holds its row lock until the transaction ends.
	LockByID(ctx context.Context, tx query.DBTX, id uuid.UUID) (*waitlist.Session, error)
}

type WebhookEventRepository interface {
	// Record reports false when the event id was already processed.
	Record(ctx context.Context, tx query.DBTX, eventID, eventType string) (bool, error)
}
