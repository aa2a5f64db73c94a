//go:build unit

// Package fake provides an in-memory unit of work. Each Within call works on
// a copy of the store and commits it only when the callback succeeds.
package fake

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"clubhouse/internal/domain/credit"
	"clubhouse/internal/domain/freeze"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/domain/waitlist"
	"clubhouse/internal/infra"
	"clubhouse/internal/infra/query"
	"clubhouse/internal/usecase/shared"

	"github.com/google/uuid"
)

type grantKey struct {
	memberID   uuid.UUID
	kind       credit.Kind
	cycleStart string
}

type state struct {
	members  map[uuid.UUID]member.Member
	grants   map[grantKey]credit.Grant
	freezes  map[uuid.UUID]freeze.Request
	entries  map[uuid.UUID]waitlist.Entry
	sessions map[uuid.UUID]waitlist.Session
	events   map[string]string
}

func (s *state) clone() *state {
	return &state{
		members:  maps.Clone(s.members),
		grants:   maps.Clone(s.grants),
		freezes:  maps.Clone(s.freezes),
		entries:  maps.Clone(s.entries),
		sessions: maps.Clone(s.sessions),
		events:   maps.Clone(s.events),
	}
}

// Store is the committed state plus failure hooks for tests.
type Store struct {
	mu      sync.Mutex
	current *state

	// ListActiveErr makes ListActive fail.
	ListActiveErr error
	// GrantInsertErr makes grant inserts fail for the given members.
	GrantInsertErr map[uuid.UUID]error
	// BeforeMarkNotified runs inside MarkNotified before the status check and
	// may mutate the entry to simulate a concurrent writer.
	BeforeMarkNotified func(entries map[uuid.UUID]waitlist.Entry, id uuid.UUID)
	// Commits counts successful write transactions.
	Commits int
}

func NewStore() *Store {
	return &Store{
		current: &state{
			members:  map[uuid.UUID]member.Member{},
			grants:   map[grantKey]credit.Grant{},
			freezes:  map[uuid.UUID]freeze.Request{},
			entries:  map[uuid.UUID]waitlist.Entry{},
			sessions: map[uuid.UUID]waitlist.Session{},
			events:   map[string]string{},
		},
		GrantInsertErr: map[uuid.UUID]error{},
	}
}

func (s *Store) AddMember(m *member.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.members[m.ID()] = *m
}

func (s *Store) AddFreezeRequest(r *freeze.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.freezes[r.ID()] = *r
}

func (s *Store) AddEntry(e *waitlist.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.entries[e.ID()] = *e
}

func (s *Store) AddSession(sess waitlist.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.sessions[sess.ID] = sess
}

func (s *Store) AddGrant(g *credit.Grant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.grants[keyOf(g)] = *g
}

func (s *Store) Member(id uuid.UUID) *member.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.current.members[id]
	if !ok {
		return nil
	}
	return &m
}

func (s *Store) FreezeRequest(id uuid.UUID) *freeze.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.current.freezes[id]
	if !ok {
		return nil
	}
	return &r
}

func (s *Store) FreezeRequests() []*freeze.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*freeze.Request, 0, len(s.current.freezes))
	for _, r := range s.current.freezes {
		out = append(out, &r)
	}
	return out
}

func (s *Store) Entry(id uuid.UUID) *waitlist.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.current.entries[id]
	if !ok {
		return nil
	}
	return &e
}

// Grants returns a member's grants ordered by cycle start then kind.
func (s *Store) Grants(memberID uuid.UUID) []*credit.Grant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*credit.Grant{}
	for k, g := range s.current.grants {
		if k.memberID == memberID {
			out = append(out, &g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Cycle().Start().Equal(out[j].Cycle().Start()) {
			return out[i].Cycle().Start().Before(out[j].Cycle().Start())
		}
		return out[i].Kind() < out[j].Kind()
	})
	return out
}

func (s *Store) EventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.current.events)
}

type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	working := u.store.current.clone()
	if err := fn(ctx, &tx{store: u.store, st: working}); err != nil {
		return err
	}
	u.store.current = working
	u.store.Commits++
	return nil
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	return fn(ctx, &tx{store: u.store, st: u.store.current.clone()})
}

type tx struct {
	store *Store
	st    *state
}

func (t *tx) DB() query.DBTX                                 { return nil }
func (t *tx) Members() shared.MemberRepository               { return &memberRepo{t} }
func (t *tx) CreditGrants() shared.CreditGrantRepository     { return &grantRepo{t} }
func (t *tx) FreezeRequests() shared.FreezeRequestRepository { return &freezeRepo{t} }
func (t *tx) Waitlist() shared.WaitlistRepository            { return &waitlistRepo{t} }
func (t *tx) Sessions() shared.SessionRepository             { return &sessionRepo{t} }
func (t *tx) WebhookEvents() shared.WebhookEventRepository   { return &eventRepo{t} }

func notFound(what string) error {
	return infra.NewRepositoryError(infra.KindNotFound, what+" not found")
}

type memberRepo struct{ t *tx }

func (r *memberRepo) FindByID(_ context.Context, _ query.DBTX, id uuid.UUID) (*member.Member, error) {
	m, ok := r.t.st.members[id]
	if !ok {
		return nil, notFound("member")
	}
	return &m, nil
}

func (r *memberRepo) FindByIDForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (*member.Member, error) {
	return r.FindByID(ctx, db, id)
}

func (r *memberRepo) FindByUserID(_ context.Context, _ query.DBTX, userID uuid.UUID) (*member.Member, error) {
	for _, m := range r.t.st.members {
		if m.UserID() == userID {
			return &m, nil
		}
	}
	return nil, notFound("member")
}

func (r *memberRepo) FindBySubscriptionRef(_ context.Context, _ query.DBTX, ref string) (*member.Member, error) {
	for _, m := range r.t.st.members {
		if m.SubscriptionRef() != nil && *m.SubscriptionRef() == ref {
			return &m, nil
		}
	}
	return nil, notFound("member")
}

func (r *memberRepo) ListActive(_ context.Context, _ query.DBTX) ([]*member.Member, error) {
	if r.t.store.ListActiveErr != nil {
		return nil, r.t.store.ListActiveErr
	}
	out := []*member.Member{}
	for _, m := range r.t.st.members {
		if m.IsActive() && m.StartDate() != nil {
			out = append(out, &m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID().String() < out[j].ID().String() })
	return out, nil
}

func (r *memberRepo) Update(_ context.Context, _ query.DBTX, m *member.Member) error {
	if _, ok := r.t.st.members[m.ID()]; !ok {
		return notFound("member")
	}
	r.t.st.members[m.ID()] = *m
	return nil
}

type grantRepo struct{ t *tx }

func keyOf(g *credit.Grant) grantKey {
	return grantKey{
		memberID:   g.MemberID(),
		kind:       g.Kind(),
		cycleStart: g.Cycle().Start().Format(time.DateOnly),
	}
}

func (r *grantRepo) InsertIfAbsent(_ context.Context, _ query.DBTX, g *credit.Grant) (bool, error) {
	if err := r.t.store.GrantInsertErr[g.MemberID()]; err != nil {
		return false, err
	}
	k := keyOf(g)
	if _, exists := r.t.st.grants[k]; exists {
		return false, nil
	}
	r.t.st.grants[k] = *g
	return true, nil
}

func (r *grantRepo) ListByMemberCycle(_ context.Context, _ query.DBTX, memberID uuid.UUID, cycleStart time.Time) ([]*credit.Grant, error) {
	out := []*credit.Grant{}
	for k, g := range r.t.st.grants {
		if k.memberID == memberID && k.cycleStart == cycleStart.Format(time.DateOnly) {
			out = append(out, &g)
		}
	}
	return out, nil
}

type freezeRepo struct{ t *tx }

func (r *freezeRepo) Create(_ context.Context, _ query.DBTX, req *freeze.Request) error {
	for _, existing := range r.t.st.freezes {
		if existing.MemberID() == req.MemberID() && existing.Status().IsOutstanding() {
			return infra.NewRepositoryError(infra.KindDuplicateKey, "outstanding freeze request exists")
		}
	}
	r.t.st.freezes[req.ID()] = *req
	return nil
}

func (r *freezeRepo) FindByIDForUpdate(_ context.Context, _ query.DBTX, id uuid.UUID) (*freeze.Request, error) {
	req, ok := r.t.st.freezes[id]
	if !ok {
		return nil, notFound("freeze request")
	}
	return &req, nil
}

func (r *freezeRepo) ListByMemberYear(_ context.Context, _ query.DBTX, memberID uuid.UUID, year int) ([]*freeze.Request, error) {
	out := []*freeze.Request{}
	for _, req := range r.t.st.freezes {
		if req.MemberID() == memberID && req.FreezeYear() == year {
			out = append(out, &req)
		}
	}
	return out, nil
}

func (r *freezeRepo) ListDue(_ context.Context, _ query.DBTX, today time.Time) ([]*freeze.Request, error) {
	out := []*freeze.Request{}
	for _, req := range r.t.st.freezes {
		if req.IsDue(today) {
			out = append(out, &req)
		}
	}
	return out, nil
}

func (r *freezeRepo) Update(_ context.Context, _ query.DBTX, req *freeze.Request) error {
	if _, ok := r.t.st.freezes[req.ID()]; !ok {
		return notFound("freeze request")
	}
	r.t.st.freezes[req.ID()] = *req
	return nil
}

type waitlistRepo struct{ t *tx }

func (r *waitlistRepo) NextWaiting(_ context.Context, _ query.DBTX, sessionID uuid.UUID) (*waitlist.Entry, error) {
	var next *waitlist.Entry
	for _, e := range r.t.st.entries {
		if e.SessionID() != sessionID || e.Status() != waitlist.StatusWaiting {
			continue
		}
		if next == nil || e.Position() < next.Position() {
			next = &e
		}
	}
	return next, nil
}

func (r *waitlistRepo) CountLiveHolds(_ context.Context, _ query.DBTX, sessionID uuid.UUID, now time.Time) (int, error) {
	n := 0
	for _, e := range r.t.st.entries {
		if e.SessionID() == sessionID && e.HoldsSeat(now) {
			n++
		}
	}
	return n, nil
}

func (r *waitlistRepo) MarkNotified(_ context.Context, _ query.DBTX, e *waitlist.Entry) (bool, error) {
	if hook := r.t.store.BeforeMarkNotified; hook != nil {
		hook(r.t.st.entries, e.ID())
	}
	stored, ok := r.t.st.entries[e.ID()]
	if !ok || stored.Status() != waitlist.StatusWaiting {
		return false, nil
	}
	r.t.st.entries[e.ID()] = *e
	return true, nil
}

func (r *waitlistRepo) ListLapsed(_ context.Context, _ query.DBTX, now time.Time, limit int) ([]*waitlist.Entry, error) {
	out := []*waitlist.Entry{}
	for _, e := range r.t.st.entries {
		if e.ClaimLapsed(now) {
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClaimExpiresAt().Before(*out[j].ClaimExpiresAt()) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *waitlistRepo) MarkExpired(_ context.Context, _ query.DBTX, e *waitlist.Entry) (bool, error) {
	stored, ok := r.t.st.entries[e.ID()]
	if !ok || stored.Status() != waitlist.StatusNotified {
		return false, nil
	}
	r.t.st.entries[e.ID()] = *e
	return true, nil
}

type sessionRepo struct{ t *tx }

func (r *sessionRepo) LockByID(_ context.Context, _ query.DBTX, id uuid.UUID) (*waitlist.Session, error) {
	s, ok := r.t.st.sessions[id]
	if !ok {
		return nil, notFound("class session")
	}
	return &s, nil
}

type eventRepo struct{ t *tx }

func (r *eventRepo) Record(_ context.Context, _ query.DBTX, eventID, eventType string) (bool, error) {
	if _, seen := r.t.st.events[eventID]; seen {
		return false, nil
	}
	r.t.st.events[eventID] = eventType
	return true, nil
}
