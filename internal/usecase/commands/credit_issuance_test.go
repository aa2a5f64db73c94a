//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clubhouse/internal/domain/credit"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/pkg/clock"
	"clubhouse/internal/pkg/errs"
	"clubhouse/internal/usecase/commands"
	"clubhouse/tests/common/builder"
	"clubhouse/tests/common/fake"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreditCommands(store *fake.Store, now time.Time) commands.CreditCommands {
	return commands.NewCreditCommands(fake.NewUnitOfWork(store), clock.NewMockClock(now), testClubConfig(), discardLogger())
}

type grantSummary struct {
	Kind       credit.Kind
	Total      int
	CycleStart string
	CycleEnd   string
	ExpiresAt  time.Time
}

func summarise(grants []*credit.Grant) []grantSummary {
	out := make([]grantSummary, 0, len(grants))
	for _, g := range grants {
		out = append(out, grantSummary{
			Kind:       g.Kind(),
			Total:      g.CreditsTotal(),
			CycleStart: g.Cycle().Start().Format(time.DateOnly),
			CycleEnd:   g.Cycle().End().Format(time.DateOnly),
			ExpiresAt:  g.Cycle().ExpiresAt(),
		})
	}
	return out
}

// =============================================================================
// RunDailyIssuance Tests
// =============================================================================

func TestRunDailyIssuance(t *testing.T) {
	ctx := context.Background()
	today := date(2025, time.March, 15)

	tests := []struct {
		name    string
		members []*member.Member
		want    commands.IssuanceResult
	}{
		{
			name:    "gold member on anniversary gets red light and dry cryo",
			members: []*member.Member{builder.NewMemberBuilder().BuildDomain()},
			want:    commands.IssuanceResult{Created: 2, MembersProcessed: 1},
		},
		{
			name:    "diamond member gets all three kinds",
			members: []*member.Member{builder.NewMemberBuilder().WithTier("Diamond").BuildDomain()},
			want:    commands.IssuanceResult{Created: 3, MembersProcessed: 1},
		},
		{
			name:    "silver member is counted as skipped",
			members: []*member.Member{builder.NewMemberBuilder().WithTier("Silver").BuildDomain()},
			want:    commands.IssuanceResult{Skipped: 1, MembersProcessed: 1},
		},
		{
			name:    "unknown tier falls back to silver",
			members: []*member.Member{builder.NewMemberBuilder().WithTier("obsidian").BuildDomain()},
			want:    commands.IssuanceResult{Skipped: 1, MembersProcessed: 1},
		},
		{
			name:    "member off anniversary is not processed",
			members: []*member.Member{builder.NewMemberBuilder().WithStartDate(date(2024, time.January, 20)).BuildDomain()},
			want:    commands.IssuanceResult{},
		},
		{
			name: "non-active members are not processed",
			members: []*member.Member{
				builder.NewMemberBuilder().WithStatus(member.StatusFrozen).BuildDomain(),
				builder.NewMemberBuilder().WithStatus(member.StatusPastDue).BuildDomain(),
			},
			want: commands.IssuanceResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := fake.NewStore()
			for _, m := range tt.members {
				store.AddMember(m)
			}

			got, err := newCreditCommands(store, today).RunDailyIssuance(ctx, today)

			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, *got); diff != "" {
				t.Errorf("IssuanceResult mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunDailyIssuance_SecondRunCreatesNothing(t *testing.T) {
	ctx := context.Background()
	today := date(2025, time.March, 15)
	store := fake.NewStore()
	m := builder.NewMemberBuilder().WithTier("Platinum").BuildDomain()
	store.AddMember(m)
	uc := newCreditCommands(store, today)

	first, err := uc.RunDailyIssuance(ctx, today)
	require.NoError(t, err)
	second, err := uc.RunDailyIssuance(ctx, today)
	require.NoError(t, err)

	assert.Equal(t, commands.IssuanceResult{Created: 2, MembersProcessed: 1}, *first)
	assert.Equal(t, commands.IssuanceResult{Skipped: 2, MembersProcessed: 1}, *second)
	assert.Len(t, store.Grants(m.ID()), 2)
}

func TestRunDailyIssuance_CycleWindow(t *testing.T) {
	ctx := context.Background()
	store := fake.NewStore()
	m := builder.NewMemberBuilder().WithStartDate(date(2024, time.January, 31)).BuildDomain()
	store.AddMember(m)
	today := date(2025, time.February, 28)

	_, err := newCreditCommands(store, today).RunDailyIssuance(ctx, today)
	require.NoError(t, err)

	expires := time.Date(2025, time.March, 30, 23, 59, 59, 999999000, time.UTC)
	want := []grantSummary{
		{Kind: credit.KindDryCryo, Total: 2, CycleStart: "2025-02-28", CycleEnd: "2025-03-30", ExpiresAt: expires},
		{Kind: credit.KindRedLight, Total: 4, CycleStart: "2025-02-28", CycleEnd: "2025-03-30", ExpiresAt: expires},
	}
	if diff := cmp.Diff(want, summarise(store.Grants(m.ID()))); diff != "" {
		t.Errorf("grants mismatch (-want +got):\n%s", diff)
	}
}

func TestRunDailyIssuance_MemberFailureDoesNotStopRun(t *testing.T) {
	ctx := context.Background()
	today := date(2025, time.March, 15)
	store := fake.NewStore()
	broken := builder.NewMemberBuilder().BuildDomain()
	healthy := builder.NewMemberBuilder().WithTier("Diamond").BuildDomain()
	store.AddMember(broken)
	store.AddMember(healthy)
	store.GrantInsertErr[broken.ID()] = errors.New("connection reset")

	got, err := newCreditCommands(store, today).RunDailyIssuance(ctx, today)

	require.NoError(t, err)
	assert.Equal(t, commands.IssuanceResult{Created: 3, Failed: 1, MembersProcessed: 2}, *got)
	assert.Empty(t, store.Grants(broken.ID()))
	assert.Len(t, store.Grants(healthy.ID()), 3)
}

func TestRunDailyIssuance_LoadFailureAbortsRun(t *testing.T) {
	store := fake.NewStore()
	store.ListActiveErr = errors.New("db down")
	today := date(2025, time.March, 15)

	got, err := newCreditCommands(store, today).RunDailyIssuance(context.Background(), today)

	assert.Nil(t, got)
	assert.True(t, errs.Is(err, commands.ErrIssuanceMembersLoad))
}

func TestRunDailyIssuance_ZeroDateUsesClock(t *testing.T) {
	store := fake.NewStore()
	store.AddMember(builder.NewMemberBuilder().BuildDomain())
	now := time.Date(2025, time.April, 15, 0, 5, 0, 0, time.UTC)

	got, err := newCreditCommands(store, now).RunDailyIssuance(context.Background(), time.Time{})

	require.NoError(t, err)
	assert.Equal(t, 1, got.MembersProcessed)
}

// =============================================================================
// ActivateMembership Tests
// =============================================================================

func TestActivateMembership(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, time.May, 10, 14, 30, 0, 0, time.UTC)

	t.Run("success: pending member becomes active with grace-period credits", func(t *testing.T) {
		store := fake.NewStore()
		m := builder.NewMemberBuilder().AsPendingActivation().BuildDomain()
		store.AddMember(m)

		res, err := newCreditCommands(store, at).ActivateMembership(ctx, m.ID(), at)

		require.NoError(t, err)
		assert.Equal(t, 2, res.GrantsCreated)
		assert.Equal(t, "2025-06-09", res.CycleEnd.Format(time.DateOnly))
		assert.Equal(t, time.Date(2025, time.June, 16, 23, 59, 59, 999999000, time.UTC), res.ExpiresAt)

		saved := store.Member(m.ID())
		assert.Equal(t, member.StatusActive, saved.Status())
		require.NotNil(t, saved.StartDate())
		assert.Equal(t, date(2025, time.May, 10), *saved.StartDate())
	})

	t.Run("success: anchor recorded at signup is kept", func(t *testing.T) {
		store := fake.NewStore()
		m := builder.NewMemberBuilder().AsPendingActivation().WithStartDate(date(2025, time.May, 3)).BuildDomain()
		store.AddMember(m)

		res, err := newCreditCommands(store, at).ActivateMembership(ctx, m.ID(), at)

		require.NoError(t, err)
		assert.Equal(t, "2025-06-02", res.CycleEnd.Format(time.DateOnly))
		assert.Equal(t, date(2025, time.May, 3), *store.Member(m.ID()).StartDate())
	})

	t.Run("error: already active", func(t *testing.T) {
		store := fake.NewStore()
		m := builder.NewMemberBuilder().BuildDomain()
		store.AddMember(m)

		_, err := newCreditCommands(store, at).ActivateMembership(ctx, m.ID(), at)

		assert.True(t, errs.Is(err, commands.ErrMembershipNotPending))
		assert.Empty(t, store.Grants(m.ID()))
	})

	t.Run("error: unknown member", func(t *testing.T) {
		_, err := newCreditCommands(fake.NewStore(), at).ActivateMembership(ctx, uuid.New(), at)

		assert.True(t, errs.Is(err, commands.ErrMemberNotFound))
	})
}
