//go:build unit

package freeze_test

import (
	"testing"
	"time"

	"clubhouse/internal/domain/freeze"
	"clubhouse/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func TestNewRequest(t *testing.T) {
	memberID := uuid.New()
	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		r, err := freeze.NewRequest(memberID, start, 2, 2000, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, memberID, r.MemberID())
		assert.Equal(t, freeze.StatusPending, r.Status())
		assert.Equal(t, start, r.RequestedStart())
		assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), r.RequestedEnd())
		assert.Equal(t, 2025, r.FreezeYear())
		assert.Equal(t, int64(4000), r.FeeTotalCents())
		assert.False(t, r.FeePaid())
		assert.Nil(t, r.ActualStart())
	})

	t.Run("freeze year follows creation date", func(t *testing.T) {
		decNow := time.Date(2025, time.December, 20, 9, 0, 0, 0, time.UTC)
		r, err := freeze.NewRequest(memberID, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), 1, 2000, decNow)
		require.NoError(t, err)
		assert.Equal(t, 2025, r.FreezeYear())
	})

	t.Run("start today allowed", func(t *testing.T) {
		_, err := freeze.NewRequest(memberID, now, 1, 2000, now)
		assert.NoError(t, err)
	})

	tests := []struct {
		name   string
		start  time.Time
		months int
		errIs  error
	}{
		{name: "zero months", start: start, months: 0, errIs: freeze.ErrInvalidDuration},
		{name: "three months", start: start, months: 3, errIs: freeze.ErrInvalidDuration},
		{name: "missing start", start: time.Time{}, months: 1, errIs: freeze.ErrMissingStartDate},
		{name: "start in past", start: now.AddDate(0, 0, -1), months: 1, errIs: freeze.ErrStartDateInPast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := freeze.NewRequest(memberID, tt.start, tt.months, 2000, now)
			require.Nil(t, r)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestRequestLifecycle(t *testing.T) {
	adminID := uuid.New()

	t.Run("approve with override start", func(t *testing.T) {
		r := builder.NewFreezeRequestBuilder().WithMonths(2).BuildDomain()
		override := time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)

		require.NoError(t, r.Approve(adminID, &override, now))

		assert.Equal(t, freeze.StatusApproved, r.Status())
		assert.Equal(t, override, *r.ActualStart())
		assert.Equal(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), *r.ActualEnd())
		assert.Equal(t, adminID, *r.ReviewedBy())
		assert.Equal(t, now, *r.ReviewedAt())
	})

	t.Run("approve defaults to requested start", func(t *testing.T) {
		r := builder.NewFreezeRequestBuilder().BuildDomain()

		require.NoError(t, r.Approve(adminID, nil, now))

		assert.Equal(t, r.RequestedStart(), *r.ActualStart())
		assert.Equal(t, r.RequestedEnd(), *r.ActualEnd())
	})

	t.Run("reject requires reason", func(t *testing.T) {
		r := builder.NewFreezeRequestBuilder().BuildDomain()

		assert.ErrorIs(t, r.Reject(adminID, "   ", now), freeze.ErrRejectionReasonRequired)
		assert.Equal(t, freeze.StatusPending, r.Status())

		require.NoError(t, r.Reject(adminID, "overlaps a booked event", now))
		assert.Equal(t, freeze.StatusRejected, r.Status())
		assert.Equal(t, "overlaps a booked event", *r.RejectionReason())
	})

	t.Run("activate then complete", func(t *testing.T) {
		r := builder.NewFreezeRequestBuilder().Scheduled(freeze.StatusApproved).BuildDomain()

		require.NoError(t, r.Activate(now))
		assert.Equal(t, freeze.StatusActive, r.Status())
		assert.True(t, r.FeePaid())

		assert.False(t, r.IsDue(r.ActualStart().AddDate(0, 0, 1)))
		assert.True(t, r.IsDue(*r.ActualEnd()))

		require.NoError(t, r.Complete(now))
		assert.Equal(t, freeze.StatusCompleted, r.Status())
	})

	t.Run("cancel outstanding only", func(t *testing.T) {
		pending := builder.NewFreezeRequestBuilder().BuildDomain()
		require.NoError(t, pending.Cancel(now))
		assert.Equal(t, freeze.StatusCancelled, pending.Status())

		active := builder.NewFreezeRequestBuilder().Scheduled(freeze.StatusActive).BuildDomain()
		assert.ErrorIs(t, active.Cancel(now), freeze.ErrInvalidTransition)
	})

	t.Run("invalid transitions", func(t *testing.T) {
		completed := builder.NewFreezeRequestBuilder().Scheduled(freeze.StatusCompleted).BuildDomain()

		assert.ErrorIs(t, completed.Approve(adminID, nil, now), freeze.ErrInvalidTransition)
		assert.ErrorIs(t, completed.Reject(adminID, "late", now), freeze.ErrInvalidTransition)
		assert.ErrorIs(t, completed.Activate(now), freeze.ErrInvalidTransition)
		assert.ErrorIs(t, completed.Complete(now), freeze.ErrInvalidTransition)

		pending := builder.NewFreezeRequestBuilder().BuildDomain()
		assert.ErrorIs(t, pending.Activate(now), freeze.ErrInvalidTransition)
	})
}
