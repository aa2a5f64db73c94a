//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"clubhouse/internal/domain/freeze"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/infra"
	"clubhouse/internal/infra/query"
	"clubhouse/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMemberReadQueries struct {
	mock.Mock
}

func (m *MockMemberReadQueries) GetMemberByUserID(ctx context.Context, db query.DBTX, userID uuid.UUID) (query.Members, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(query.Members), args.Error(1)
}

type MockFreezeReadQueries struct {
	mock.Mock
}

func (m *MockFreezeReadQueries) ListFreezeRequestsByMemberYear(ctx context.Context, db query.DBTX, memberID uuid.UUID, year int32) ([]query.FreezeRequests, error) {
	args := m.Called(ctx, db, memberID, year)
	rows, _ := args.Get(0).([]query.FreezeRequests)
	return rows, args.Error(1)
}

type MockProfileReadQueries struct {
	mock.Mock
}

func (m *MockProfileReadQueries) GetProfileEmail(ctx context.Context, db query.DBTX, id uuid.UUID) (string, error) {
	args := m.Called(ctx, db, id)
	return args.String(0), args.Error(1)
}

func date(y int, m time.Month, d int) pgtype.Date {
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func TestMemberReadStore_FindByUserID(t *testing.T) {
	userID := uuid.New()
	row := query.Members{
		ID:                  uuid.New(),
		UserID:              userID,
		Tier:                "Diamond Membership",
		Status:              "past_due",
		MembershipStartDate: date(2024, time.May, 31),
		SubscriptionRef:     pgtype.Text{String: "sub_42", Valid: true},
		CreatedAt:           pgconv.TimeToPgtype(time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)),
		UpdatedAt:           pgconv.TimeToPgtype(time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)),
	}

	tests := []struct {
		name       string
		mockReturn query.Members
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "success", mockReturn: row},
		{name: "member not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: errors.New("connection reset"), wantKind: infra.KindDBFailure},
		{
			name: "corrupt status",
			mockReturn: func() query.Members {
				r := row
				r.Status = "paused"
				return r
			}(),
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			q := new(MockMemberReadQueries)
			q.On("GetMemberByUserID", ctx, nil, userID).Return(tt.mockReturn, tt.mockError)

			got, err := NewMemberReadStore(q, nil, time.UTC).FindByUserID(ctx, userID)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "unexpected error kind: %v", err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, row.ID, got.ID())
				assert.Equal(t, member.TierDiamond, got.Tier())
				assert.Equal(t, member.StatusPastDue, got.Status())
				assert.True(t, got.HasSubscription())
			}
			q.AssertExpectations(t)
		})
	}
}

func TestFreezeReadStore_ListByMemberYear(t *testing.T) {
	memberID := uuid.New()
	rows := []query.FreezeRequests{
		{
			ID:                  uuid.New(),
			MemberID:            memberID,
			RequestedStartDate:  date(2025, time.March, 1),
			RequestedEndDate:    date(2025, time.April, 1),
			DurationMonths:      1,
			Status:              "completed",
			FreezeYear:          2025,
			FreezeFeeTotalCents: 2000,
			FeePaid:             true,
			ActualStartDate:     date(2025, time.March, 1),
			ActualEndDate:       date(2025, time.April, 1),
		},
		{
			ID:                  uuid.New(),
			MemberID:            memberID,
			RequestedStartDate:  date(2025, time.September, 1),
			RequestedEndDate:    date(2025, time.October, 1),
			DurationMonths:      1,
			Status:              "pending",
			FreezeYear:          2025,
			FreezeFeeTotalCents: 2000,
		},
	}

	t.Run("success", func(t *testing.T) {
		ctx := context.Background()
		q := new(MockFreezeReadQueries)
		q.On("ListFreezeRequestsByMemberYear", ctx, nil, memberID, int32(2025)).Return(rows, nil)

		got, err := NewFreezeReadStore(q, nil, time.UTC).ListByMemberYear(ctx, memberID, 2025)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, freeze.StatusCompleted, got[0].Status())
		assert.Equal(t, freeze.StatusPending, got[1].Status())
		q.AssertExpectations(t)
	})

	t.Run("no requests", func(t *testing.T) {
		ctx := context.Background()
		q := new(MockFreezeReadQueries)
		q.On("ListFreezeRequestsByMemberYear", ctx, nil, memberID, int32(2024)).Return([]query.FreezeRequests{}, nil)

		got, err := NewFreezeReadStore(q, nil, time.UTC).ListByMemberYear(ctx, memberID, 2024)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("database error", func(t *testing.T) {
		ctx := context.Background()
		q := new(MockFreezeReadQueries)
		q.On("ListFreezeRequestsByMemberYear", ctx, nil, memberID, int32(2025)).Return(nil, assert.AnError)

		got, err := NewFreezeReadStore(q, nil, time.UTC).ListByMemberYear(ctx, memberID, 2025)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, got)
	})
}

func TestProfileReadStore_EmailForUser(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		mockReturn string
		mockError  error
		wantEmail  string
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "success", mockReturn: "member@example.com", wantEmail: "member@example.com"},
		{name: "profile not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "undeliverable address", mockReturn: "not-an-address", wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			q := new(MockProfileReadQueries)
			q.On("GetProfileEmail", ctx, nil, userID).Return(tt.mockReturn, tt.mockError)

			got, err := NewProfileReadStore(q, nil).EmailForUser(ctx, userID)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "unexpected error kind: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, got.Value())
			q.AssertExpectations(t)
		})
	}
}
