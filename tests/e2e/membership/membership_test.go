//go:build e2e

package membership_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"clubhouse/internal/domain/user"
	reqdto "clubhouse/internal/handler/dto/request"
	resdto "clubhouse/internal/handler/dto/response"
	"clubhouse/tests/common/authtest"
	"clubhouse/tests/common/dbtest"
	"clubhouse/tests/common/httptest"
	"clubhouse/tests/common/testutil"
	"clubhouse/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	paymentStatusURL     = "/api/me/payment-status"
	freezeEligibilityURL = "/api/me/freeze-eligibility"
	freezeRequestsURL    = "/api/me/freeze-requests"
	cancelFreezeURL      = "/api/me/freeze-requests/%s/cancel"
	approveFreezeURL     = "/api/admin/freeze-requests/%s/approve"
	rejectFreezeURL      = "/api/admin/freeze-requests/%s/reject"
	activateFreezeURL    = "/api/admin/freeze-requests/%s/activate"
)

type MembershipSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *MembershipSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestMembershipSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MembershipSuite))
}

func (s *MembershipSuite) activeMember(email string) (userID, memberID uuid.UUID) {
	t := s.T()
	userID = dbtest.CreateProfile(t, s.DB, email)
	start := time.Now().UTC().AddDate(0, -3, 0)
	memberID = dbtest.CreateMember(t, s.DB, dbtest.ActiveGoldMember(userID, start, "sub_"+uuid.NewString()[:8]))
	return userID, memberID
}

func (s *MembershipSuite) requestFreeze(token string, start time.Time, months int) *freezeResult {
	body := reqdto.CreateFreezeRequest{StartDate: start.Format(time.DateOnly), DurationMonths: months}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, freezeRequestsURL, body, token)
	var res resdto.FreezeRequestResponse
	if w.Code == http.StatusCreated {
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	}
	return &freezeResult{Code: w.Code, Freeze: res}
}

type freezeResult struct {
	Code   int
	Freeze resdto.FreezeRequestResponse
}

// =============================================================================
// Payment status
// =============================================================================

func (s *MembershipSuite) TestPaymentStatus() {
	s.Run("Fully paid active member is current", func() {
		t := s.T()
		userID, _ := s.activeMember("paid@example.com")
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, paymentStatusURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var got resdto.PaymentStatusResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		want := resdto.PaymentStatusResponse{
			Status:      "current",
			Issues:      []string{},
			IsFullyPaid: true,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("payment status mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Pending member without the annual fee is blocked", func() {
		t := s.T()
		userID := dbtest.CreateProfile(t, s.DB, "pending@example.com")
		dbtest.CreateMember(t, s.DB, dbtest.MemberRow{UserID: userID, Tier: "Gold Membership", Status: "pending_activation"})
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, paymentStatusURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var got resdto.PaymentStatusResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		want := resdto.PaymentStatusResponse{
			Status:            "initiation_fee_unpaid",
			Issues:            []string{"initiation_fee_unpaid"},
			HasBlockingIssues: true,
			Restricted:        true,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("payment status mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("User without a membership gets no_membership", func() {
		t := s.T()
		userID := dbtest.CreateProfile(t, s.DB, "visitor@example.com")
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, paymentStatusURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var got resdto.PaymentStatusResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "no_membership", got.Status)
	})

	s.Run("Active member with nothing paid has multiple issues", func() {
		t := s.T()
		userID := dbtest.CreateProfile(t, s.DB, "unpaid@example.com")
		start := time.Now().UTC().AddDate(0, -1, 0)
		dbtest.CreateMember(t, s.DB, dbtest.MemberRow{UserID: userID, Tier: "Gold Membership", Status: "active", StartDate: &start})
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, paymentStatusURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var got resdto.PaymentStatusResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "multiple_issues", got.Status)
		require.ElementsMatch(t, []string{"initiation_fee_unpaid", "no_subscription"}, got.Issues)
		require.True(t, got.Restricted)
	})

	s.Run("Missing token is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, paymentStatusURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}

// =============================================================================
// Freeze lifecycle
// =============================================================================

func (s *MembershipSuite) TestFreezeLifecycle() {
	s.Run("Request, approve and activate freezes the member", func() {
		t := s.T()
		userID, memberID := s.activeMember("freezer@example.com")
		adminID := dbtest.CreateProfile(t, s.DB, "admin@example.com")
		memberToken := s.jwt.GenerateToken(t, userID, user.RoleMember)
		adminToken := s.jwt.GenerateToken(t, adminID, user.RoleAdmin)

		start := time.Now().UTC().AddDate(0, 0, 7)
		created := s.requestFreeze(memberToken, start, 2)
		require.Equal(t, http.StatusCreated, created.Code)
		require.Equal(t, "pending", created.Freeze.Status)
		require.Equal(t, "40.00", created.Freeze.FeeTotal)
		require.Equal(t, memberID, created.Freeze.MemberID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveFreezeURL, created.Freeze.ID), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		var approved resdto.FreezeRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &approved))
		require.Equal(t, "approved", approved.Status)
		require.NotNil(t, approved.ActualStart)
		require.Equal(t, start.Format(time.DateOnly), *approved.ActualStart)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(activateFreezeURL, created.Freeze.ID), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		var active resdto.FreezeRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &active))
		require.Equal(t, "active", active.Status)
		require.True(t, active.FeePaid)

		require.Equal(t, "frozen", dbtest.MemberStatus(t, s.DB, memberID))
	})

	s.Run("Second outstanding request conflicts", func() {
		t := s.T()
		userID, _ := s.activeMember("twice@example.com")
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)
		start := time.Now().UTC().AddDate(0, 0, 3)

		require.Equal(t, http.StatusCreated, s.requestFreeze(token, start, 1).Code)
		require.Equal(t, http.StatusConflict, s.requestFreeze(token, start.AddDate(0, 0, 1), 1).Code)
	})

	s.Run("Rejected request frees the allowance", func() {
		t := s.T()
		userID, _ := s.activeMember("rejected@example.com")
		adminID := dbtest.CreateProfile(t, s.DB, "reviewer@example.com")
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)
		adminToken := s.jwt.GenerateToken(t, adminID, user.RoleAdmin)

		created := s.requestFreeze(token, time.Now().UTC().AddDate(0, 0, 5), 2)
		require.Equal(t, http.StatusCreated, created.Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(rejectFreezeURL, created.Freeze.ID),
			reqdto.RejectFreezeRequest{Reason: "Peak season"}, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, freezeEligibilityURL, nil, token)
		var got resdto.FreezeEligibilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		want := resdto.FreezeEligibilityResponse{
			Year:            time.Now().UTC().Year(),
			CanFreeze:       true,
			MonthsUsed:      0,
			MonthsRemaining: 2,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("eligibility mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Member cancels their own pending request", func() {
		t := s.T()
		userID, _ := s.activeMember("cancel@example.com")
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		created := s.requestFreeze(token, time.Now().UTC().AddDate(0, 0, 10), 1)
		require.Equal(t, http.StatusCreated, created.Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelFreezeURL, created.Freeze.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var got resdto.FreezeRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "cancelled", got.Status)
	})

	s.Run("Another member cannot cancel the request", func() {
		t := s.T()
		ownerID, _ := s.activeMember("owner@example.com")
		otherID, _ := s.activeMember("other@example.com")

		created := s.requestFreeze(s.jwt.GenerateToken(t, ownerID, user.RoleMember), time.Now().UTC().AddDate(0, 0, 10), 1)
		require.Equal(t, http.StatusCreated, created.Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelFreezeURL, created.Freeze.ID), nil,
			s.jwt.GenerateToken(t, otherID, user.RoleMember))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "belongs to another member")
	})

	s.Run("Start date in the past is rejected", func() {
		t := s.T()
		userID, _ := s.activeMember("past@example.com")
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		require.Equal(t, http.StatusBadRequest, s.requestFreeze(token, time.Now().UTC().AddDate(0, 0, -2), 1).Code)
	})

	s.Run("Members cannot approve", func() {
		t := s.T()
		userID, _ := s.activeMember("sneaky@example.com")
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		created := s.requestFreeze(token, time.Now().UTC().AddDate(0, 0, 4), 1)
		require.Equal(t, http.StatusCreated, created.Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveFreezeURL, created.Freeze.ID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *MembershipSuite) TestFreezeRequestResponseShape() {
	s.Run("Created request echoes the requested window", func() {
		t := s.T()
		userID, memberID := s.activeMember("shape@example.com")
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)
		start := time.Now().UTC().AddDate(0, 0, 14)

		created := s.requestFreeze(token, start, 1)
		require.Equal(t, http.StatusCreated, created.Code)

		want := resdto.FreezeRequestResponse{
			MemberID:       memberID,
			Status:         "pending",
			RequestedStart: start.Format(time.DateOnly),
			RequestedEnd:   start.AddDate(0, 1, 0).Format(time.DateOnly),
			DurationMonths: 1,
			FreezeYear:     time.Now().UTC().Year(),
			FeeTotal:       "20.00",
		}
		opts := cmpopts.IgnoreFields(resdto.FreezeRequestResponse{}, "ID", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(want, created.Freeze, opts); diff != "" {
			t.Errorf("freeze request mismatch (-want +got):\n%s", diff)
		}
	})
}

func (s *MembershipSuite) TestFreezeRequestValidation() {
	base := reqdto.CreateFreezeRequest{
		StartDate:      time.Now().UTC().AddDate(0, 0, 7).Format(time.DateOnly),
		DurationMonths: 1,
	}

	cases := []struct {
		name string
		body map[string]any
	}{
		{name: "Missing start date", body: testutil.DtoMap(s.T(), base, testutil.Field("startDate", nil))},
		{name: "Malformed start date", body: testutil.DtoMap(s.T(), base, testutil.Field("startDate", "07/01/2025"))},
		{name: "Duration above two months", body: testutil.DtoMap(s.T(), base, testutil.Field("durationMonths", 3))},
		{name: "Zero duration", body: testutil.DtoMap(s.T(), base, testutil.Field("durationMonths", 0))},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			t := s.T()
			userID, _ := s.activeMember("invalid@example.com")
			token := s.jwt.GenerateToken(t, userID, user.RoleMember)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, freezeRequestsURL, tc.body, token)
			httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
		})
	}
}
