//go:build e2e

package billing_test

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
	"clubhouse/tests/e2e"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	webhookURL       = "/webhooks/stripe"
	runIssuanceURL   = "/api/admin/credit-issuance/run"
	activateURL      = "/api/admin/members/%s/activate"
	paymentStatusURL = "/api/me/payment-status"
)

type BillingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BillingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestBillingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BillingSuite))
}

func (s *BillingSuite) adminToken() string {
	t := s.T()
	adminID := dbtest.CreateProfile(t, s.DB, "admin-"+uuid.NewString()[:8]+"@example.com")
	return s.jwt.GenerateToken(t, adminID, user.RoleAdmin)
}

func (s *BillingSuite) deliver(payload string) (int, resdto.WebhookResponse) {
	t := s.T()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    e2e.TestWebhookSecret,
		Timestamp: time.Now(),
	})
	w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, signed.Payload,
		map[string]string{"Stripe-Signature": signed.Header})

	var res resdto.WebhookResponse
	if w.Code == http.StatusOK {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	}
	return w.Code, res
}

func subscriptionEvent(eventID, eventType, subID, status string, memberID uuid.UUID) string {
	return fmt.Sprintf(`{
  "id": %q,
  "object": "event",
  "type": %q,
  "api_version": "2025-07-30.basil",
  "data": {
    "object": {
      "id": %q,
      "object": "subscription",
      "status": %q,
      "metadata": {"member_id": %q}
    }
  }
}`, eventID, eventType, subID, status, memberID.String())
}

func checkoutEvent(eventID string, memberID uuid.UUID) string {
	return fmt.Sprintf(`{
  "id": %q,
  "object": "event",
  "type": "checkout.session.completed",
  "api_version": "2025-07-30.basil",
  "data": {
    "object": {
      "id": "cs_test_1",
      "object": "checkout.session",
      "metadata": {"purpose": "annual_fee", "member_id": %q}
    }
  }
}`, eventID, memberID.String())
}

// =============================================================================
// Stripe webhook
// =============================================================================

func (s *BillingSuite) TestStripeWebhook() {
	s.Run("Past-due subscription moves the member and is idempotent", func() {
		t := s.T()
		userID := dbtest.CreateProfile(t, s.DB, "late@example.com")
		memberID := dbtest.CreateMember(t, s.DB, dbtest.ActiveGoldMember(userID, time.Now().UTC().AddDate(0, -2, 0), "sub_late"))

		payload := subscriptionEvent("evt_late_1", "customer.subscription.updated", "sub_late", "past_due", memberID)

		code, res := s.deliver(payload)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "processed", res.Outcome)
		require.Equal(t, &memberID, res.MemberID)
		require.Equal(t, "past_due", dbtest.MemberStatus(t, s.DB, memberID))

		code, res = s.deliver(payload)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "duplicate", res.Outcome)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, paymentStatusURL, nil, s.jwt.GenerateToken(t, userID, user.RoleMember))
		require.Equal(t, http.StatusOK, w.Code)
		var status resdto.PaymentStatusResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &status))
		require.Equal(t, "dues_past_due", status.Status)
		require.True(t, status.HasNonBlockingIssues)
		require.False(t, status.Restricted)
	})

	s.Run("Active subscription activates a pending member and issues credits", func() {
		t := s.T()
		userID := dbtest.CreateProfile(t, s.DB, "new@example.com")
		paid := time.Now().UTC().AddDate(0, 0, -1)
		memberID := dbtest.CreateMember(t, s.DB, dbtest.MemberRow{
			UserID:          userID,
			Tier:            "Gold Membership",
			Status:          "pending_activation",
			AnnualFeePaidAt: &paid,
		})

		code, res := s.deliver(subscriptionEvent("evt_new_1", "customer.subscription.created", "sub_new", "active", memberID))
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "processed", res.Outcome)
		require.Equal(t, "active", dbtest.MemberStatus(t, s.DB, memberID))
		require.Equal(t, 2, dbtest.CountCreditGrants(t, s.DB, memberID))
	})

	s.Run("Annual fee checkout records the payment", func() {
		t := s.T()
		userID := dbtest.CreateProfile(t, s.DB, "fee@example.com")
		memberID := dbtest.CreateMember(t, s.DB, dbtest.MemberRow{UserID: userID, Tier: "Silver", Status: "pending_activation"})

		code, res := s.deliver(checkoutEvent("evt_fee_1", memberID))
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "processed", res.Outcome)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, paymentStatusURL, nil, s.jwt.GenerateToken(t, userID, user.RoleMember))
		require.Equal(t, http.StatusOK, w.Code)
		var status resdto.PaymentStatusResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &status))
		require.Equal(t, "current", status.Status)
	})

	s.Run("Unknown subscription is acknowledged and ignored", func() {
		code, res := s.deliver(subscriptionEvent("evt_orphan", "customer.subscription.updated", "sub_orphan", "active", uuid.New()))
		require.Equal(s.T(), http.StatusOK, code)
		require.Equal(s.T(), "ignored", res.Outcome)
	})

	s.Run("Bad signature is rejected", func() {
		t := s.T()
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL,
			[]byte(checkoutEvent("evt_forged", uuid.New())),
			map[string]string{"Stripe-Signature": "t=1,v1=deadbeef"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// Credit issuance
// =============================================================================

func (s *BillingSuite) TestCreditIssuance() {
	s.Run("Anniversary run issues once per cycle", func() {
		t := s.T()
		token := s.adminToken()
		start := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
		userID := dbtest.CreateProfile(t, s.DB, "anniversary@example.com")
		memberID := dbtest.CreateMember(t, s.DB, dbtest.ActiveGoldMember(userID, start, "sub_anniv"))
		otherID := dbtest.CreateProfile(t, s.DB, "offcycle@example.com")
		dbtest.CreateMember(t, s.DB, dbtest.ActiveGoldMember(otherID, start.AddDate(0, 0, 3), "sub_off"))

		body := reqdto.RunIssuanceRequest{Date: lo.ToPtr("2025-05-15")}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, runIssuanceURL, body, token)
		require.Equal(t, http.StatusOK, w.Code)
		var first resdto.IssuanceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &first))
		require.Equal(t, resdto.IssuanceResponse{Created: 2, MembersProcessed: 1}, first)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, runIssuanceURL, body, token)
		require.Equal(t, http.StatusOK, w.Code)
		var second resdto.IssuanceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &second))
		require.Equal(t, resdto.IssuanceResponse{Skipped: 2, MembersProcessed: 1}, second)

		require.Equal(t, 2, dbtest.CountCreditGrants(t, s.DB, memberID))
	})

	s.Run("Month-end anchor folds onto a short month", func() {
		t := s.T()
		token := s.adminToken()
		userID := dbtest.CreateProfile(t, s.DB, "monthend@example.com")
		memberID := dbtest.CreateMember(t, s.DB, dbtest.ActiveGoldMember(userID,
			time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), "sub_monthend"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, runIssuanceURL,
			reqdto.RunIssuanceRequest{Date: lo.ToPtr("2025-02-28")}, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 2, dbtest.CountCreditGrants(t, s.DB, memberID))
	})
}

// =============================================================================
// Membership activation
// =============================================================================

func (s *BillingSuite) TestActivateMembership() {
	s.Run("Pending member is activated with a first cycle", func() {
		t := s.T()
		token := s.adminToken()
		userID := dbtest.CreateProfile(t, s.DB, "activate@example.com")
		memberID := dbtest.CreateMember(t, s.DB, dbtest.MemberRow{UserID: userID, Tier: "Diamond", Status: "pending_activation"})
		at := time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(activateURL, memberID),
			reqdto.ActivateMembershipRequest{ActivatedAt: &at}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var got resdto.ActivationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, memberID, got.MemberID)
		require.Equal(t, "2025-06-10", got.CycleStart)
		require.Equal(t, 3, got.GrantsCreated)
		require.Equal(t, "active", dbtest.MemberStatus(t, s.DB, memberID))
	})

	s.Run("Activating twice conflicts", func() {
		t := s.T()
		token := s.adminToken()
		userID := dbtest.CreateProfile(t, s.DB, "twice@example.com")
		memberID := dbtest.CreateMember(t, s.DB, dbtest.ActiveGoldMember(userID, time.Now().UTC(), "sub_twice"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(activateURL, memberID), nil, token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Unknown member is not found", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf(activateURL, uuid.New()), nil, s.adminToken())
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}
