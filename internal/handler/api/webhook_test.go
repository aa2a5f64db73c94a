//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"clubhouse/internal/handler/api"
	resdto "clubhouse/internal/handler/dto/response"
	"clubhouse/internal/pkg/config"
	"clubhouse/internal/usecase/commands"
	"clubhouse/tests/common/httptest"
	commandsmock "clubhouse/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/mock/gomock"
)

const testWebhookSecret = "whsec_test_secret"

type StripeWebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBillingCommands
}

func (s *StripeWebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBillingCommands(s.mockCtrl)
	s.router = s.newRouter(testWebhookSecret)
}

func (s *StripeWebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStripeWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(StripeWebhookHandlerTestSuite))
}

func (s *StripeWebhookHandlerTestSuite) newRouter(secret string) *gin.Engine {
	cfg := config.NewTestConfig()
	cfg.Stripe.WebhookSecret = secret
	h := api.NewStripeWebhookHandler(s.mockCommands, cfg, slog.New(slog.DiscardHandler))
	r := gin.New()
	r.POST("/webhooks/stripe", h.Handle)
	return r
}

func (s *StripeWebhookHandlerTestSuite) deliver(router *gin.Engine, payload, signature string) *nethttptest.ResponseRecorder {
	headers := map[string]string{}
	if signature != "" {
		headers["Stripe-Signature"] = signature
	}
	return httptest.PerformRawRequest(s.T(), router, http.MethodPost, "/webhooks/stripe", []byte(payload), headers)
}

func sign(payload string) string {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

const subscriptionUpdatedPayload = `{
  "id": "evt_sub_1",
  "object": "event",
  "type": "customer.subscription.updated",
  "data": {"object": {
    "id": "sub_test_123",
    "object": "subscription",
    "status": "past_due",
    "metadata": {"member_id": "5f1d7c1e-3c4b-4f7e-9a51-8c1b2b0d6e11"}
  }}
}`

const checkoutCompletedPayload = `{
  "id": "evt_co_1",
  "object": "event",
  "type": "checkout.session.completed",
  "data": {"object": {
    "id": "cs_test_1",
    "object": "checkout.session",
    "metadata": {"purpose": "annual_fee", "member_id": "5f1d7c1e-3c4b-4f7e-9a51-8c1b2b0d6e11"}
  }}
}`

func (s *StripeWebhookHandlerTestSuite) TestHandle() {
	s.Run("success: subscription change is forwarded", func() {
		memberID := uuid.New()
		s.mockCommands.EXPECT().HandleEvent(gomock.Any(), commands.BillingEvent{
			ID:   "evt_sub_1",
			Type: commands.EventSubscriptionUpdated,
			Subscription: &commands.SubscriptionChange{
				ID:       "sub_test_123",
				Status:   "past_due",
				Metadata: map[string]string{"member_id": "5f1d7c1e-3c4b-4f7e-9a51-8c1b2b0d6e11"},
			},
		}).Return(&commands.BillingOutcome{Outcome: commands.BillingOutcomeProcessed, MemberID: &memberID}, nil)

		rec := s.deliver(s.router, subscriptionUpdatedPayload, sign(subscriptionUpdatedPayload))

		var got resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Received)
		s.Equal("processed", got.Outcome)
		s.Equal(memberID, *got.MemberID)
	})

	s.Run("success: checkout metadata is forwarded", func() {
		s.mockCommands.EXPECT().HandleEvent(gomock.Any(), commands.BillingEvent{
			ID:   "evt_co_1",
			Type: commands.EventCheckoutCompleted,
			Checkout: &commands.CheckoutCompleted{
				Metadata: map[string]string{"purpose": "annual_fee", "member_id": "5f1d7c1e-3c4b-4f7e-9a51-8c1b2b0d6e11"},
			},
		}).Return(&commands.BillingOutcome{Outcome: commands.BillingOutcomeProcessed}, nil)

		rec := s.deliver(s.router, checkoutCompletedPayload, sign(checkoutCompletedPayload))
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("success: unhandled event type passes through without payload", func() {
		payload := `{"id":"evt_inv_1","object":"event","type":"invoice.paid","data":{"object":{"id":"in_1","object":"invoice"}}}`
		s.mockCommands.EXPECT().HandleEvent(gomock.Any(), commands.BillingEvent{ID: "evt_inv_1", Type: "invoice.paid"}).
			Return(&commands.BillingOutcome{Outcome: commands.BillingOutcomeIgnored}, nil)

		rec := s.deliver(s.router, payload, sign(payload))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"outcome":"ignored"`)
	})

	s.Run("success: replayed event acknowledged", func() {
		s.mockCommands.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).
			Return(&commands.BillingOutcome{Outcome: commands.BillingOutcomeDuplicate}, nil)

		rec := s.deliver(s.router, subscriptionUpdatedPayload, sign(subscriptionUpdatedPayload))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"outcome":"duplicate"`)
	})

	s.Run("error: missing signature", func() {
		rec := s.deliver(s.router, subscriptionUpdatedPayload, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid signature")
	})

	s.Run("error: signature from another secret", func() {
		forged := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   []byte(subscriptionUpdatedPayload),
			Secret:    "whsec_someone_else",
			Timestamp: time.Now(),
		})
		rec := s.deliver(s.router, subscriptionUpdatedPayload, forged.Header)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid signature")
	})

	s.Run("error: tampered payload", func() {
		signature := sign(subscriptionUpdatedPayload)
		tampered := bytes.Replace([]byte(subscriptionUpdatedPayload), []byte("past_due"), []byte("active"), 1)
		rec := s.deliver(s.router, string(tampered), signature)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid signature")
	})

	s.Run("error: event rejected as malformed", func() {
		s.mockCommands.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).Return(nil, commands.ErrBillingEventInvalid)
		rec := s.deliver(s.router, subscriptionUpdatedPayload, sign(subscriptionUpdatedPayload))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Malformed")
	})

	s.Run("error: storage failure asks for redelivery", func() {
		s.mockCommands.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).Return(nil, errors.New("serialization failure"))
		rec := s.deliver(s.router, subscriptionUpdatedPayload, sign(subscriptionUpdatedPayload))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: secret not configured", func() {
		router := s.newRouter("")
		rec := s.deliver(router, subscriptionUpdatedPayload, sign(subscriptionUpdatedPayload))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "not configured")
	})
}
