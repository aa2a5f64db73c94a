package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	resdto "clubhouse/internal/handler/dto/response"
	"clubhouse/internal/handler/httperr"
	"clubhouse/internal/pkg/config"
	"clubhouse/internal/pkg/errs"
	"clubhouse/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Stripe caps webhook payloads well below this.
const maxWebhookBodyBytes = 1 << 16

const stripeSignatureHeader = "Stripe-Signature"

var webhookErrorMappings = []errorMapping{
	{target: commands.ErrBillingEventInvalid, status: http.StatusBadRequest, message: "Malformed billing event"},
}

type StripeWebhookHandler struct {
	cmds   commands.BillingCommands
	secret string
	logger *slog.Logger
}

func NewStripeWebhookHandler(cmds commands.BillingCommands, cfg config.Config, logger *slog.Logger) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		cmds:   cmds,
		secret: cfg.Stripe.WebhookSecret,
		logger: logger,
	}
}

// @Summary Stripe billing webhook
// @Description Verify and apply a Stripe event. Replays of a processed event are acknowledged without effect.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *StripeWebhookHandler) Handle(c *gin.Context) {
	if h.secret == "" {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, errs.ErrWebhookNotConfigured, "Webhook not configured", nil)
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrUnreadableWebhookBody), "Unreadable payload", nil)
		return
	}

	event, err := webhook.ConstructEventWithOptions(payload, c.GetHeader(stripeSignatureHeader), h.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		h.logger.WarnContext(c.Request.Context(), "rejected webhook delivery", slog.Any("error", err))
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidWebhookSignature), "Invalid signature", nil)
		return
	}

	ev, err := toBillingEvent(event)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, commands.ErrBillingEventInvalid), "Malformed billing event", nil)
		return
	}

	outcome, err := h.cmds.HandleEvent(c.Request.Context(), ev)
	if err != nil {
		// Stripe redelivers on 5xx; HandleEvent applies each event id once.
		abortWithMapped(c, err, webhookErrorMappings)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBillingOutcome(outcome))
}

// toBillingEvent keeps only the fields billing reacts to. Event types billing
// does not handle pass through without a payload.
func toBillingEvent(event stripe.Event) (commands.BillingEvent, error) {
	ev := commands.BillingEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data == nil {
		return ev, nil
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return ev, errs.Wrap(err, "decode checkout session")
		}
		ev.Checkout = &commands.CheckoutCompleted{Metadata: session.Metadata}
	case stripe.EventTypeCustomerSubscriptionCreated,
		stripe.EventTypeCustomerSubscriptionUpdated,
		stripe.EventTypeCustomerSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return ev, errs.Wrap(err, "decode subscription")
		}
		ev.Subscription = &commands.SubscriptionChange{
			ID:       sub.ID,
			Status:   string(sub.Status),
			Metadata: sub.Metadata,
		}
	}
	return ev, nil
}
