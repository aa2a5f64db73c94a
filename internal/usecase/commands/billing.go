package commands

import (
	"context"
	"log/slog"
	"time"

	"clubhouse/internal/domain/member"
	"clubhouse/internal/infra"
	"clubhouse/internal/metrics"
	"clubhouse/internal/pkg/clock"
	"clubhouse/internal/pkg/config"
	"clubhouse/internal/pkg/errs"
	"clubhouse/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventSubscriptionCreated = "customer.subscription.created"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"

	PurposeAnnualFee = "annual_fee"
)

const (
	BillingOutcomeProcessed = "processed"
	BillingOutcomeDuplicate = "duplicate"
	BillingOutcomeIgnored   = "ignored"
)

var ErrBillingEventInvalid = errs.New("billing event is missing required fields")

// BillingEvent is a provider-neutral view of a verified webhook delivery.
type BillingEvent struct {
	ID           string
	Type         string
	Checkout     *CheckoutCompleted
	Subscription *SubscriptionChange
}

type CheckoutCompleted struct {
	Metadata map[string]string
}

type SubscriptionChange struct {
	ID       string
	Status   string
	Metadata map[string]string
}

type BillingOutcome struct {
	Outcome  string     `json:"outcome"`
	MemberID *uuid.UUID `json:"member_id,omitempty"`
}

type BillingCommands interface {
	HandleEvent(ctx context.Context, ev BillingEvent) (*BillingOutcome, error)
}

type billingUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	graceDays int
	logger    *slog.Logger
}

func NewBillingCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.ClubConfig, logger *slog.Logger) BillingCommands {
	return &billingUseCaseImpl{
		uow:       uow,
		clock:     clk,
		graceDays: cfg.ActivationGraceDays,
		logger:    logger,
	}
}

// HandleEvent applies an event at most once. The event id is recorded in the
// same transaction as its effects, so a failed delivery can be retried.
func (uc *billingUseCaseImpl) HandleEvent(ctx context.Context, ev BillingEvent) (*BillingOutcome, error) {
	if ev.ID == "" || ev.Type == "" {
		return nil, ErrBillingEventInvalid
	}

	var out *BillingOutcome
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out = nil
		fresh, err := tx.WebhookEvents().Record(ctx, tx.DB(), ev.ID, ev.Type)
		if err != nil {
			return err
		}
		if !fresh {
			out = &BillingOutcome{Outcome: BillingOutcomeDuplicate}
			return nil
		}

		now := uc.clock.Now()
		switch ev.Type {
		case EventCheckoutCompleted:
			out, err = uc.applyCheckout(ctx, tx, ev.Checkout, now)
		case EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionDeleted:
			out, err = uc.applySubscription(ctx, tx, ev.Type, ev.Subscription, now)
		default:
			out = &BillingOutcome{Outcome: BillingOutcomeIgnored}
		}
		return err
	})
	if err != nil {
		metrics.RecordWebhookEvent(ev.Type, "failed")
		return nil, err
	}

	metrics.RecordWebhookEvent(ev.Type, out.Outcome)
	attrs := []any{slog.String("event_id", ev.ID), slog.String("event_type", ev.Type), slog.String("outcome", out.Outcome)}
	if out.MemberID != nil {
		attrs = append(attrs, slog.String("member_id", out.MemberID.String()))
	}
	uc.logger.InfoContext(ctx, "billing event handled", attrs...)
	return out, nil
}

func (uc *billingUseCaseImpl) applyCheckout(ctx context.Context, tx shared.Tx, c *CheckoutCompleted, now time.Time) (*BillingOutcome, error) {
	if c == nil || c.Metadata["purpose"] != PurposeAnnualFee {
		return &BillingOutcome{Outcome: BillingOutcomeIgnored}, nil
	}
	memberID, err := uuid.Parse(c.Metadata["member_id"])
	if err != nil {
		uc.logger.WarnContext(ctx, "annual fee checkout without a valid member_id")
		return &BillingOutcome{Outcome: BillingOutcomeIgnored}, nil
	}

	m, err := tx.Members().FindByIDForUpdate(ctx, tx.DB(), memberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &BillingOutcome{Outcome: BillingOutcomeIgnored}, nil
		}
		return nil, err
	}
	if m.RecordAnnualFeePaid(now) {
		if err := tx.Members().Update(ctx, tx.DB(), m); err != nil {
			return nil, err
		}
	}
	return &BillingOutcome{Outcome: BillingOutcomeProcessed, MemberID: &memberID}, nil
}

func (uc *billingUseCaseImpl) applySubscription(ctx context.Context, tx shared.Tx, eventType string, sub *SubscriptionChange, now time.Time) (*BillingOutcome, error) {
	if sub == nil || sub.ID == "" {
		return nil, ErrBillingEventInvalid
	}

	m, err := uc.subscriptionOwner(ctx, tx, sub)
	if err != nil {
		return nil, err
	}
	if m == nil {
		uc.logger.WarnContext(ctx, "subscription does not match any member",
			slog.String("subscription_id", sub.ID))
		return &BillingOutcome{Outcome: BillingOutcomeIgnored}, nil
	}
	memberID := m.ID()
	if err := m.LinkSubscription(sub.ID, now); err != nil {
		return nil, err
	}

	target, ok := targetStatus(eventType, sub.Status)
	switch {
	case !ok:
	case target == member.StatusActive && m.Status() == member.StatusPendingActivation:
		if _, err := activateInTx(ctx, tx, m, now, uc.graceDays); err != nil {
			return nil, err
		}
		return &BillingOutcome{Outcome: BillingOutcomeProcessed, MemberID: &memberID}, nil
	case target == member.StatusActive && m.Status() == member.StatusFrozen:
		// freezes end through the freeze lifecycle, not through billing
	default:
		if _, terr := m.TransitionTo(target, now); terr != nil {
			uc.logger.WarnContext(ctx, "ignoring billing status change",
				slog.String("member_id", memberID.String()),
				slog.String("from", m.Status().String()),
				slog.String("to", target.String()))
		}
	}

	if err := tx.Members().Update(ctx, tx.DB(), m); err != nil {
		return nil, err
	}
	return &BillingOutcome{Outcome: BillingOutcomeProcessed, MemberID: &memberID}, nil
}

// subscriptionOwner finds the member by linked subscription first and falls
// back to the member_id metadata set when the subscription was created.
func (uc *billingUseCaseImpl) subscriptionOwner(ctx context.Context, tx shared.Tx, sub *SubscriptionChange) (*member.Member, error) {
	m, err := tx.Members().FindBySubscriptionRef(ctx, tx.DB(), sub.ID)
	if err == nil {
		return m, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	memberID, perr := uuid.Parse(sub.Metadata["member_id"])
	if perr != nil {
		return nil, nil
	}
	m, err = tx.Members().FindByIDForUpdate(ctx, tx.DB(), memberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func targetStatus(eventType, providerStatus string) (member.Status, bool) {
	if eventType == EventSubscriptionDeleted {
		return member.StatusCancelled, true
	}
	switch providerStatus {
	case "active", "trialing":
		return member.StatusActive, true
	case "past_due", "unpaid":
		return member.StatusPastDue, true
	case "canceled":
		return member.StatusCancelled, true
	}
	return "", false
}
