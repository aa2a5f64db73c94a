package commands

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"clubhouse/internal/domain/waitlist"
	"clubhouse/internal/infra"
	"clubhouse/internal/metrics"
	"clubhouse/internal/pkg/clock"
	"clubhouse/internal/pkg/config"
	"clubhouse/internal/pkg/errs"
	"clubhouse/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	maxPromotionAttempts = 3
	claimSweepBatchSize  = 100
)

const (
	PromotionPromoted   = "promoted"
	PromotionNoCapacity = "no_capacity"
	PromotionQueueEmpty = "queue_empty"
)

var (
	ErrSessionNotFound    = errs.New("class session not found")
	ErrPromotionContended = errs.New("waitlist promotion lost every race for the next entry")
)

type PromotionResult struct {
	Promoted       bool       `json:"promoted"`
	Reason         string     `json:"reason"`
	EntryID        *uuid.UUID `json:"entry_id,omitempty"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	ClaimExpiresAt *time.Time `json:"claim_expires_at,omitempty"`
	Notified       bool       `json:"notified"`
}

type ClaimSweepResult struct {
	Expired  int `json:"expired"`
	Promoted int `json:"promoted"`
}

type WaitlistCommands interface {
	PromoteNext(ctx context.Context, sessionID uuid.UUID) (*PromotionResult, error)
	ExpireLapsedClaims(ctx context.Context) (*ClaimSweepResult, error)
}

type waitlistUseCaseImpl struct {
	uow         shared.UnitOfWork
	notifier    shared.Notifier
	contacts    shared.ContactDirectory
	clock       clock.Clock
	claimWindow time.Duration
	loc         *time.Location
	logger      *slog.Logger
}

func NewWaitlistCommands(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	contacts shared.ContactDirectory,
	clk clock.Clock,
	cfg config.ClubConfig,
	logger *slog.Logger,
) WaitlistCommands {
	window := cfg.ClaimWindow
	if window <= 0 {
		window = waitlist.DefaultClaimWindow
	}
	loc, err := cfg.Location()
	if err != nil {
		loc = time.UTC
	}
	return &waitlistUseCaseImpl{
		uow:         uow,
		notifier:    notifier,
		contacts:    contacts,
		clock:       clk,
		claimWindow: window,
		loc:         loc,
		logger:      logger,
	}
}

// PromoteNext offers the next open seat of a session to the lowest-position
// waiting entry. The session row lock serialises promotions per session; the
// conditional status update catches entries claimed by any other writer.
func (uc *waitlistUseCaseImpl) PromoteNext(ctx context.Context, sessionID uuid.UUID) (*PromotionResult, error) {
	var (
		result  *PromotionResult
		session *waitlist.Session
		entry   *waitlist.Entry
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, session, entry = nil, nil, nil
		now := uc.clock.Now()

		s, err := tx.Sessions().LockByID(ctx, tx.DB(), sessionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrSessionNotFound)
			}
			return err
		}
		session = s

		holds, err := tx.Waitlist().CountLiveHolds(ctx, tx.DB(), sessionID, now)
		if err != nil {
			return err
		}
		if s.OpenSeats(holds) <= 0 {
			result = &PromotionResult{Reason: PromotionNoCapacity}
			return nil
		}

		for attempt := 0; attempt < maxPromotionAttempts; attempt++ {
			next, err := tx.Waitlist().NextWaiting(ctx, tx.DB(), sessionID)
			if err != nil {
				return err
			}
			if next == nil {
				result = &PromotionResult{Reason: PromotionQueueEmpty}
				return nil
			}
			if err := next.Notify(now, uc.claimWindow); err != nil {
				return err
			}
			won, err := tx.Waitlist().MarkNotified(ctx, tx.DB(), next)
			if err != nil {
				return err
			}
			if won {
				entry = next
				result = &PromotionResult{
					Promoted:       true,
					Reason:         PromotionPromoted,
					EntryID:        lo.ToPtr(next.ID()),
					UserID:         lo.ToPtr(next.UserID()),
					ClaimExpiresAt: next.ClaimExpiresAt(),
				}
				return nil
			}
			uc.logger.WarnContext(ctx, "waitlist entry taken concurrently, retrying",
				slog.String("session_id", sessionID.String()),
				slog.String("entry_id", next.ID().String()),
				slog.Int("attempt", attempt+1))
		}
		return ErrPromotionContended
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPromotion(result.Reason)
	if !result.Promoted {
		uc.logger.InfoContext(ctx, "no waitlist promotion",
			slog.String("session_id", sessionID.String()),
			slog.String("reason", result.Reason))
		return result, nil
	}

	uc.logger.InfoContext(ctx, "waitlist entry promoted",
		slog.String("session_id", sessionID.String()),
		slog.String("entry_id", entry.ID().String()),
		slog.Int("position", entry.Position()))
	result.Notified = uc.notifySpotAvailable(ctx, session, entry)
	return result, nil
}

// notifySpotAvailable runs after commit; delivery problems never undo a
// promotion.
func (uc *waitlistUseCaseImpl) notifySpotAvailable(ctx context.Context, session *waitlist.Session, entry *waitlist.Entry) bool {
	kind := string(shared.NotificationWaitlistSpotAvailable)

	email, err := uc.contacts.EmailForUser(ctx, entry.UserID())
	if err != nil {
		metrics.RecordNotification(kind, "no_recipient")
		uc.logger.WarnContext(ctx, "no contact address for promoted user",
			slog.String("user_id", entry.UserID().String()),
			slog.Any("error", err))
		return false
	}

	startsAt := session.StartsAt.In(uc.loc)
	note := shared.Notification{
		Type:      shared.NotificationWaitlistSpotAvailable,
		Recipient: email,
		Data: map[string]string{
			"class_name":    session.ClassName,
			"date":          startsAt.Format("Mon, Jan 2"),
			"time":          startsAt.Format("3:04 PM"),
			"claim_minutes": strconv.Itoa(int(uc.claimWindow.Minutes())),
		},
	}
	if err := uc.notifier.Send(ctx, note); err != nil {
		metrics.RecordNotification(kind, "failed")
		uc.logger.ErrorContext(ctx, "failed to send waitlist notification",
			slog.String("user_id", entry.UserID().String()),
			slog.Any("error", err))
		return false
	}
	metrics.RecordNotification(kind, "sent")
	return true
}

// ExpireLapsedClaims releases held seats whose claim window has passed and
// offers each freed seat to the next person in line.
func (uc *waitlistUseCaseImpl) ExpireLapsedClaims(ctx context.Context) (*ClaimSweepResult, error) {
	var expired []*waitlist.Entry
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		expired = nil
		now := uc.clock.Now()

		lapsed, err := tx.Waitlist().ListLapsed(ctx, tx.DB(), now, claimSweepBatchSize)
		if err != nil {
			return err
		}
		for _, e := range lapsed {
			if err := e.Expire(now); err != nil {
				continue
			}
			ok, err := tx.Waitlist().MarkExpired(ctx, tx.DB(), e)
			if err != nil {
				return err
			}
			if ok {
				expired = append(expired, e)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &ClaimSweepResult{Expired: len(expired)}
	metrics.RecordClaimsExpired(result.Expired)

	// Each lapsed claim frees one seat, so promotion runs once per expired
	// entry. A session that reports nothing to promote is not retried.
	exhausted := make(map[uuid.UUID]bool)
	for _, e := range expired {
		sessionID := e.SessionID()
		if exhausted[sessionID] {
			continue
		}
		res, perr := uc.PromoteNext(ctx, sessionID)
		if perr != nil {
			uc.logger.ErrorContext(ctx, "promotion after claim expiry failed",
				slog.String("session_id", sessionID.String()),
				slog.Any("error", perr))
			continue
		}
		if !res.Promoted {
			exhausted[sessionID] = true
			continue
		}
		result.Promoted++
	}

	if result.Expired > 0 {
		uc.logger.InfoContext(ctx, "lapsed waitlist claims expired",
			slog.Int("expired", result.Expired),
			slog.Int("promoted", result.Promoted))
	}
	return result, nil
}
