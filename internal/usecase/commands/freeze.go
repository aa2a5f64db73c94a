package commands

import (
	"context"
	"log/slog"
	"time"

	"clubhouse/internal/domain/freeze"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/infra"
	"clubhouse/internal/metrics"
	"clubhouse/internal/pkg/clock"
	"clubhouse/internal/pkg/config"
	"clubhouse/internal/pkg/errs"
	"clubhouse/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMemberNotActive          = errs.New("membership must be active to request a freeze")
	ErrFreezeNotEligible        = errs.New("member is not eligible for this freeze")
	ErrFreezeRequestNotFound    = errs.New("freeze request not found")
	ErrFreezeRequestNotOwned    = errs.New("freeze request belongs to another member")
	ErrFreezeRequestOutstanding = errs.New("freeze request already outstanding")
	ErrFreezeInvalidRequest     = errs.New("invalid freeze request")
	ErrFreezeInvalidTransition  = errs.New("freeze request cannot move to the requested status")

	errFreezeNoLongerDue = errs.New("freeze is no longer due")
)

type RequestFreezeInput struct {
	StartDate      time.Time
	DurationMonths int
}

type FreezeSweepResult struct {
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

type FreezeCommands interface {
	RequestFreeze(ctx context.Context, userID uuid.UUID, in RequestFreezeInput) (*freeze.Request, error)
	ApproveFreeze(ctx context.Context, adminID, requestID uuid.UUID, startOverride *time.Time) (*freeze.Request, error)
	RejectFreeze(ctx context.Context, adminID, requestID uuid.UUID, reason string) (*freeze.Request, error)
	ActivateFreeze(ctx context.Context, requestID uuid.UUID) (*freeze.Request, error)
	CancelFreeze(ctx context.Context, userID, requestID uuid.UUID) (*freeze.Request, error)
	CompleteDueFreezes(ctx context.Context, today time.Time) (*FreezeSweepResult, error)
}

type freezeUseCaseImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	monthlyFee int64
	logger     *slog.Logger
}

func NewFreezeCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.ClubConfig, logger *slog.Logger) FreezeCommands {
	return &freezeUseCaseImpl{
		uow:        uow,
		clock:      clk,
		monthlyFee: cfg.FreezeMonthlyFee,
		logger:     logger,
	}
}

func (uc *freezeUseCaseImpl) RequestFreeze(ctx context.Context, userID uuid.UUID, in RequestFreezeInput) (*freeze.Request, error) {
	now := uc.clock.Now()

	var created *freeze.Request
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := findMemberByUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		// serialises concurrent requests from the same member
		m, err = tx.Members().FindByIDForUpdate(ctx, tx.DB(), m.ID())
		if err != nil {
			return err
		}
		if !m.IsActive() {
			return ErrMemberNotActive
		}

		req, err := freeze.NewRequest(m.ID(), in.StartDate, in.DurationMonths, uc.monthlyFee, now)
		if err != nil {
			return errs.Mark(err, ErrFreezeInvalidRequest)
		}

		existing, err := tx.FreezeRequests().ListByMemberYear(ctx, tx.DB(), m.ID(), req.FreezeYear())
		if err != nil {
			return err
		}
		if perr := freeze.CheckEligibility(existing, req.FreezeYear()).Permits(in.DurationMonths); perr != nil {
			if errs.Is(perr, freeze.ErrRequestOutstanding) {
				return errs.Mark(perr, ErrFreezeRequestOutstanding)
			}
			return errs.Mark(perr, ErrFreezeNotEligible)
		}

		if err := tx.FreezeRequests().Create(ctx, tx.DB(), req); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrFreezeRequestOutstanding)
			}
			return err
		}
		created = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordFreezeTransition("requested")
	uc.logger.InfoContext(ctx, "freeze requested",
		slog.String("member_id", created.MemberID().String()),
		slog.String("request_id", created.ID().String()),
		slog.Int("months", created.DurationMonths()))
	return created, nil
}

func (uc *freezeUseCaseImpl) ApproveFreeze(ctx context.Context, adminID, requestID uuid.UUID, startOverride *time.Time) (*freeze.Request, error) {
	return uc.transition(ctx, requestID, "approved", func(_ context.Context, _ shared.Tx, req *freeze.Request, now time.Time) error {
		return req.Approve(adminID, startOverride, now)
	})
}

func (uc *freezeUseCaseImpl) RejectFreeze(ctx context.Context, adminID, requestID uuid.UUID, reason string) (*freeze.Request, error) {
	return uc.transition(ctx, requestID, "rejected", func(_ context.Context, _ shared.Tx, req *freeze.Request, now time.Time) error {
		return req.Reject(adminID, reason, now)
	})
}

// ActivateFreeze marks the fee paid and freezes the member's billing.
func (uc *freezeUseCaseImpl) ActivateFreeze(ctx context.Context, requestID uuid.UUID) (*freeze.Request, error) {
	return uc.transition(ctx, requestID, "activated", func(ctx context.Context, tx shared.Tx, req *freeze.Request, now time.Time) error {
		if err := req.Activate(now); err != nil {
			return err
		}
		m, err := tx.Members().FindByIDForUpdate(ctx, tx.DB(), req.MemberID())
		if err != nil {
			return err
		}
		changed, err := m.TransitionTo(member.StatusFrozen, now)
		if err != nil {
			return errs.Mark(err, ErrMemberNotActive)
		}
		if !changed {
			return nil
		}
		return tx.Members().Update(ctx, tx.DB(), m)
	})
}

func (uc *freezeUseCaseImpl) CancelFreeze(ctx context.Context, userID, requestID uuid.UUID) (*freeze.Request, error) {
	return uc.transition(ctx, requestID, "cancelled", func(ctx context.Context, tx shared.Tx, req *freeze.Request, now time.Time) error {
		m, err := findMemberByUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		if !req.BelongsTo(m.ID()) {
			return ErrFreezeRequestNotOwned
		}
		return req.Cancel(now)
	})
}

// CompleteDueFreezes ends every active freeze whose end date has arrived and
// returns the members to active billing. Each freeze commits on its own.
func (uc *freezeUseCaseImpl) CompleteDueFreezes(ctx context.Context, today time.Time) (*FreezeSweepResult, error) {
	if today.IsZero() {
		today = uc.clock.Now()
	}
	today = clock.DateOf(today)

	var due []*freeze.Request
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var lerr error
		due, lerr = tx.FreezeRequests().ListDue(ctx, tx.DB(), today)
		return lerr
	})
	if err != nil {
		return nil, err
	}

	result := &FreezeSweepResult{}
	for _, d := range due {
		_, cerr := uc.transition(ctx, d.ID(), "completed", func(ctx context.Context, tx shared.Tx, req *freeze.Request, now time.Time) error {
			if !req.IsDue(today) {
				return errFreezeNoLongerDue
			}
			if err := req.Complete(now); err != nil {
				return err
			}
			m, err := tx.Members().FindByIDForUpdate(ctx, tx.DB(), req.MemberID())
			if err != nil {
				return err
			}
			if m.Status() != member.StatusFrozen {
				return nil
			}
			if _, err := m.TransitionTo(member.StatusActive, now); err != nil {
				return err
			}
			return tx.Members().Update(ctx, tx.DB(), m)
		})
		if errs.Is(cerr, errFreezeNoLongerDue) {
			continue
		}
		if cerr != nil {
			result.Failed++
			uc.logger.ErrorContext(ctx, "failed to complete freeze",
				slog.String("request_id", d.ID().String()),
				slog.String("member_id", d.MemberID().String()),
				slog.Any("error", cerr))
			continue
		}
		result.Completed++
	}

	uc.logger.InfoContext(ctx, "freeze completion sweep finished",
		slog.String("date", today.Format(time.DateOnly)),
		slog.Int("completed", result.Completed),
		slog.Int("failed", result.Failed))
	return result, nil
}

type freezeMutation func(ctx context.Context, tx shared.Tx, req *freeze.Request, now time.Time) error

// transition locks the request, applies mutate and persists the result in one
// transaction.
func (uc *freezeUseCaseImpl) transition(ctx context.Context, requestID uuid.UUID, label string, mutate freezeMutation) (*freeze.Request, error) {
	var updated *freeze.Request
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.FreezeRequests().FindByIDForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrFreezeRequestNotFound)
			}
			return err
		}

		if err := mutate(ctx, tx, req, uc.clock.Now()); err != nil {
			return markFreezeErr(err)
		}
		if err := tx.FreezeRequests().Update(ctx, tx.DB(), req); err != nil {
			return err
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordFreezeTransition(label)
	uc.logger.InfoContext(ctx, "freeze request updated",
		slog.String("request_id", requestID.String()),
		slog.String("status", updated.Status().String()))
	return updated, nil
}

func markFreezeErr(err error) error {
	switch {
	case errs.Is(err, freeze.ErrInvalidTransition):
		return errs.Mark(err, ErrFreezeInvalidTransition)
	case errs.Is(err, freeze.ErrRejectionReasonRequired),
		errs.Is(err, freeze.ErrStartDateInPast),
		errs.Is(err, freeze.ErrMissingStartDate):
		return errs.Mark(err, ErrFreezeInvalidRequest)
	}
	return err
}

func findMemberByUser(ctx context.Context, tx shared.Tx, userID uuid.UUID) (*member.Member, error) {
	m, err := tx.Members().FindByUserID(ctx, tx.DB(), userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrMemberNotFound)
		}
		return nil, err
	}
	return m, nil
}
