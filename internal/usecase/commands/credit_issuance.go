package commands

import (
	"context"
	"log/slog"
	"time"

	"clubhouse/internal/domain/credit"
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
	ErrMemberNotFound        = errs.New("member not found")
	ErrMembershipNotPending  = errs.New("membership is not pending activation")
	ErrIssuanceMembersLoad   = errs.New("failed to load active members")
	ErrInvalidActivationDate = errs.New("invalid activation date")
)

// IssuanceResult counts grants, not members. Failed counts members whose
// grants could not be written.
type IssuanceResult struct {
	Created          int `json:"created"`
	Skipped          int `json:"skipped"`
	Failed           int `json:"failed"`
	MembersProcessed int `json:"members_processed"`
}

type ActivationResult struct {
	MemberID      uuid.UUID `json:"member_id"`
	CycleStart    time.Time `json:"cycle_start"`
	CycleEnd      time.Time `json:"cycle_end"`
	ExpiresAt     time.Time `json:"expires_at"`
	GrantsCreated int       `json:"grants_created"`
}

type CreditCommands interface {
	RunDailyIssuance(ctx context.Context, today time.Time) (*IssuanceResult, error)
	ActivateMembership(ctx context.Context, memberID uuid.UUID, at time.Time) (*ActivationResult, error)
}

type creditUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	graceDays int
	logger    *slog.Logger
}

func NewCreditCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.ClubConfig, logger *slog.Logger) CreditCommands {
	return &creditUseCaseImpl{
		uow:       uow,
		clock:     clk,
		graceDays: cfg.ActivationGraceDays,
		logger:    logger,
	}
}

func (uc *creditUseCaseImpl) RunDailyIssuance(ctx context.Context, today time.Time) (*IssuanceResult, error) {
	if today.IsZero() {
		today = uc.clock.Now()
	}
	today = clock.DateOf(today)

	var members []*member.Member
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var lerr error
		members, lerr = tx.Members().ListActive(ctx, tx.DB())
		return lerr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIssuanceMembersLoad)
	}

	result := &IssuanceResult{}
	for _, m := range members {
		if m.StartDate() == nil || !credit.IsAnniversary(*m.StartDate(), today) {
			continue
		}
		result.MembersProcessed++

		bundle := m.CreditBundle()
		if bundle.IsZero() {
			result.Skipped++
			continue
		}

		cycle := credit.CycleStartingOn(*m.StartDate(), today)
		grants, ierr := credit.GrantsFor(m.ID(), bundle, cycle)
		created, skipped := 0, 0
		if ierr == nil {
			created, skipped, ierr = uc.insertGrants(ctx, grants)
		}
		if ierr != nil {
			result.Failed++
			uc.logger.ErrorContext(ctx, "credit issuance failed for member",
				slog.String("member_id", m.ID().String()),
				slog.String("tier", m.Tier().String()),
				slog.Any("error", ierr))
			continue
		}
		result.Created += created
		result.Skipped += skipped
	}

	metrics.RecordIssuance(result.Created, result.Skipped, result.Failed)
	uc.logger.InfoContext(ctx, "daily credit issuance finished",
		slog.String("date", today.Format(time.DateOnly)),
		slog.Int("members_processed", result.MembersProcessed),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed))
	return result, nil
}

// insertGrants writes one member's grants atomically. Grants that already
// exist for the cycle are reported as skipped.
func (uc *creditUseCaseImpl) insertGrants(ctx context.Context, grants []*credit.Grant) (created, skipped int, err error) {
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var ierr error
		created, skipped, ierr = insertGrantsInTx(ctx, tx, grants)
		return ierr
	})
	return created, skipped, err
}

func insertGrantsInTx(ctx context.Context, tx shared.Tx, grants []*credit.Grant) (created, skipped int, err error) {
	for _, g := range grants {
		inserted, ierr := tx.CreditGrants().InsertIfAbsent(ctx, tx.DB(), g)
		if ierr != nil {
			return 0, 0, ierr
		}
		if inserted {
			created++
		} else {
			skipped++
		}
	}
	return created, skipped, nil
}

func (uc *creditUseCaseImpl) ActivateMembership(ctx context.Context, memberID uuid.UUID, at time.Time) (*ActivationResult, error) {
	if at.IsZero() {
		at = uc.clock.Now()
	}

	var result *ActivationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, ferr := tx.Members().FindByIDForUpdate(ctx, tx.DB(), memberID)
		if ferr != nil {
			if infra.IsKind(ferr, infra.KindNotFound) {
				return errs.Mark(ferr, ErrMemberNotFound)
			}
			return ferr
		}

		res, aerr := activateInTx(ctx, tx, m, at, uc.graceDays)
		if aerr != nil {
			return aerr
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "membership activated",
		slog.String("member_id", memberID.String()),
		slog.Int("grants_created", result.GrantsCreated))
	return result, nil
}

// activateInTx moves a pending member to active and issues the first cycle,
// whose credits stay usable for graceDays past the cycle end.
func activateInTx(ctx context.Context, tx shared.Tx, m *member.Member, at time.Time, graceDays int) (*ActivationResult, error) {
	if err := m.Activate(at); err != nil {
		if errs.Is(err, member.ErrAlreadyActivated) {
			return nil, errs.Mark(err, ErrMembershipNotPending)
		}
		return nil, err
	}
	if err := tx.Members().Update(ctx, tx.DB(), m); err != nil {
		return nil, err
	}

	cycle, err := credit.ActivationCycle(*m.StartDate(), at, graceDays)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidActivationDate)
	}

	result := &ActivationResult{
		MemberID:   m.ID(),
		CycleStart: cycle.Start(),
		CycleEnd:   cycle.End(),
		ExpiresAt:  cycle.ExpiresAt(),
	}
	bundle := m.CreditBundle()
	if bundle.IsZero() {
		return result, nil
	}

	grants, err := credit.GrantsFor(m.ID(), bundle, cycle)
	if err != nil {
		return nil, err
	}
	created, _, err := insertGrantsInTx(ctx, tx, grants)
	if err != nil {
		return nil, err
	}
	result.GrantsCreated = created
	return result, nil
}
