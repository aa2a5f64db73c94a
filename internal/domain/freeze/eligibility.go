package freeze

import (
	"errors"

	"github.com/samber/lo"
)

const (
	MaxMonthsPerYear  = 2
	MaxFreezesPerYear = 2
)

var (
	ErrRequestOutstanding = errors.New("a freeze request is already pending or approved")
	ErrYearlyLimitReached = errors.New("yearly freeze limit reached")
	ErrExceedsRemaining   = errors.New("requested duration exceeds remaining freeze months")
)

type Eligibility struct {
	Year            int
	CanFreeze       bool
	MonthsUsed      int
	MonthsRemaining int
	FreezesUsed     int
	HasPending      bool
}

// CheckEligibility summarises a member's freeze allowance for one freeze year.
// Rejected and cancelled requests never count.
func CheckEligibility(requests []*Request, year int) Eligibility {
	counted := lo.Filter(requests, func(r *Request, _ int) bool {
		return r != nil && r.freezeYear == year && !r.status.IsWithdrawn()
	})
	taken := lo.Filter(counted, func(r *Request, _ int) bool {
		return r.status.ConsumesAllowance()
	})

	hasPending := lo.ContainsBy(counted, func(r *Request) bool {
		return r.status.IsOutstanding()
	})
	monthsUsed := lo.SumBy(taken, func(r *Request) int {
		return r.durationMonths
	})
	monthsRemaining := max(0, MaxMonthsPerYear-monthsUsed)
	freezesUsed := len(taken)

	return Eligibility{
		Year:            year,
		CanFreeze:       monthsRemaining > 0 && !hasPending && freezesUsed < MaxFreezesPerYear,
		MonthsUsed:      monthsUsed,
		MonthsRemaining: monthsRemaining,
		FreezesUsed:     freezesUsed,
		HasPending:      hasPending,
	}
}

// Permits checks a prospective request of the given length against the allowance.
func (e Eligibility) Permits(months int) error {
	switch {
	case e.HasPending:
		return ErrRequestOutstanding
	case !e.CanFreeze:
		return ErrYearlyLimitReached
	case months > e.MonthsRemaining:
		return ErrExceedsRemaining
	}
	return nil
}
