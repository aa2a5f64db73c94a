package credit

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveCredits  = errors.New("credits total must be positive")
	ErrRemainingOutOfRange = errors.New("credits remaining must be between 0 and total")
)

// Grant is one allocation of a single credit kind to a member for one cycle.
// At most one grant exists per (member, kind, cycle start).
type Grant struct {
	id               uuid.UUID
	memberID         uuid.UUID
	kind             Kind
	creditsTotal     int
	creditsRemaining int
	cycle            Cycle
}

func NewGrant(memberID uuid.UUID, kind Kind, credits int, cycle Cycle) (*Grant, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if credits <= 0 {
		return nil, ErrNonPositiveCredits
	}
	return &Grant{
		id:               uuid.New(),
		memberID:         memberID,
		kind:             kind,
		creditsTotal:     credits,
		creditsRemaining: credits,
		cycle:            cycle,
	}, nil
}

// GrantsFor expands a bundle into one grant per kind with a positive amount.
func GrantsFor(memberID uuid.UUID, bundle Bundle, cycle Cycle) ([]*Grant, error) {
	grants := make([]*Grant, 0, len(Kinds))
	for _, k := range Kinds {
		amount := bundle.Amount(k)
		if amount <= 0 {
			continue
		}
		g, err := NewGrant(memberID, k, amount, cycle)
		if err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}
	return grants, nil
}

func ReconstructGrant(
	id, memberID uuid.UUID,
	kind Kind,
	total, remaining int,
	cycleStart, cycleEnd, expiresAt time.Time,
) (*Grant, error) {
	if remaining < 0 || remaining > total {
		return nil, ErrRemainingOutOfRange
	}
	return &Grant{
		id:               id,
		memberID:         memberID,
		kind:             kind,
		creditsTotal:     total,
		creditsRemaining: remaining,
		cycle:            Cycle{start: cycleStart, end: cycleEnd, expiresAt: expiresAt},
	}, nil
}

func (g *Grant) ID() uuid.UUID         { return g.id }
func (g *Grant) MemberID() uuid.UUID   { return g.memberID }
func (g *Grant) Kind() Kind            { return g.kind }
func (g *Grant) CreditsTotal() int     { return g.creditsTotal }
func (g *Grant) CreditsRemaining() int { return g.creditsRemaining }
func (g *Grant) Cycle() Cycle          { return g.cycle }
