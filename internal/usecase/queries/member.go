package queries

import (
	"context"

	"clubhouse/internal/domain/member"
	"clubhouse/internal/infra"

	"github.com/google/uuid"
)

type MemberReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*member.Member, error)
}

type MemberQueries interface {
	PaymentStatus(ctx context.Context, userID uuid.UUID) (*PaymentStatusView, error)
}

type memberQueriesImpl struct {
	members MemberReadStore
}

func NewMemberQueries(members MemberReadStore) MemberQueries {
	return &memberQueriesImpl{members: members}
}

// PaymentStatus reports no_membership instead of an error when the user has
// no membership row.
func (q *memberQueriesImpl) PaymentStatus(ctx context.Context, userID uuid.UUID) (*PaymentStatusView, error) {
	m, err := q.members.FindByUserID(ctx, userID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		m = nil
	}
	return toPaymentStatusView(member.DerivePaymentStatus(m)), nil
}

func toPaymentStatusView(ps member.PaymentStatus) *PaymentStatusView {
	issues := make([]string, 0, len(ps.Issues))
	for _, i := range ps.Issues {
		issues = append(issues, string(i))
	}
	return &PaymentStatusView{
		Status:               ps.Status,
		Issues:               issues,
		IsFullyPaid:          ps.IsFullyPaid,
		HasBlockingIssues:    ps.HasBlockingIssues,
		HasNonBlockingIssues: ps.HasNonBlockingIssues,
		Restricted:           ps.Restricted(),
	}
}
