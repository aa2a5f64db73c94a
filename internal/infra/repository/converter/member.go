package converter

import (
	"time"

	"clubhouse/internal/domain/member"
	"clubhouse/internal/infra/query"
	"clubhouse/internal/pkg/pgconv"
)

func MemberFromRow(row query.Members, loc *time.Location) (*member.Member, error) {
	status, err := member.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return member.ReconstructMember(
		row.ID, row.UserID,
		row.Tier,
		status,
		pgconv.DatePtrFromPgtype(row.MembershipStartDate, loc),
		pgconv.TimePtrFromPgtype(row.AnnualFeePaidAt),
		pgconv.StringPtrFromPgtype(row.SubscriptionRef),
		row.FoundingMember,
		row.Gender,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func MemberToUpdateParams(m *member.Member) query.UpdateMemberParams {
	return query.UpdateMemberParams{
		ID:                  m.ID(),
		Status:              m.Status().String(),
		MembershipStartDate: pgconv.DatePtrToPgtype(m.StartDate()),
		AnnualFeePaidAt:     pgconv.TimePtrToPgtype(m.AnnualFeePaidAt()),
		SubscriptionRef:     pgconv.StringPtrToPgtype(m.SubscriptionRef()),
		UpdatedAt:           pgconv.TimeToPgtype(m.UpdatedAt()),
	}
}
