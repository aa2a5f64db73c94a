package converter

import (
	"clubhouse/internal/domain/waitlist"
	"clubhouse/internal/infra/query"
	"clubhouse/internal/pkg/pgconv"
)

func WaitlistEntryFromRow(row query.ClassWaitlist) (*waitlist.Entry, error) {
	status, err := waitlist.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return waitlist.ReconstructEntry(
		row.ID, row.SessionID, row.UserID,
		int(row.Position),
		status,
		pgconv.TimePtrFromPgtype(row.NotifiedAt),
		pgconv.TimePtrFromPgtype(row.ClaimExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func SessionFromRow(row query.ClassSessions) *waitlist.Session {
	return &waitlist.Session{
		ID:                row.ID,
		ClassName:         row.ClassName,
		StartsAt:          pgconv.TimeFromPgtype(row.StartsAt),
		CurrentEnrollment: int(row.CurrentEnrollment),
		MaxCapacity:       int(row.MaxCapacity),
	}
}

func WaitlistEntryToNotifiedParams(e *waitlist.Entry) query.MarkWaitlistEntryNotifiedParams {
	return query.MarkWaitlistEntryNotifiedParams{
		ID:             e.ID(),
		NotifiedAt:     pgconv.TimePtrToPgtype(e.NotifiedAt()),
		ClaimExpiresAt: pgconv.TimePtrToPgtype(e.ClaimExpiresAt()),
	}
}
