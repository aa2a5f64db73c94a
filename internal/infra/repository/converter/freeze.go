package converter

import (
	"time"

	"clubhouse/internal/domain/freeze"
	"clubhouse/internal/infra/query"
	"clubhouse/internal/pkg/pgconv"
)

func FreezeRequestFromRow(row query.FreezeRequests, loc *time.Location) (*freeze.Request, error) {
	status, err := freeze.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return freeze.ReconstructRequest(freeze.ReconstructParams{
		ID:              row.ID,
		MemberID:        row.MemberID,
		RequestedStart:  pgconv.DateFromPgtype(row.RequestedStartDate, loc),
		RequestedEnd:    pgconv.DateFromPgtype(row.RequestedEndDate, loc),
		DurationMonths:  int(row.DurationMonths),
		Status:          status,
		FreezeYear:      int(row.FreezeYear),
		FeeTotalCents:   row.FreezeFeeTotalCents,
		FeePaid:         row.FeePaid,
		ActualStart:     pgconv.DatePtrFromPgtype(row.ActualStartDate, loc),
		ActualEnd:       pgconv.DatePtrFromPgtype(row.ActualEndDate, loc),
		RejectionReason: pgconv.StringPtrFromPgtype(row.RejectionReason),
		ReviewedBy:      pgconv.UUIDPtrFromPgtype(row.ReviewedBy),
		ReviewedAt:      pgconv.TimePtrFromPgtype(row.ReviewedAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func FreezeRequestsFromRows(rows []query.FreezeRequests, loc *time.Location) ([]*freeze.Request, error) {
	out := make([]*freeze.Request, 0, len(rows))
	for _, row := range rows {
		r, err := FreezeRequestFromRow(row, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func FreezeRequestToCreateParams(r *freeze.Request) query.CreateFreezeRequestParams {
	return query.CreateFreezeRequestParams{
		ID:                  r.ID(),
		MemberID:            r.MemberID(),
		RequestedStartDate:  pgconv.DateToPgtype(r.RequestedStart()),
		RequestedEndDate:    pgconv.DateToPgtype(r.RequestedEnd()),
		DurationMonths:      int32(r.DurationMonths()),
		Status:              r.Status().String(),
		FreezeYear:          int32(r.FreezeYear()),
		FreezeFeeTotalCents: r.FeeTotalCents(),
		FeePaid:             r.FeePaid(),
		CreatedAt:           pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func FreezeRequestToUpdateParams(r *freeze.Request) query.UpdateFreezeRequestParams {
	return query.UpdateFreezeRequestParams{
		ID:              r.ID(),
		Status:          r.Status().String(),
		FeePaid:         r.FeePaid(),
		ActualStartDate: pgconv.DatePtrToPgtype(r.ActualStart()),
		ActualEndDate:   pgconv.DatePtrToPgtype(r.ActualEnd()),
		RejectionReason: pgconv.StringPtrToPgtype(r.RejectionReason()),
		ReviewedBy:      pgconv.UUIDPtrToPgtype(r.ReviewedBy()),
		ReviewedAt:      pgconv.TimePtrToPgtype(r.ReviewedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}
