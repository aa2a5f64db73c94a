//go:build unit || e2e

package builder

import (
	"time"

	"clubhouse/internal/domain/freeze"
	reqdto "clubhouse/internal/handler/dto/request"

	"github.com/google/uuid"
)

type FreezeRequestBuilder struct {
	ID             uuid.UUID
	MemberID       uuid.UUID
	RequestedStart time.Time
	DurationMonths int
	Status         freeze.Status
	FreezeYear     int
	MonthlyFee     int64
	FeePaid        bool
	ActualStart    *time.Time
	CreatedAt      time.Time
}

func NewFreezeRequestBuilder() *FreezeRequestBuilder {
	created := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	return &FreezeRequestBuilder{
		ID:             uuid.New(),
		MemberID:       uuid.New(),
		RequestedStart: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		DurationMonths: 1,
		Status:         freeze.StatusPending,
		FreezeYear:     2025,
		MonthlyFee:     2000,
		CreatedAt:      created,
	}
}

func (f *FreezeRequestBuilder) With(mutate func(*FreezeRequestBuilder)) *FreezeRequestBuilder {
	mutate(f)
	return f
}

func (f *FreezeRequestBuilder) BuildDomain() *freeze.Request {
	var actualEnd *time.Time
	if f.ActualStart != nil {
		end := f.ActualStart.AddDate(0, f.DurationMonths, 0)
		actualEnd = &end
	}
	return freeze.ReconstructRequest(freeze.ReconstructParams{
		ID:             f.ID,
		MemberID:       f.MemberID,
		RequestedStart: f.RequestedStart,
		RequestedEnd:   f.RequestedStart.AddDate(0, f.DurationMonths, 0),
		DurationMonths: f.DurationMonths,
		Status:         f.Status,
		FreezeYear:     f.FreezeYear,
		FeeTotalCents:  int64(f.DurationMonths) * f.MonthlyFee,
		FeePaid:        f.FeePaid,
		ActualStart:    f.ActualStart,
		ActualEnd:      actualEnd,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.CreatedAt,
	})
}

func (f *FreezeRequestBuilder) BuildCreateRequestDTO() reqdto.CreateFreezeRequest {
	return reqdto.CreateFreezeRequest{
		StartDate:      f.RequestedStart.Format(time.DateOnly),
		DurationMonths: f.DurationMonths,
	}
}

func (f *FreezeRequestBuilder) WithMemberID(id uuid.UUID) *FreezeRequestBuilder {
	f.MemberID = id
	return f
}

func (f *FreezeRequestBuilder) WithMonths(months int) *FreezeRequestBuilder {
	f.DurationMonths = months
	return f
}

func (f *FreezeRequestBuilder) WithStatus(status freeze.Status) *FreezeRequestBuilder {
	f.Status = status
	return f
}

func (f *FreezeRequestBuilder) WithYear(year int) *FreezeRequestBuilder {
	f.FreezeYear = year
	return f
}

// Scheduled marks the request as approved-or-later with the requested start as actual start.
func (f *FreezeRequestBuilder) Scheduled(status freeze.Status) *FreezeRequestBuilder {
	start := f.RequestedStart
	f.Status = status
	f.ActualStart = &start
	f.FeePaid = status == freeze.StatusActive || status == freeze.StatusCompleted
	return f
}
