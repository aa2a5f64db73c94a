package response

import (
	"time"

	"clubhouse/internal/domain/freeze"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FreezeRequestResponse struct {
	ID              uuid.UUID  `json:"id"`
	MemberID        uuid.UUID  `json:"memberId"`
	Status          string     `json:"status"`
	RequestedStart  string     `json:"requestedStart"`
	RequestedEnd    string     `json:"requestedEnd"`
	DurationMonths  int        `json:"durationMonths"`
	FreezeYear      int        `json:"freezeYear"`
	FeeTotal        string     `json:"feeTotal"`
	FeePaid         bool       `json:"feePaid"`
	ActualStart     *string    `json:"actualStart,omitempty"`
	ActualEnd       *string    `json:"actualEnd,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func FromFreezeRequest(r *freeze.Request) *FreezeRequestResponse {
	return &FreezeRequestResponse{
		ID:              r.ID(),
		MemberID:        r.MemberID(),
		Status:          r.Status().String(),
		RequestedStart:  r.RequestedStart().Format(time.DateOnly),
		RequestedEnd:    r.RequestedEnd().Format(time.DateOnly),
		DurationMonths:  r.DurationMonths(),
		FreezeYear:      r.FreezeYear(),
		FeeTotal:        FormatCents(r.FeeTotalCents()),
		FeePaid:         r.FeePaid(),
		ActualStart:     formatDate(r.ActualStart()),
		ActualEnd:       formatDate(r.ActualEnd()),
		RejectionReason: r.RejectionReason(),
		ReviewedAt:      r.ReviewedAt(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

// FormatCents renders an amount in minor units as a fixed two-place decimal.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}
