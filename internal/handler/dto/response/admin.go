package response

import (
	"time"

	"clubhouse/internal/usecase/commands"

	"github.com/google/uuid"
)

type IssuanceResponse struct {
	Created          int `json:"created"`
	Skipped          int `json:"skipped"`
	Failed           int `json:"failed"`
	MembersProcessed int `json:"membersProcessed"`
}

func FromIssuanceResult(r *commands.IssuanceResult) *IssuanceResponse {
	return &IssuanceResponse{
		Created:          r.Created,
		Skipped:          r.Skipped,
		Failed:           r.Failed,
		MembersProcessed: r.MembersProcessed,
	}
}

type ActivationResponse struct {
	MemberID      uuid.UUID `json:"memberId"`
	CycleStart    string    `json:"cycleStart"`
	CycleEnd      string    `json:"cycleEnd"`
	ExpiresAt     time.Time `json:"expiresAt"`
	GrantsCreated int       `json:"grantsCreated"`
}

func FromActivationResult(r *commands.ActivationResult) *ActivationResponse {
	return &ActivationResponse{
		MemberID:      r.MemberID,
		CycleStart:    r.CycleStart.Format(time.DateOnly),
		CycleEnd:      r.CycleEnd.Format(time.DateOnly),
		ExpiresAt:     r.ExpiresAt,
		GrantsCreated: r.GrantsCreated,
	}
}
