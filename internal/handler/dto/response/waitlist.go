package response

import (
	"time"

	"clubhouse/internal/usecase/commands"

	"github.com/google/uuid"
)

type PromotionResponse struct {
	Promoted       bool       `json:"promoted"`
	Reason         string     `json:"reason"`
	EntryID        *uuid.UUID `json:"entryId,omitempty"`
	UserID         *uuid.UUID `json:"userId,omitempty"`
	ClaimExpiresAt *time.Time `json:"claimExpiresAt,omitempty"`
	Notified       bool       `json:"notified"`
}

func FromPromotionResult(r *commands.PromotionResult) *PromotionResponse {
	return &PromotionResponse{
		Promoted:       r.Promoted,
		Reason:         r.Reason,
		EntryID:        r.EntryID,
		UserID:         r.UserID,
		ClaimExpiresAt: r.ClaimExpiresAt,
		Notified:       r.Notified,
	}
}
