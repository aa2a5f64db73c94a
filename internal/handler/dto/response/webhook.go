package response

import (
	"clubhouse/internal/usecase/commands"

	"github.com/google/uuid"
)

type WebhookResponse struct {
	Received bool       `json:"received"`
	Outcome  string     `json:"outcome"`
	MemberID *uuid.UUID `json:"memberId,omitempty"`
}

func FromBillingOutcome(o *commands.BillingOutcome) *WebhookResponse {
	return &WebhookResponse{
		Received: true,
		Outcome:  o.Outcome,
		MemberID: o.MemberID,
	}
}
