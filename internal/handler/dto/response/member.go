package response

import "clubhouse/internal/usecase/queries"

type PaymentStatusResponse struct {
	Status               string   `json:"status"`
	Issues               []string `json:"issues"`
	IsFullyPaid          bool     `json:"isFullyPaid"`
	HasBlockingIssues    bool     `json:"hasBlockingIssues"`
	HasNonBlockingIssues bool     `json:"hasNonBlockingIssues"`
	Restricted           bool     `json:"restricted"`
}

func FromPaymentStatusView(v *queries.PaymentStatusView) *PaymentStatusResponse {
	issues := v.Issues
	if issues == nil {
		issues = []string{}
	}
	return &PaymentStatusResponse{
		Status:               v.Status,
		Issues:               issues,
		IsFullyPaid:          v.IsFullyPaid,
		HasBlockingIssues:    v.HasBlockingIssues,
		HasNonBlockingIssues: v.HasNonBlockingIssues,
		Restricted:           v.Restricted,
	}
}

type FreezeEligibilityResponse struct {
	Year            int  `json:"year"`
	CanFreeze       bool `json:"canFreeze"`
	MonthsUsed      int  `json:"monthsUsed"`
	MonthsRemaining int  `json:"monthsRemaining"`
	FreezesUsed     int  `json:"freezesUsed"`
	HasPending      bool `json:"hasPending"`
}

func FromFreezeEligibilityView(v *queries.FreezeEligibilityView) *FreezeEligibilityResponse {
	return &FreezeEligibilityResponse{
		Year:            v.Year,
		CanFreeze:       v.CanFreeze,
		MonthsUsed:      v.MonthsUsed,
		MonthsRemaining: v.MonthsRemaining,
		FreezesUsed:     v.FreezesUsed,
		HasPending:      v.HasPending,
	}
}
