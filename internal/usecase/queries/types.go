package queries

// PaymentStatusView is the payment health shown to a member.
type PaymentStatusView struct {
	Status               string   `json:"status"`
	Issues               []string `json:"issues"`
	IsFullyPaid          bool     `json:"is_fully_paid"`
	HasBlockingIssues    bool     `json:"has_blocking_issues"`
	HasNonBlockingIssues bool     `json:"has_non_blocking_issues"`
	Restricted           bool     `json:"restricted"`
}

// FreezeEligibilityView summarises a member's freeze allowance for a year.
type FreezeEligibilityView struct {
	Year            int  `json:"year"`
	CanFreeze       bool `json:"can_freeze"`
	MonthsUsed      int  `json:"months_used"`
	MonthsRemaining int  `json:"months_remaining"`
	FreezesUsed     int  `json:"freezes_used"`
	HasPending      bool `json:"has_pending"`
}
