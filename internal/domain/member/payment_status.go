package member

type PaymentIssue string

const (
	IssueInitiationFeeUnpaid PaymentIssue = "initiation_fee_unpaid"
	IssueNoSubscription      PaymentIssue = "no_subscription"
	IssueDuesPastDue         PaymentIssue = "dues_past_due"
)

const (
	PaymentStatusCurrent        = "current"
	PaymentStatusMultipleIssues = "multiple_issues"
	PaymentStatusNoMembership   = "no_membership"
)

// PaymentStatus is the composite payment health used to gate benefits.
type PaymentStatus struct {
	Status               string
	Issues               []PaymentIssue
	IsFullyPaid          bool
	HasBlockingIssues    bool
	HasNonBlockingIssues bool
	membershipLoaded     bool
}

// Restricted reports whether benefits must be withheld entirely. A missing
// membership is restricted even though it carries no individual issue.
func (p PaymentStatus) Restricted() bool {
	return !p.membershipLoaded || p.HasBlockingIssues
}

// DerivePaymentStatus evaluates each payment rule independently and combines
// them. A past-due balance degrades benefits without blocking them.
func DerivePaymentStatus(m *Member) PaymentStatus {
	if m == nil {
		return PaymentStatus{
			Status: PaymentStatusNoMembership,
			Issues: []PaymentIssue{},
		}
	}

	feeUnpaid := m.annualFeePaidAt == nil
	noSubscription := !m.HasSubscription() && m.status != StatusPendingActivation
	pastDue := m.status == StatusPastDue

	issues := make([]PaymentIssue, 0, 3)
	if feeUnpaid {
		issues = append(issues, IssueInitiationFeeUnpaid)
	}
	if noSubscription {
		issues = append(issues, IssueNoSubscription)
	}
	if pastDue {
		issues = append(issues, IssueDuesPastDue)
	}

	status := PaymentStatusCurrent
	switch {
	case len(issues) > 1:
		status = PaymentStatusMultipleIssues
	case len(issues) == 1:
		status = string(issues[0])
	}

	return PaymentStatus{
		Status:               status,
		Issues:               issues,
		IsFullyPaid:          !feeUnpaid && m.HasSubscription() && !pastDue,
		HasBlockingIssues:    feeUnpaid || noSubscription,
		HasNonBlockingIssues: pastDue,
		membershipLoaded:     true,
	}
}
