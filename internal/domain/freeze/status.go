package freeze

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsOutstanding is true while the request still awaits review or activation.
func (s Status) IsOutstanding() bool {
	return s == StatusPending || s == StatusApproved
}

// ConsumesAllowance is true once the freeze has actually taken effect.
func (s Status) ConsumesAllowance() bool {
	return s == StatusActive || s == StatusCompleted
}

// IsWithdrawn covers requests that never count against the yearly cap.
func (s Status) IsWithdrawn() bool {
	return s == StatusRejected || s == StatusCancelled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
