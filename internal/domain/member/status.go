package member

import "errors"

var (
	ErrInvalidStatus           = errors.New("invalid member status")
	ErrInvalidStatusTransition = errors.New("invalid member status transition")
)

type Status string

const (
	StatusPendingActivation Status = "pending_activation"
	StatusActive            Status = "active"
	StatusPastDue           Status = "past_due"
	StatusFrozen            Status = "frozen"
	StatusCancelled         Status = "cancelled"
)

// transitions is the membership lifecycle graph; cancelled is terminal.
var transitions = map[Status][]Status{
	StatusPendingActivation: {StatusActive},
	StatusActive:            {StatusPastDue, StatusFrozen, StatusCancelled},
	StatusPastDue:           {StatusActive, StatusCancelled},
	StatusFrozen:            {StatusActive},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingActivation, StatusActive, StatusPastDue, StatusFrozen, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
