package shared

import (
	"context"

	"clubhouse/internal/domain/user"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationWaitlistSpotAvailable NotificationType = "waitlist_spot_available"
)

type Notification struct {
	Type      NotificationType
	Recipient user.Email
	Data      map[string]string
}

// Notifier delivers a message to a member. Callers treat delivery as
// best-effort.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// ContactDirectory resolves a user id to a reachable address.
type ContactDirectory interface {
	EmailForUser(ctx context.Context, userID uuid.UUID) (user.Email, error)
}
