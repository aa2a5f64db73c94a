package errs

import "errors"

// Sentinel errors raised at the transport edge
var (
	// Auth errors
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrInsufficientRole    = errors.New("insufficient role")
	ErrInvalidIDParam      = errors.New("invalid id parameter")
	ErrInvalidQueryParam   = errors.New("invalid query parameter")
	ErrMissingUserIdentity = errors.New("authenticated user missing from context")

	// Webhook errors
	ErrWebhookNotConfigured    = errors.New("webhook secret not configured")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrUnreadableWebhookBody   = errors.New("webhook payload could not be read")
)
