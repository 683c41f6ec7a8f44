package commands

import (
	"context"

	"github.com/google/uuid"
)

// SessionRequest describes the checkout session opened for a freshly claimed
// booking. Metadata fields round-trip through the processor so webhook
// deliveries can be correlated without holding server-side session state.
type SessionRequest struct {
	AmountCents    int64
	Currency       string
	TransactionRef string
	BookingID      uuid.UUID
	ObligationID   uuid.UUID
	CustomerEmail  string
}

type SessionResult struct {
	SessionID   string
	RedirectURL string
}

// PaymentGateway is called after the claim transaction commits; callers own
// the compensation path when session creation fails.
type PaymentGateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (*SessionResult, error)
}
