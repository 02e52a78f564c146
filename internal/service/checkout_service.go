package service

import "context"

// CheckoutRequest carries the validated inputs for one checkout session.
// Origin is the scheme://host of the inbound request; redirect and webhook
// targets are derived from it.
type CheckoutRequest struct {
	PlanType      string
	CustomerEmail string
	CustomAmount  float64
	Origin        string
}

// CheckoutSession is returned to the caller after session creation.
type CheckoutSession struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// CheckoutStatus is the provider-authoritative view returned by a status
// query. It reflects what Stripe reports, not the locally stored record.
type CheckoutStatus struct {
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   float64           `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
}

// CheckoutService owns the checkout flow and both reconciliation paths.
type CheckoutService interface {
	// CreateSession resolves the plan price, creates a Stripe checkout
	// session and persists the local Transaction mirror.
	// Returns model.ErrInvalidPlanType or model.ErrInvalidCustomAmount
	// for client input errors.
	CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)

	// GetStatus queries Stripe for the session's current status, applies
	// it to the matching local Transaction if one exists (unknown
	// sessions are a silent no-op), and returns the provider view.
	GetStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error)

	// ProcessWebhook verifies a webhook delivery and applies the carried
	// payment status to the matching local Transaction.
	ProcessWebhook(ctx context.Context, payload []byte, sigHeader string) error
}
