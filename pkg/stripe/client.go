// Package stripe wraps the official Stripe SDK behind the three
// capabilities this system needs: creating hosted checkout sessions,
// querying session status, and verifying webhook deliveries.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	stripego "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"github.com/stripe/stripe-go/v72/webhook"
)

// CheckoutParams carries everything needed to create one hosted checkout.
type CheckoutParams struct {
	Amount        float64 // major units ("dollars")
	Currency      string
	ProductName   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// CheckoutSession is the provider-issued handle for one checkout attempt.
type CheckoutSession struct {
	SessionID string
	URL       string
}

// CheckoutStatus is the provider-authoritative view of a session.
// AmountTotal is converted back to major units at this boundary so the
// rest of the system speaks a single unit.
type CheckoutStatus struct {
	Status        string
	PaymentStatus string
	AmountTotal   float64
	Currency      string
	Metadata      map[string]string
}

// WebhookEvent is the distilled result of a verified webhook delivery.
// SessionID is empty for events that do not concern a checkout session.
type WebhookEvent struct {
	Type          string
	SessionID     string
	PaymentStatus string
}

// Client is the payment-provider capability interface.
type Client interface {
	// CreateCheckoutSession creates a hosted checkout session and returns
	// its URL and session ID.
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (CheckoutSession, error)
	// GetCheckoutStatus retrieves the current provider-side status of a session.
	GetCheckoutStatus(ctx context.Context, sessionID string) (CheckoutStatus, error)
	// VerifyWebhook checks the Stripe-Signature header against the raw
	// payload and returns the parsed event on success.
	VerifyWebhook(payload []byte, sigHeader string) (WebhookEvent, error)
}

// RealClient implements Client against the Stripe API.
type RealClient struct {
	api           *client.API
	webhookSecret string
}

// NewClient creates a RealClient authenticated with the given secret key.
func NewClient(secretKey, webhookSecret string) *RealClient {
	return &RealClient{
		api:           client.New(secretKey, nil),
		webhookSecret: webhookSecret,
	}
}

var _ Client = (*RealClient)(nil)

// CreateCheckoutSession creates a one-time payment Checkout Session.
func (c *RealClient) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (CheckoutSession, error) {
	p := &stripego.CheckoutSessionParams{
		Mode:       stripego.String(string(stripego.CheckoutSessionModePayment)),
		SuccessURL: stripego.String(params.SuccessURL),
		CancelURL:  stripego.String(params.CancelURL),
		PaymentMethodTypes: []*string{
			stripego.String("card"),
		},
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{
				PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripego.String(params.Currency),
					UnitAmount: stripego.Int64(toMinorUnits(params.Amount)),
					ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripego.String(params.ProductName),
					},
				},
				Quantity: stripego.Int64(1),
			},
		},
	}
	p.Context = ctx
	if params.CustomerEmail != "" {
		p.CustomerEmail = stripego.String(params.CustomerEmail)
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}

	s, err := c.api.CheckoutSessions.New(p)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("stripe create session: %w", err)
	}
	return CheckoutSession{SessionID: s.ID, URL: s.URL}, nil
}

// GetCheckoutStatus retrieves a Checkout Session by ID. Unknown sessions
// surface whatever error Stripe reports; no local validation is applied.
func (c *RealClient) GetCheckoutStatus(ctx context.Context, sessionID string) (CheckoutStatus, error) {
	p := &stripego.CheckoutSessionParams{}
	p.Context = ctx
	s, err := c.api.CheckoutSessions.Get(sessionID, p)
	if err != nil {
		return CheckoutStatus{}, fmt.Errorf("stripe get session: %w", err)
	}
	return CheckoutStatus{
		Status:        string(s.Status),
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   fromMinorUnits(s.AmountTotal),
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}, nil
}

// VerifyWebhook validates the signature header and extracts the session
// ID and payment status for checkout.session.* events. Other event types
// verify successfully but carry no session ID.
func (c *RealClient) VerifyWebhook(payload []byte, sigHeader string) (WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
	if err != nil {
		return WebhookEvent{}, fmt.Errorf("stripe webhook: %w", err)
	}

	out := WebhookEvent{Type: event.Type}
	if !strings.HasPrefix(event.Type, "checkout.session.") {
		return out, nil
	}

	var object struct {
		ID            string `json:"id"`
		PaymentStatus string `json:"payment_status"`
	}
	if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
		return WebhookEvent{}, fmt.Errorf("stripe webhook: decode event object: %w", err)
	}
	out.SessionID = object.ID
	out.PaymentStatus = object.PaymentStatus
	return out, nil
}

// toMinorUnits converts a major-unit amount to Stripe's integer cents.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// fromMinorUnits converts Stripe's integer cents back to major units.
func fromMinorUnits(cents int64) float64 {
	return float64(cents) / 100
}
