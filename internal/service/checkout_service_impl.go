package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/webxmedia/backend/internal/model"
	"github.com/webxmedia/backend/internal/repository"
	pkgstripe "github.com/webxmedia/backend/pkg/stripe"
)

// successURLPlaceholder is substituted by Stripe with the real session ID
// at redirect time.
const successURLPlaceholder = "{CHECKOUT_SESSION_ID}"

// checkoutServiceImpl is the production implementation of CheckoutService.
type checkoutServiceImpl struct {
	client pkgstripe.Client
	repo   repository.TransactionRepository
}

// NewCheckoutService creates a CheckoutService backed by the given Stripe
// client and transaction repository.
func NewCheckoutService(client pkgstripe.Client, repo repository.TransactionRepository) CheckoutService {
	return &checkoutServiceImpl{client: client, repo: repo}
}

// CreateSession validates the plan selection, creates the provider session
// and persists the Transaction mirror with default statuses.
func (s *checkoutServiceImpl) CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	plan, err := model.ResolvePlan(req.PlanType, req.CustomAmount)
	if err != nil {
		return nil, err
	}

	session, err := s.client.CreateCheckoutSession(ctx, pkgstripe.CheckoutParams{
		Amount:        plan.Amount,
		Currency:      model.CurrencyUSD,
		ProductName:   plan.Name,
		CustomerEmail: req.CustomerEmail,
		SuccessURL:    req.Origin + "/checkout/success?session_id=" + successURLPlaceholder,
		CancelURL:     req.Origin + "/checkout/cancel",
		Metadata: map[string]string{
			"plan_type":      req.PlanType,
			"customer_email": req.CustomerEmail,
			"plan_name":      plan.Name,
			// Stripe registers webhook endpoints out-of-band; the URL is
			// carried in metadata so operators can tell which deployment
			// created the session.
			"webhook_url": req.Origin + "/api/webhook/stripe",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	now := time.Now().UTC()
	tx := &model.Transaction{
		ID:            uuid.NewString(),
		SessionID:     session.SessionID,
		Amount:        plan.Amount,
		Currency:      model.CurrencyUSD,
		PlanType:      req.PlanType,
		CustomerEmail: req.CustomerEmail,
		PaymentStatus: model.PaymentStatusPending,
		Status:        model.SessionStatusInitiated,
		Metadata: map[string]string{
			"plan_name":    plan.Name,
			"checkout_url": session.URL,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Save(ctx, tx); err != nil {
		// Stripe now holds a session this system has no record of;
		// operators reconcile manually.
		slog.Warn("checkout session created but not persisted",
			"session_id", session.SessionID, "error", err)
		return nil, fmt.Errorf("persist transaction: %w", err)
	}

	return &CheckoutSession{URL: session.URL, SessionID: session.SessionID}, nil
}

// GetStatus pulls the provider view, reconciles the local Transaction
// (last-write-wins, silent no-op for unknown sessions) and returns the
// provider view to the caller.
func (s *checkoutServiceImpl) GetStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error) {
	status, err := s.client.GetCheckoutStatus(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get checkout status: %w", err)
	}

	err = s.repo.UpdateStatus(ctx, sessionID, status.PaymentStatus, status.Status)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		slog.Debug("status query for session with no local transaction", "session_id", sessionID)
	case err != nil:
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	return &CheckoutStatus{
		Status:        status.Status,
		PaymentStatus: status.PaymentStatus,
		AmountTotal:   status.AmountTotal,
		Currency:      status.Currency,
		Metadata:      status.Metadata,
	}, nil
}

// ProcessWebhook verifies the delivery and applies the payment status.
// Events without a session ID, and sessions with no local record, are
// acknowledged without any update.
func (s *checkoutServiceImpl) ProcessWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := s.client.VerifyWebhook(payload, sigHeader)
	if err != nil {
		return err
	}
	if event.SessionID == "" {
		return nil
	}

	err = s.repo.UpdatePaymentStatus(ctx, event.SessionID, event.PaymentStatus)
	if errors.Is(err, repository.ErrNotFound) {
		slog.Debug("webhook for session with no local transaction",
			"session_id", event.SessionID, "type", event.Type)
		return nil
	}
	return err
}
