package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/webxmedia/backend/internal/model"
	"github.com/webxmedia/backend/internal/service"
)

// CheckoutHandler handles checkout session creation, status queries and
// the Stripe webhook receiver.
type CheckoutHandler struct {
	svc service.CheckoutService
}

// NewCheckoutHandler creates a CheckoutHandler with the given service.
func NewCheckoutHandler(svc service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// checkoutRequest is the expected JSON body for POST /api/checkout/session.
type checkoutRequest struct {
	PlanType      string  `json:"plan_type"`
	CustomerEmail string  `json:"customer_email"`
	CustomAmount  float64 `json:"custom_amount"`
}

// CreateSession handles POST /api/checkout/session.
// Invalid plan selections are client errors; everything else surfaces as
// a 500 with the error text as detail.
func (h *CheckoutHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	session, err := h.svc.CreateSession(r.Context(), service.CheckoutRequest{
		PlanType:      req.PlanType,
		CustomerEmail: req.CustomerEmail,
		CustomAmount:  req.CustomAmount,
		Origin:        requestOrigin(r),
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidPlanType) || errors.Is(err, model.ErrInvalidCustomAmount) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Status handles GET /api/checkout/status/{session_id}.
// The returned view is provider-authoritative; unknown session IDs
// surface as whatever error Stripe reports.
func (h *CheckoutHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.GetStatus(r.Context(), r.PathValue("session_id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// Webhook handles POST /api/webhook/stripe.
// Any failure is acknowledged with a 400 and an error body: Stripe treats
// 4xx as definitive, so a bad delivery is rejected rather than retried.
func (h *CheckoutHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read request body"})
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	if err := h.svc.ProcessWebhook(r.Context(), payload, sigHeader); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// requestOrigin derives scheme://host for the inbound request, honoring
// the forwarding headers set by a reverse proxy.
func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	host := r.Host
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = fwd
	}
	return scheme + "://" + host
}
