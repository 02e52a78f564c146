package handler

import "net/http"

// NewRouter wires every route of the API surface. Anything not listed
// here falls through to the mux's default 404.
func NewRouter(h *Handler, contact *ContactHandler, checkout *CheckoutHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/{$}", h.Root)
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("POST /api/contact", contact.Submit)
	mux.HandleFunc("GET /api/contact", contact.List)

	mux.HandleFunc("POST /api/checkout/session", checkout.CreateSession)
	mux.HandleFunc("GET /api/checkout/status/{session_id}", checkout.Status)

	// No auth — Stripe authenticates deliveries with its signature header.
	mux.HandleFunc("POST /api/webhook/stripe", checkout.Webhook)

	return mux
}
