package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/webxmedia/backend/internal/repository"
)

// Handler carries the shared dependencies of the top-level HTTP surface:
// a database handle for liveness checks and the CORS allow-list.
type Handler struct {
	db      repository.DB
	origins []string
}

// New creates a Handler. corsOrigins is the comma-separated allow-list
// from configuration; empty or "*" means permissive.
func New(db repository.DB, corsOrigins string) *Handler {
	var origins []string
	for _, o := range strings.Split(corsOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Handler{db: db, origins: origins}
}

// CORS applies the configured cross-origin policy. With a wildcard
// allow-list every origin is accepted; otherwise the request origin is
// echoed back only when it is on the list.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed := h.allowOrigin(origin); allowed != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowed)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Stripe-Signature")
			if allowed != "*" {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) allowOrigin(origin string) string {
	for _, o := range h.origins {
		if o == "*" {
			return "*"
		}
		if o == origin {
			return origin
		}
	}
	return ""
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the {"detail": ...} error shape used by every
// endpoint except the webhook receiver.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
