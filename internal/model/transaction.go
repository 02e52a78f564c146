package model

import "time"

// Transaction statuses applied when a checkout session is first persisted.
// Afterwards both fields only mirror whatever vocabulary Stripe reports.
const (
	PaymentStatusPending = "pending"
	SessionStatusInitiated = "initiated"
)

// Transaction is the local mirror of one Stripe checkout session.
// SessionID is assigned by Stripe at creation time and never changes;
// PaymentStatus and Status are overwritten only by the reconciliation
// paths (status query or webhook).
type Transaction struct {
	ID            string            `json:"id"`
	SessionID     string            `json:"session_id"`
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	PlanType      string            `json:"plan_type"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	PaymentStatus string            `json:"payment_status"`
	Status        string            `json:"status"`
	Metadata      map[string]string `json:"metadata"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
