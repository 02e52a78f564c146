package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/webxmedia/backend/internal/model"
)

// TransactionRepository defines the persistence interface for payment
// transactions. Status updates are keyed by the Stripe session ID because
// both reconciliation paths only ever see that identifier.
type TransactionRepository interface {
	Save(ctx context.Context, tx *model.Transaction) error
	FindBySessionID(ctx context.Context, sessionID string) (*model.Transaction, error)
	// UpdateStatus overwrites both status fields (pull reconciliation).
	// Returns ErrNotFound when no transaction has the given session ID.
	UpdateStatus(ctx context.Context, sessionID, paymentStatus, status string) error
	// UpdatePaymentStatus overwrites the payment status only (push
	// reconciliation). Returns ErrNotFound when no transaction matches.
	UpdatePaymentStatus(ctx context.Context, sessionID, paymentStatus string) error
}

type pgTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgTransactionRepository returns a PostgreSQL-backed TransactionRepository.
func NewPgTransactionRepository(pool *pgxpool.Pool) TransactionRepository {
	return &pgTransactionRepository{pool: pool}
}

const transactionSelectCols = `id, session_id, amount, currency, plan_type,
	COALESCE(customer_email, ''), payment_status, status, metadata,
	created_at, updated_at`

func scanTransaction(scan func(...any) error) (*model.Transaction, error) {
	tx := &model.Transaction{}
	var metadata []byte
	if err := scan(
		&tx.ID, &tx.SessionID, &tx.Amount, &tx.Currency, &tx.PlanType,
		&tx.CustomerEmail, &tx.PaymentStatus, &tx.Status, &metadata,
		&tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &tx.Metadata); err != nil {
			return nil, err
		}
	}
	return tx, nil
}

func (r *pgTransactionRepository) Save(ctx context.Context, tx *model.Transaction) error {
	metadata, err := json.Marshal(tx.Metadata)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO payment_transactions
		 (id, session_id, amount, currency, plan_type, customer_email,
		  payment_status, status, metadata, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11)`,
		tx.ID, tx.SessionID, tx.Amount, tx.Currency, tx.PlanType,
		tx.CustomerEmail, tx.PaymentStatus, tx.Status, metadata,
		tx.CreatedAt, tx.UpdatedAt,
	)
	return err
}

func (r *pgTransactionRepository) FindBySessionID(ctx context.Context, sessionID string) (*model.Transaction, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+transactionSelectCols+`
		 FROM payment_transactions WHERE session_id = $1`,
		sessionID)
	tx, err := scanTransaction(row.Scan)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tx, nil
}

// UpdateStatus applies the provider-reported view from a status query.
// updated_at is clamped with GREATEST so it never regresses even if two
// reconciliations race.
func (r *pgTransactionRepository) UpdateStatus(ctx context.Context, sessionID, paymentStatus, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE payment_transactions
		 SET payment_status = $2, status = $3,
		     updated_at = GREATEST(NOW(), updated_at)
		 WHERE session_id = $1`,
		sessionID, paymentStatus, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePaymentStatus applies the payment status carried by a webhook event.
func (r *pgTransactionRepository) UpdatePaymentStatus(ctx context.Context, sessionID, paymentStatus string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE payment_transactions
		 SET payment_status = $2,
		     updated_at = GREATEST(NOW(), updated_at)
		 WHERE session_id = $1`,
		sessionID, paymentStatus)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
