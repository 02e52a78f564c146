package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/webxmedia/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact forms.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, form *model.ContactForm) error
	List(ctx context.Context, limit int) ([]*model.ContactForm, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_forms row. ID and CreatedAt are expected to be
// set by the caller; contact forms are immutable after this point.
func (r *PgContactRepository) Save(ctx context.Context, form *model.ContactForm) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_forms (id, name, email, phone, service, message, created_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)`,
		form.ID, form.Name, form.Email, form.Phone, form.Service, form.Message, form.CreatedAt,
	)
	return err
}

// List returns up to limit contact forms in storage order (oldest first).
func (r *PgContactRepository) List(ctx context.Context, limit int) ([]*model.ContactForm, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, COALESCE(phone, ''), service, message, created_at
		 FROM contact_forms
		 ORDER BY created_at
		 LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var forms []*model.ContactForm
	for rows.Next() {
		var f model.ContactForm
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Phone, &f.Service, &f.Message, &f.CreatedAt); err != nil {
			return nil, err
		}
		forms = append(forms, &f)
	}
	return forms, rows.Err()
}
