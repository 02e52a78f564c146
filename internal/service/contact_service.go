package service

import (
	"context"

	"github.com/webxmedia/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact form. The form ID and creation
	// timestamp are populated by the implementation.
	Submit(ctx context.Context, form *model.ContactForm) error

	// List returns up to limit previously submitted forms in storage order.
	List(ctx context.Context, limit int) ([]*model.ContactForm, error)
}
