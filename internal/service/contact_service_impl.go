package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/webxmedia/backend/internal/model"
	"github.com/webxmedia/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit assigns a generated ID and UTC creation timestamp, then persists
// the form. Forms are immutable after this call.
func (s *contactServiceImpl) Submit(ctx context.Context, form *model.ContactForm) error {
	form.ID = uuid.NewString()
	form.CreatedAt = time.Now().UTC()
	return s.repo.Save(ctx, form)
}

// List returns up to limit stored forms.
func (s *contactServiceImpl) List(ctx context.Context, limit int) ([]*model.ContactForm, error) {
	return s.repo.List(ctx, limit)
}
