package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/webxmedia/backend/internal/model"
)

func TestPgContactRepository_SaveAndList(t *testing.T) {
	pool := testPool(t)
	repo := NewPgContactRepository(pool)
	ctx := context.Background()

	unique := fmt.Sprintf("%d", time.Now().UnixNano())
	form := &model.ContactForm{
		ID:        "contact-" + unique,
		Name:      "Test User",
		Email:     fmt.Sprintf("test-%s@example.com", unique),
		Phone:     "+1 555 0100",
		Service:   "Web Design & Development",
		Message:   "Integration test message",
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Save(ctx, form); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	forms, err := repo.List(ctx, 1000)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	var found *model.ContactForm
	for _, f := range forms {
		if f.ID == form.ID {
			found = f
			break
		}
	}
	if found == nil {
		t.Fatalf("saved form %s not returned by List", form.ID)
	}
	if found.Email != form.Email || found.Service != form.Service || found.Message != form.Message {
		t.Errorf("round-trip mismatch: got %+v", found)
	}
	if found.Phone != form.Phone {
		t.Errorf("expected phone %q, got %q", form.Phone, found.Phone)
	}
}

func TestPgContactRepository_ListRespectsLimit(t *testing.T) {
	pool := testPool(t)
	repo := NewPgContactRepository(pool)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		form := &model.ContactForm{
			ID:        fmt.Sprintf("contact-limit-%d-%d", time.Now().UnixNano(), i),
			Name:      "Limit Tester",
			Email:     "limit@example.com",
			Service:   "SEO",
			Message:   "limit test",
			CreatedAt: time.Now().UTC(),
		}
		if err := repo.Save(ctx, form); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	forms, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(forms) > 2 {
		t.Errorf("expected at most 2 forms, got %d", len(forms))
	}
}
