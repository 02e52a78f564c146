package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/webxmedia/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, form *model.ContactForm) error
	listFunc   func(ctx context.Context, limit int) ([]*model.ContactForm, error)
}

func (m *mockContactService) Submit(ctx context.Context, form *model.ContactForm) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, form)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context, limit int) ([]*model.ContactForm, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return nil, nil
}

const validContactBody = `{
	"name": "Test User",
	"email": "test@example.com",
	"phone": "+1 555 0100",
	"service": "Web Design & Development",
	"message": "Hello there"
}`

// ---------------------------------------------------------------------------
// POST /api/contact
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var saved *model.ContactForm
	mock := &mockContactService{
		submitFunc: func(_ context.Context, form *model.ContactForm) error {
			saved = form
			return nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validContactBody))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if saved == nil || saved.Email != "test@example.com" || saved.Service != "Web Design & Development" {
		t.Errorf("unexpected saved form: %+v", saved)
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_MissingRequiredFields(t *testing.T) {
	bodies := map[string]string{
		"name":    `{"email":"e@e.com","service":"SEO","message":"m"}`,
		"email":   `{"name":"n","service":"SEO","message":"m"}`,
		"service": `{"name":"n","email":"e@e.com","message":"m"}`,
		"message": `{"name":"n","email":"e@e.com","service":"SEO"}`,
	}
	for field, body := range bodies {
		submitCalled := false
		mock := &mockContactService{
			submitFunc: func(_ context.Context, _ *model.ContactForm) error {
				submitCalled = true
				return nil
			},
		}
		h := NewContactHandler(mock)

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Submit(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("missing %s: expected 400, got %d", field, rec.Code)
		}
		if submitCalled {
			t.Errorf("missing %s: nothing may be persisted", field)
		}
	}
}

func TestContactHandler_Submit_PhoneOptional(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	body := `{"name":"n","email":"e@e.com","service":"SEO","message":"m"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 without phone, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(_ context.Context, _ *model.ContactForm) error {
			return errors.New("db write failed")
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validContactBody))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "db write failed") {
		t.Errorf("expected error text as detail, got %s", rec.Body.String())
	}
}

// ---------------------------------------------------------------------------
// GET /api/contact
// ---------------------------------------------------------------------------

func TestContactHandler_List_ReturnsForms(t *testing.T) {
	var capturedLimit int
	mock := &mockContactService{
		listFunc: func(_ context.Context, limit int) ([]*model.ContactForm, error) {
			capturedLimit = limit
			return []*model.ContactForm{
				{ID: "1", Name: "A", Email: "a@b.com", Service: "SEO", Message: "m"},
			}, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if capturedLimit != 1000 {
		t.Errorf("expected listing bounded to 1000, got %d", capturedLimit)
	}
	var forms []*model.ContactForm
	if err := json.Unmarshal(rec.Body.Bytes(), &forms); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(forms) != 1 || forms[0].Email != "a@b.com" {
		t.Errorf("unexpected forms: %+v", forms)
	}
}

func TestContactHandler_List_EmptyIsArrayNotNull(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty array, got %q", got)
	}
}

func TestContactHandler_List_ServiceError(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(_ context.Context, _ int) ([]*model.ContactForm, error) {
			return nil, errors.New("db read failed")
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
