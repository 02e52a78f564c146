package handler

import (
	"encoding/json"
	"net/http"

	"github.com/webxmedia/backend/internal/model"
	"github.com/webxmedia/backend/internal/service"
)

// maxContactList caps the number of records returned by the listing call.
const maxContactList = 1000

// ContactHandler handles contact form submission and listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// name, email, service and message are required; phone is optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	switch {
	case req.Name == "":
		writeError(w, http.StatusBadRequest, "name is required")
		return
	case req.Email == "":
		writeError(w, http.StatusBadRequest, "email is required")
		return
	case req.Service == "":
		writeError(w, http.StatusBadRequest, "service is required")
		return
	case req.Message == "":
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	form := &model.ContactForm{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	}
	if err := h.contactService.Submit(r.Context(), form); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Contact form submitted successfully",
	})
}

// List handles GET /api/contact and returns stored forms (bounded to 1000).
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	forms, err := h.contactService.List(r.Context(), maxContactList)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Return [] not null for empty lists
	if forms == nil {
		forms = []*model.ContactForm{}
	}
	writeJSON(w, http.StatusOK, forms)
}
