package model

import "time"

// ContactForm represents a submission from the site's contact form.
// Records are immutable once stored; this system never updates or
// deletes them.
type ContactForm struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
