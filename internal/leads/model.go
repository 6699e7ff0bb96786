package leads

import (
	"strings"
	"time"
)

// Lead represents a lead submission from the contact form or the chat widget.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message,omitempty"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FieldErrors maps a field name to a human-readable validation message.
// A nil map means the request is valid.
type FieldErrors map[string]string

// CreateLeadRequest represents the request body for creating a lead
type CreateLeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

// Normalize trims text fields. The phone keeps its raw characters here:
// validation must see them, or a value made entirely of junk would collapse
// to "" and slip through as an omitted phone. Cleaning happens after
// validation, via CleanedPhone.
func (r *CreateLeadRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
	r.Source = strings.TrimSpace(r.Source)
}

// CleanedPhone returns the phone with disallowed characters stripped, the
// form that gets persisted. Call only after Validate has accepted the raw
// value.
func (r *CreateLeadRequest) CleanedPhone() string {
	return CleanPhone(r.Phone)
}

// Validate checks every field and reports all violations together, so the
// form can render inline feedback in one pass.
func (r *CreateLeadRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if !ValidateName(r.Name) {
		errs["name"] = "Name is required"
	}
	if !ValidateEmail(r.Email) {
		errs["email"] = "Invalid email"
	}
	if !ValidatePhone(r.Phone) {
		errs["phone"] = "Invalid phone number"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
