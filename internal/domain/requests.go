package domain

import (
	"strings"
	"time"
)

// ContactSubmission represents a contact-form submission. It lives for the
// duration of one request: bound from the body, validated, consumed to build
// a notification, then discarded. Nothing here is ever persisted.
type ContactSubmission struct {
	Email   string `json:"email"`
	Company string `json:"company"`
	Spend   string `json:"spend"`
	Message string `json:"message"`
	Source  string `json:"source,omitempty"`
	// Website is the honeypot field. Humans never see it; a non-empty
	// value marks the submission as automated.
	Website string `json:"website,omitempty"`
}

// Normalize trims all user-supplied fields in place
func (s *ContactSubmission) Normalize() {
	s.Email = strings.TrimSpace(s.Email)
	s.Company = strings.TrimSpace(s.Company)
	s.Spend = strings.TrimSpace(s.Spend)
	s.Message = strings.TrimSpace(s.Message)
	s.Source = strings.TrimSpace(s.Source)
	s.Website = strings.TrimSpace(s.Website)
}

// IsBot reports whether the honeypot field was filled in
func (s *ContactSubmission) IsBot() bool {
	return s.Website != ""
}

// LeadRequest represents a PDF download lead. Same single-request lifecycle
// as ContactSubmission.
type LeadRequest struct {
	Email   string `json:"email"`
	Website string `json:"website,omitempty"`
}

// Normalize trims all user-supplied fields in place
func (r *LeadRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Website = strings.TrimSpace(r.Website)
}

// IsBot reports whether the honeypot field was filled in
func (r *LeadRequest) IsBot() bool {
	return r.Website != ""
}

// RequestMeta carries best-effort request metadata included in lead
// notifications
type RequestMeta struct {
	ID        string
	ClientIP  string
	UserAgent string
	Time      time.Time
}
