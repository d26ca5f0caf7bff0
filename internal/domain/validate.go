package domain

import (
	"regexp"
	"unicode"

	"github.com/ssapio/inferencegate-web/internal/shared/errors"
)

// Validation failures carry the exact reason strings the API returns. They
// are compared by identity in tests and mapped to 400 envelopes by handlers.
var (
	ErrMissingFields    = errors.NewValidationError("Missing required fields.", nil)
	ErrInvalidEmail     = errors.NewValidationError("Invalid email.", nil)
	ErrCompanyTooShort  = errors.NewValidationError("Company name is too short.", nil)
	ErrSpendInvalid     = errors.NewValidationError("Tell us an approximate monthly spend.", nil)
	ErrMessageTooShort  = errors.NewValidationError("Message too short.", nil)
	ErrInvalidLeadEmail = errors.NewValidationError("Please provide a valid email.", nil)
)

// emailRx is a syntactic approximation only; it does not verify
// deliverability or domain existence.
var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minCompanyLen = 2
	// Server-side minimum. The form enforces 10 client-side; the relay
	// has always accepted 3.
	minMessageLen = 3
	maxSpendLen   = 40
)

// IsValidEmail reports whether s looks like an email address after trimming
func IsValidEmail(s string) bool {
	return emailRx.MatchString(s)
}

// Validate checks a normalized contact submission and returns the first
// failing rule
func (s *ContactSubmission) Validate() error {
	if s.Email == "" || s.Company == "" || s.Spend == "" || s.Message == "" {
		return ErrMissingFields
	}
	if !IsValidEmail(s.Email) {
		return ErrInvalidEmail
	}
	if len(s.Company) < minCompanyLen {
		return ErrCompanyTooShort
	}
	if len(s.Spend) > maxSpendLen || !containsDigit(s.Spend) {
		return ErrSpendInvalid
	}
	if len(s.Message) < minMessageLen {
		return ErrMessageTooShort
	}
	return nil
}

// Validate checks a normalized lead request
func (r *LeadRequest) Validate() error {
	if r.Email == "" || !IsValidEmail(r.Email) {
		return ErrInvalidLeadEmail
	}
	return nil
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
