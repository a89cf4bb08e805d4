package subscription

import (
	"errors"
	"regexp"
)

// Validation errors double as the user-facing messages.
var (
	ErrEmailRequired = errors.New("Please enter your email address")     //nolint:staticcheck
	ErrEmailInvalid  = errors.New("Please enter a valid email address") //nolint:staticcheck
)

// emailPattern is intentionally loose: local@domain.tld with no whitespace
// and a single @. The backend decides whether the address is deliverable.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail returns ErrEmailRequired for an empty value and
// ErrEmailInvalid when the value does not look like an address.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}
