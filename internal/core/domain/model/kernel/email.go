package kernel

import (
	"fmt"
	"strings"

	"globaledge/internal/pkg/errs"
)

// ErrEmailIsRequired is returned when validating a zero-value Email.
var ErrEmailIsRequired = errs.NewValueIsRequiredError("email")

// Email is a normalized email address. Addresses are stored trimmed and
// lowercased so lookups and uniqueness checks are case-insensitive.
//
// The zero value is invalid; construct through NewEmail.
type Email struct {
	value string
}

// NewEmail normalizes and validates an email address.
// Normalization is trim plus lowercase; validation only requires a non-empty
// local part and domain around a single "@".
func NewEmail(raw string) (Email, error) {
	normalized := NormalizeEmail(raw)
	if normalized == "" {
		return Email{}, ErrEmailIsRequired
	}

	at := strings.Index(normalized, "@")
	if at <= 0 || at == len(normalized)-1 || strings.Count(normalized, "@") != 1 {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not a valid email address", raw),
		)
	}

	return Email{value: normalized}, nil
}

// NormalizeEmail applies the canonical email normalization: trim + lowercase.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// String returns the normalized address.
func (e Email) String() string {
	return e.value
}

// LocalPart returns the part before the "@". Used to derive a display name for
// prospect users created from contact info.
func (e Email) LocalPart() string {
	at := strings.Index(e.value, "@")
	if at < 0 {
		return e.value
	}
	return e.value[:at]
}

// IsZero reports whether the email is unset.
func (e Email) IsZero() bool {
	return e.value == ""
}

// IsEqual compares two emails for equality.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// Validate returns ErrEmailIsRequired for the zero value.
func (e Email) Validate() error {
	if e.value == "" {
		return ErrEmailIsRequired
	}
	return nil
}
