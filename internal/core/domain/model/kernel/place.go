package kernel

import (
	"strings"

	"globaledge/internal/pkg/errs"
)

// ErrPlaceIsRequired is returned when a route endpoint is missing or blank.
var ErrPlaceIsRequired = errs.NewValueIsRequiredError("place")

// Place is a free-text, normalized location string such as
// "Lagos, Nigeria" or "London, United Kingdom". Routes deliberately use text
// rather than coordinates: bookings come from form input and geocoding is a
// separate collaborator.
type Place struct {
	value string
}

// NewPlace normalizes and validates a place string. Whitespace runs collapse
// to single spaces; an empty result is a validation error.
func NewPlace(raw string) (Place, error) {
	normalized := strings.Join(strings.Fields(raw), " ")
	if normalized == "" {
		return Place{}, ErrPlaceIsRequired
	}
	return Place{value: normalized}, nil
}

// String returns the normalized place text.
func (p Place) String() string {
	return p.value
}

// IsEqual compares two places for equality.
func (p Place) IsEqual(other Place) bool {
	return p.value == other.value
}

// Validate returns ErrPlaceIsRequired for the zero value.
func (p Place) Validate() error {
	if p.value == "" {
		return ErrPlaceIsRequired
	}
	return nil
}
