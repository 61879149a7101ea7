package shipment

import (
	"fmt"
	"strings"

	"globaledge/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// The model deliberately does not enforce a forward-only order: operators may
// set any status at any time (a mis-scanned DELIVERED parcel can go back to
// IN_TRANSIT). DELIVERED and CANCELLED are logical end states for display
// purposes only; storage still accepts further updates.
type Status string

const (
	// StatusCreated is the initial status seeded into every new shipment.
	StatusCreated Status = "CREATED"

	// StatusPickedUp indicates the carrier has collected the shipment.
	StatusPickedUp Status = "PICKED_UP"

	// StatusInTransit indicates the shipment is moving between facilities.
	StatusInTransit Status = "IN_TRANSIT"

	// StatusOutForDelivery indicates the shipment is on the final-mile vehicle.
	StatusOutForDelivery Status = "OUT_FOR_DELIVERY"

	// StatusDelivered indicates the shipment reached the recipient.
	StatusDelivered Status = "DELIVERED"

	// StatusException indicates a delivery problem needing attention.
	StatusException Status = "EXCEPTION"

	// StatusCancelled indicates the booking was cancelled.
	StatusCancelled Status = "CANCELLED"
)

// statusLabels maps enum codes to their human display form.
func statusLabels() map[Status]string {
	return map[Status]string{
		StatusCreated:        "Created",
		StatusPickedUp:       "Picked Up",
		StatusInTransit:      "In Transit",
		StatusOutForDelivery: "Out for Delivery",
		StatusDelivered:      "Delivered",
		StatusException:      "Exception",
		StatusCancelled:      "Cancelled",
	}
}

// NormalizeStatus maps user input to a canonical status code. Both the enum
// form ("IN_TRANSIT") and the label form ("in transit", "In-Transit") are
// accepted, case, space, and hyphen insensitively.
//
// Returns a ValueIsInvalidError naming the offending input when the string is
// not a recognized status.
func NormalizeStatus(input string) (Status, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return "", errs.NewValueIsRequiredError("status")
	}

	code := Status(collapseSeparators(strings.ToUpper(raw), "_"))
	if err := code.Validate(); err == nil {
		return code, nil
	}

	label := collapseSeparators(strings.ToUpper(raw), " ")
	for status, display := range statusLabels() {
		if strings.ToUpper(display) == label {
			return status, nil
		}
	}

	return "", errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", input),
	)
}

// collapseSeparators replaces runs of spaces, hyphens, and underscores with sep.
func collapseSeparators(s, sep string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '\t'
	})
	return strings.Join(fields, sep)
}

// Validate checks whether the status is one of the known enum codes.
func (s Status) Validate() error {
	if _, ok := statusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid status", string(s)),
		)
	}
	return nil
}

// String returns the enum code form, e.g. "OUT_FOR_DELIVERY".
func (s Status) String() string {
	return string(s)
}

// Label returns the display form, e.g. "Out for Delivery". Unknown values fall
// back to "Created" so read views never render raw codes.
func (s Status) Label() string {
	if label, ok := statusLabels()[s]; ok {
		return label
	}
	return "Created"
}

// IsClosed reports whether the status is a logical end state for display.
// Closed shipments still accept updates.
func (s Status) IsClosed() bool {
	return s == StatusDelivered || s == StatusCancelled
}
