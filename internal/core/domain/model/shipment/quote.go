package shipment

import (
	"fmt"

	"globaledge/internal/pkg/errs"
)

// Quote is the commercial snapshot priced at booking time: currency, total
// price, an ETA label, and the billable weight the price was computed from.
// Once attached to a shipment it never changes; re-quoting means a new booking.
type Quote struct {
	currency string
	price    int
	eta      string
	billable float64
}

// NewQuote builds a quote snapshot. Price must cover at least the service
// minimum, so zero or negative totals are rejected.
func NewQuote(currency string, price int, eta string, billable float64) (Quote, error) {
	if currency == "" {
		return Quote{}, errs.NewValueIsRequiredError("currency")
	}
	if price <= 0 {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%d is not greater than 0", price),
		)
	}
	if billable < 0 {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"billable", fmt.Errorf("%v must not be negative", billable),
		)
	}

	return Quote{currency: currency, price: price, eta: eta, billable: billable}, nil
}

// Currency returns the ISO currency code, e.g. "EUR".
func (q Quote) Currency() string { return q.currency }

// Price returns the total price in whole currency units.
func (q Quote) Price() int { return q.price }

// ETA returns the human ETA label the quote was issued with.
func (q Quote) ETA() string { return q.eta }

// Billable returns the billable weight in kg used for pricing.
func (q Quote) Billable() float64 { return q.billable }

// Validate rejects the zero quote.
func (q Quote) Validate() error {
	if q.currency == "" {
		return errs.NewValueIsRequiredError("quote")
	}
	return nil
}
