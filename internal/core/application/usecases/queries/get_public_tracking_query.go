package queries

import (
	"errors"
	"time"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/pkg/guard"
)

var ErrGetPublicTrackingQueryIsNotConstructed = errors.New(
	"GetPublicTrackingQuery must be created via NewGetPublicTrackingQuery constructor",
)

// GetPublicTrackingQuery retrieves the unauthenticated tracking view of a
// shipment by tracking number. The response deliberately omits ownership.
type GetPublicTrackingQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetPublicTrackingQuery creates a public tracking query.
// The raw input is normalized: surrounding whitespace is dropped and the
// number is uppercased before lookup.
func NewGetPublicTrackingQuery(rawTrackingNumber string) (GetPublicTrackingQuery, error) {
	trackingNumber, err := kernel.TrackingNumberFromString(rawTrackingNumber)
	if err != nil {
		return GetPublicTrackingQuery{}, err
	}

	return GetPublicTrackingQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPublicTrackingQueryIsNotConstructed if validation fails.
func (q GetPublicTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetPublicTrackingQueryIsNotConstructed)
}

// TrackingNumber returns the normalized tracking number.
func (q GetPublicTrackingQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// GetPublicTrackingQueryResponse is the anonymous tracking projection:
// the full shipment display with the owning account stripped out.
// Status carries the canonical code, StatusLabel the display form.
type GetPublicTrackingQueryResponse struct {
	TrackingNumber   string
	ServiceType      string
	Status           string
	StatusLabel      string
	From             string
	To               string
	Shipper          ContactView
	Recipient        ContactView
	RecipientAddress string
	Parcel           *ParcelView
	Freight          *FreightView
	Quote            QuoteView
	ETAText          string
	ETAAt            *time.Time
	LastLocation     string
	Timeline         []TimelineEntryView
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
