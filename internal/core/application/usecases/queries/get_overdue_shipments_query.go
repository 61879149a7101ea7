package queries

import (
	"errors"
	"time"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/pkg/guard"
)

var (
	ErrGetOverdueShipmentsQueryIsNotConstructed = errors.New(
		"GetOverdueShipmentsQuery must be created via NewGetOverdueShipmentsQuery constructor",
	)
	ErrAsOfIsRequired = errors.New("asOf time is required")
)

// GetOverdueShipmentsQuery finds open shipments whose ETA deadline has
// passed. Feeds the overdue watch job; shipments without an ETA deadline
// are never overdue.
type GetOverdueShipmentsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueShipmentsQuery creates an overdue scan anchored at asOf.
func NewGetOverdueShipmentsQuery(asOf time.Time) (GetOverdueShipmentsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueShipmentsQuery{}, ErrAsOfIsRequired
	}

	return GetOverdueShipmentsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueShipmentsQueryIsNotConstructed if validation fails.
func (q GetOverdueShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueShipmentsQueryIsNotConstructed)
}

// AsOf returns the scan anchor time.
func (q GetOverdueShipmentsQuery) AsOf() time.Time {
	return q.asOf
}

// GetOverdueShipmentsQueryResponse identifies one overdue shipment.
type GetOverdueShipmentsQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Status         string
	ETAAt          time.Time
	RecipientEmail string
}
