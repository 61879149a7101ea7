package queries

import (
	"errors"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/pkg/guard"
)

var ErrGetOwnerShipmentsQueryIsNotConstructed = errors.New(
	"GetOwnerShipmentsQuery must be created via NewGetOwnerShipmentsQuery constructor",
)

// GetOwnerShipmentsQuery retrieves every shipment owned by one account,
// newest first. Backs the authenticated "my shipments" listing.
type GetOwnerShipmentsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOwnerShipmentsQuery creates a query for one owner's shipments.
func NewGetOwnerShipmentsQuery(userID kernel.UUID) (GetOwnerShipmentsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOwnerShipmentsQuery{}, err
	}

	return GetOwnerShipmentsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOwnerShipmentsQueryIsNotConstructed if validation fails.
func (q GetOwnerShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerShipmentsQueryIsNotConstructed)
}

// UserID returns the owning account identifier.
func (q GetOwnerShipmentsQuery) UserID() kernel.UUID {
	return q.userID
}
