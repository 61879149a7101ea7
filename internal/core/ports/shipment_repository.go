package ports

import (
	"context"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// The storage layer guarantees single-document atomicity: one Add or Update
// lands completely or not at all, which is what lets a field change and its
// timeline append commit together.
type ShipmentRepository interface {
	// Add persists a new shipment. A duplicate tracking number surfaces as an
	// ObjectAlreadyExistsError so creation can retry with a fresh number.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment, replacing its timeline
	// with the aggregate's current (longer) one.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by its public tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (*shipment.Shipment, error)

	// ExistsWithTrackingNumber reports whether a tracking number is taken.
	// Used by the bounded generate-and-check loop during creation.
	ExistsWithTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (bool, error)
}
