package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOwnerShipmentsQueryHandler retrieves all shipments attached to an account.
type GetOwnerShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnerShipmentsQueryHandler creates a handler for owner shipment listings.
// Requires a GORM database connection for query execution.
func NewGetOwnerShipmentsQueryHandler(db *gorm.DB) GetOwnerShipmentsQueryHandler {
	return GetOwnerShipmentsQueryHandler{db: db}
}

// Handle executes the listing, newest bookings first.
// An owner with no shipments gets an empty slice, not an error.
func (h GetOwnerShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOwnerShipmentsQuery,
) ([]ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]ShipmentView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentViewColumns+`
		FROM shipments
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanShipmentView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
