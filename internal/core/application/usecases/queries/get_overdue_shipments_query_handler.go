package queries

import (
	"context"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueShipmentsQueryHandler scans for shipments past their ETA deadline.
// Closed shipments (delivered or cancelled) are excluded regardless of ETA.
type GetOverdueShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueShipmentsQueryHandler creates a handler for overdue scans.
// Requires a GORM database connection for query execution.
func NewGetOverdueShipmentsQueryHandler(db *gorm.DB) GetOverdueShipmentsQueryHandler {
	return GetOverdueShipmentsQueryHandler{db: db}
}

// Handle executes the scan, oldest deadline first.
func (h GetOverdueShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueShipmentsQuery,
) ([]GetOverdueShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]GetOverdueShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			eta_at,
			recipient_email
		FROM shipments
		WHERE eta_at IS NOT NULL
		  AND eta_at < ?
		  AND status NOT IN (?, ?)
		ORDER BY eta_at
	`, query.AsOf(), shipment.StatusDelivered.String(), shipment.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOverdueShipmentsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.TrackingNumber,
			&entry.Status,
			&entry.ETAAt,
			&entry.RecipientEmail,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = shipmentID

		overdue = append(overdue, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
