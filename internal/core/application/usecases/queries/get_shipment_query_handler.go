package queries

import (
	"context"

	"globaledge/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves a single shipment read model.
//
// Example:
//
//	handler := NewGetShipmentQueryHandler(db)
//	query, _ := NewGetShipmentQuery(shipmentID)
//
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown shipment
//	}
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment lookups.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound (wrapped) when
// no shipment has the given identifier.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return ShipmentView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentViewColumns+`
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return ShipmentView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentView{}, err
		}
		return ShipmentView{}, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID().String())
	}

	view, err := scanShipmentView(rows)
	if err != nil {
		return ShipmentView{}, err
	}

	if err = rows.Err(); err != nil {
		return ShipmentView{}, err
	}

	return view, nil
}
