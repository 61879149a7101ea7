package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler serves the back-office shipment listing.
// Builds the filter clause once and runs a count plus a page fetch.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for admin listings.
// Requires a GORM database connection for query execution.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the filtered, paginated listing, newest bookings first.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) (ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	where := " WHERE 1=1"
	args := make([]any, 0, 3)

	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.Search() != "" {
		where += ` AND (
			tracking_number ILIKE ?
			OR recipient_email ILIKE ?
			OR from_place ILIKE ?
			OR to_place ILIKE ?
			OR last_location ILIKE ?
		)`
		pattern := "%" + query.Search() + "%"
		args = append(args, pattern, pattern, pattern, pattern, pattern)
	}

	response := ListShipmentsQueryResponse{
		Items: make([]ShipmentView, 0),
		Page:  query.Page(),
		Limit: query.Limit(),
	}

	countRow := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM shipments"+where, args...,
	).Row()
	if err := countRow.Scan(&response.Total); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	pageArgs := append(args, query.Limit(), query.Offset())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentViewColumns+`
		FROM shipments`+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListShipmentsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanShipmentView(rows)
		if scanErr != nil {
			return ListShipmentsQueryResponse{}, scanErr
		}
		response.Items = append(response.Items, view)
	}

	if err = rows.Err(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	return response, nil
}
