package queries

import (
	"context"

	"globaledge/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPublicTrackingQueryHandler serves the anonymous tracking page lookup.
// Reads the full shipment view and strips ownership before returning it.
//
// Example:
//
//	handler := NewGetPublicTrackingQueryHandler(db)
//	query, _ := NewGetPublicTrackingQuery("GE-7K2M9PQ4")
//
//	tracking, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown tracking number
//	}
type GetPublicTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetPublicTrackingQueryHandler creates a handler for public tracking lookups.
// Requires a GORM database connection for query execution.
func NewGetPublicTrackingQueryHandler(db *gorm.DB) GetPublicTrackingQueryHandler {
	return GetPublicTrackingQueryHandler{db: db}
}

// Handle looks up the shipment by tracking number.
// Returns errs.ErrObjectNotFound (wrapped) when the number is unknown.
func (h GetPublicTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetPublicTrackingQuery,
) (GetPublicTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPublicTrackingQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentViewColumns+`
		FROM shipments
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Rows()
	if err != nil {
		return GetPublicTrackingQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetPublicTrackingQueryResponse{}, err
		}
		return GetPublicTrackingQueryResponse{},
			errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber().String())
	}

	view, err := scanShipmentView(rows)
	if err != nil {
		return GetPublicTrackingQueryResponse{}, err
	}
	if err = rows.Err(); err != nil {
		return GetPublicTrackingQueryResponse{}, err
	}

	return publicTrackingFromView(view), nil
}

// publicTrackingFromView strips the owner link off the full read model.
// Everything else on the tracking page matches what the owner sees.
func publicTrackingFromView(view ShipmentView) GetPublicTrackingQueryResponse {
	return GetPublicTrackingQueryResponse{
		TrackingNumber:   view.TrackingNumber,
		ServiceType:      view.ServiceType,
		Status:           view.Status,
		StatusLabel:      view.StatusLabel,
		From:             view.From,
		To:               view.To,
		Shipper:          view.Shipper,
		Recipient:        view.Recipient,
		RecipientAddress: view.RecipientAddress,
		Parcel:           view.Parcel,
		Freight:          view.Freight,
		Quote:            view.Quote,
		ETAText:          view.ETAText,
		ETAAt:            view.ETAAt,
		LastLocation:     view.LastLocation,
		Timeline:         view.Timeline,
		CreatedAt:        view.CreatedAt,
		UpdatedAt:        view.UpdatedAt,
	}
}
