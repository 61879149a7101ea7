package http

import (
	"time"

	"globaledge/internal/core/application/usecases/queries"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type contactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type quoteResponse struct {
	Currency string  `json:"currency"`
	Price    int     `json:"price"`
	ETA      string  `json:"eta"`
	Billable float64 `json:"billable"`
}

type timelineEntryResponse struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
	Note   string    `json:"note"`
}

// shipmentResponse is the full shipment body served to owners and staff.
// The flat recipientEmail mirrors recipientContact.email for older clients.
type shipmentResponse struct {
	ID               string                  `json:"id"`
	TrackingNumber   string                  `json:"trackingNumber"`
	UserID           *string                 `json:"userId"`
	ServiceType      string                  `json:"serviceType"`
	From             string                  `json:"from"`
	To               string                  `json:"to"`
	Shipper          contactResponse         `json:"shipperContact"`
	Recipient        contactResponse         `json:"recipientContact"`
	RecipientEmail   string                  `json:"recipientEmail"`
	RecipientAddress string                  `json:"recipientAddress"`
	Parcel           *queries.ParcelView     `json:"parcel"`
	Freight          *queries.FreightView    `json:"freight"`
	Quote            quoteResponse           `json:"quote"`
	ETAText          string                  `json:"eta"`
	ETAAt            *time.Time              `json:"etaAt"`
	Status           string                  `json:"status"`
	StatusLabel      string                  `json:"statusLabel"`
	LastLocation     string                  `json:"lastLocation"`
	Timeline         []timelineEntryResponse `json:"timeline"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

// publicTrackingResponse is the anonymous tracking body: the full shipment
// display without the owner linkage.
type publicTrackingResponse struct {
	TrackingNumber   string                  `json:"trackingNumber"`
	ServiceType      string                  `json:"serviceType"`
	Status           string                  `json:"status"`
	StatusLabel      string                  `json:"statusLabel"`
	From             string                  `json:"from"`
	To               string                  `json:"to"`
	Shipper          contactResponse         `json:"shipperContact"`
	Recipient        contactResponse         `json:"recipientContact"`
	RecipientEmail   string                  `json:"recipientEmail"`
	RecipientAddress string                  `json:"recipientAddress"`
	Parcel           *queries.ParcelView     `json:"parcel"`
	Freight          *queries.FreightView    `json:"freight"`
	Quote            quoteResponse           `json:"quote"`
	ETAText          string                  `json:"eta"`
	ETAAt            *time.Time              `json:"etaAt"`
	LastLocation     string                  `json:"lastLocation"`
	Timeline         []timelineEntryResponse `json:"timeline"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

type shipmentListResponse struct {
	Items []shipmentResponse `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

func toShipmentResponse(view queries.ShipmentView) shipmentResponse {
	var userID *string
	if view.UserID != nil {
		s := view.UserID.String()
		userID = &s
	}

	return shipmentResponse{
		ID:             view.ID.String(),
		TrackingNumber: view.TrackingNumber,
		UserID:         userID,
		ServiceType:    view.ServiceType,
		From:           view.From,
		To:             view.To,
		Shipper: contactResponse{
			Name:  view.Shipper.Name,
			Email: view.Shipper.Email,
			Phone: view.Shipper.Phone,
		},
		Recipient: contactResponse{
			Name:  view.Recipient.Name,
			Email: view.Recipient.Email,
			Phone: view.Recipient.Phone,
		},
		RecipientEmail:   view.Recipient.Email,
		RecipientAddress: view.RecipientAddress,
		Parcel:           view.Parcel,
		Freight:          view.Freight,
		Quote: quoteResponse{
			Currency: view.Quote.Currency,
			Price:    view.Quote.Price,
			ETA:      view.Quote.ETA,
			Billable: view.Quote.Billable,
		},
		ETAText:      view.ETAText,
		ETAAt:        view.ETAAt,
		Status:       view.Status,
		StatusLabel:  view.StatusLabel,
		LastLocation: view.LastLocation,
		Timeline:     toTimelineResponse(view.Timeline),
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
	}
}

func toPublicTrackingResponse(tracking queries.GetPublicTrackingQueryResponse) publicTrackingResponse {
	return publicTrackingResponse{
		TrackingNumber: tracking.TrackingNumber,
		ServiceType:    tracking.ServiceType,
		Status:         tracking.Status,
		StatusLabel:    tracking.StatusLabel,
		From:           tracking.From,
		To:             tracking.To,
		Shipper: contactResponse{
			Name:  tracking.Shipper.Name,
			Email: tracking.Shipper.Email,
			Phone: tracking.Shipper.Phone,
		},
		Recipient: contactResponse{
			Name:  tracking.Recipient.Name,
			Email: tracking.Recipient.Email,
			Phone: tracking.Recipient.Phone,
		},
		RecipientEmail:   tracking.Recipient.Email,
		RecipientAddress: tracking.RecipientAddress,
		Parcel:           tracking.Parcel,
		Freight:          tracking.Freight,
		Quote: quoteResponse{
			Currency: tracking.Quote.Currency,
			Price:    tracking.Quote.Price,
			ETA:      tracking.Quote.ETA,
			Billable: tracking.Quote.Billable,
		},
		ETAText:      tracking.ETAText,
		ETAAt:        tracking.ETAAt,
		LastLocation: tracking.LastLocation,
		Timeline:     toTimelineResponse(tracking.Timeline),
		CreatedAt:    tracking.CreatedAt,
		UpdatedAt:    tracking.UpdatedAt,
	}
}

func toTimelineResponse(entries []queries.TimelineEntryView) []timelineEntryResponse {
	timeline := make([]timelineEntryResponse, len(entries))
	for i, entry := range entries {
		timeline[i] = timelineEntryResponse{
			Status: entry.Status,
			At:     entry.At,
			Note:   entry.Note,
		}
	}
	return timeline
}
