// Package queries contains read-only operations against the database.
// Query handlers bypass the domain model and read projections directly,
// following the CQRS split: writes go through aggregates, reads go to SQL.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ContactView is the read-side projection of a shipment contact.
type ContactView struct {
	Name  string
	Email string
	Phone string
}

// ParcelView is the read-side projection of parcel detail.
type ParcelView struct {
	Weight   float64 `json:"weight"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Value    float64 `json:"value"`
	Contents string  `json:"contents"`
	Level    string  `json:"level"`
}

// FreightView is the read-side projection of freight detail.
type FreightView struct {
	Mode     string  `json:"mode"`
	Pallets  int     `json:"pallets"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Incoterm string  `json:"incoterm"`
	Notes    string  `json:"notes"`
}

// QuoteView is the read-side projection of the price quote.
type QuoteView struct {
	Currency string
	Price    int
	ETA      string
	Billable float64
}

// TimelineEntryView is the read-side projection of one timeline entry.
type TimelineEntryView struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
	Note   string    `json:"note"`
}

// ShipmentView is the full read model of a shipment, as served to owners
// and back-office staff. Public tracking uses a stripped projection instead.
type ShipmentView struct {
	ID               kernel.UUID
	TrackingNumber   string
	UserID           *kernel.UUID
	ServiceType      string
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
	Status           string
	StatusLabel      string
	LastLocation     string
	Timeline         []TimelineEntryView
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// shipmentViewColumns is the column list every full-view query selects,
// in the order scanShipmentView expects.
const shipmentViewColumns = `
	id,
	tracking_number,
	user_id,
	service_type,
	from_place,
	to_place,
	shipper_name,
	shipper_email,
	shipper_phone,
	recipient_name,
	recipient_email,
	recipient_phone,
	recipient_address,
	parcel,
	freight,
	quote_currency,
	quote_price,
	quote_eta,
	quote_billable,
	eta_text,
	eta_at,
	status,
	last_location,
	timeline,
	created_at,
	updated_at
`

func scanShipmentView(rows *sql.Rows) (ShipmentView, error) {
	var view ShipmentView
	var id uuid.UUID
	var userID uuid.NullUUID
	var parcelDoc, freightDoc, timelineDoc []byte
	var etaAt sql.NullTime

	err := rows.Scan(
		&id,
		&view.TrackingNumber,
		&userID,
		&view.ServiceType,
		&view.From,
		&view.To,
		&view.Shipper.Name,
		&view.Shipper.Email,
		&view.Shipper.Phone,
		&view.Recipient.Name,
		&view.Recipient.Email,
		&view.Recipient.Phone,
		&view.RecipientAddress,
		&parcelDoc,
		&freightDoc,
		&view.Quote.Currency,
		&view.Quote.Price,
		&view.Quote.ETA,
		&view.Quote.Billable,
		&view.ETAText,
		&etaAt,
		&view.Status,
		&view.LastLocation,
		&timelineDoc,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return ShipmentView{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentView{}, err
	}
	view.ID = shipmentID

	if userID.Valid {
		ownerID, ownerErr := kernel.UUIDFromBytes(userID.UUID[:])
		if ownerErr != nil {
			return ShipmentView{}, ownerErr
		}
		view.UserID = &ownerID
	}

	if len(parcelDoc) > 0 {
		var parcel ParcelView
		if err = json.Unmarshal(parcelDoc, &parcel); err != nil {
			return ShipmentView{}, err
		}
		view.Parcel = &parcel
	}
	if len(freightDoc) > 0 {
		var freight FreightView
		if err = json.Unmarshal(freightDoc, &freight); err != nil {
			return ShipmentView{}, err
		}
		view.Freight = &freight
	}
	if len(timelineDoc) > 0 {
		if err = json.Unmarshal(timelineDoc, &view.Timeline); err != nil {
			return ShipmentView{}, err
		}
	}

	if etaAt.Valid {
		at := etaAt.Time
		view.ETAAt = &at
	}

	view.StatusLabel = shipment.Status(view.Status).Label()

	return view, nil
}
