// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Contacts and the quote are embedded as prefixed columns; the optional parcel
// and freight details and the timeline are stored as JSONB documents, which
// keeps the variable-shape parts of a shipment in one row.
type ShipmentDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber   string     `gorm:"type:varchar(32);uniqueIndex"`
	UserID           *uuid.UUID `gorm:"type:uuid;index"`
	ServiceType      string     `gorm:"type:varchar(16)"`
	FromPlace        string     `gorm:"column:from_place"`
	ToPlace          string     `gorm:"column:to_place"`
	Shipper          ContactDTO `gorm:"embedded;embeddedPrefix:shipper_"`
	Recipient        ContactDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	RecipientAddress string
	Parcel           *ParcelDoc  `gorm:"type:jsonb"`
	Freight          *FreightDoc `gorm:"type:jsonb"`
	Quote            QuoteDTO    `gorm:"embedded;embeddedPrefix:quote_"`
	ETAText          string      `gorm:"column:eta_text"`
	ETAAt            *time.Time  `gorm:"column:eta_at;index"`
	Status           string      `gorm:"type:varchar(32);index"`
	LastLocation     string
	Timeline         TimelineDoc `gorm:"type:jsonb"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ContactDTO represents an embedded contact within the shipment table.
type ContactDTO struct {
	Name  string
	Email string `gorm:"index"`
	Phone string
}

// QuoteDTO represents the embedded price quote within the shipment table.
type QuoteDTO struct {
	Currency string `gorm:"type:varchar(8)"`
	Price    int
	ETA      string `gorm:"column:eta"`
	Billable float64
}

// ParcelDoc is the JSONB document for parcel detail.
type ParcelDoc struct {
	Weight   float64 `json:"weight"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Declared float64 `json:"value"` // declared customs value
	Contents string  `json:"contents"`
	Level    string  `json:"level"`
}

// Value implements driver.Valuer for JSONB storage.
func (d ParcelDoc) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (d *ParcelDoc) Scan(value any) error {
	return scanJSON(value, d)
}

// FreightDoc is the JSONB document for freight detail.
type FreightDoc struct {
	Mode     string  `json:"mode"`
	Pallets  int     `json:"pallets"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Incoterm string  `json:"incoterm"`
	Notes    string  `json:"notes"`
}

// Value implements driver.Valuer for JSONB storage.
func (d FreightDoc) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (d *FreightDoc) Scan(value any) error {
	return scanJSON(value, d)
}

// TimelineEntryDoc is one entry of the timeline JSONB document.
type TimelineEntryDoc struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
	Note   string    `json:"note"`
}

// TimelineDoc is the JSONB document for the status timeline.
type TimelineDoc []TimelineEntryDoc

// Value implements driver.Valuer for JSONB storage.
func (d TimelineDoc) Value() (driver.Value, error) {
	if d == nil {
		return json.Marshal(TimelineDoc{})
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (d *TimelineDoc) Scan(value any) error {
	return scanJSON(value, d)
}

func scanJSON(value, target any) error {
	if value == nil {
		return nil
	}

	switch raw := value.(type) {
	case []byte:
		return json.Unmarshal(raw, target)
	case string:
		return json.Unmarshal([]byte(raw), target)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var userID *uuid.UUID
	if id := aggregate.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	var parcel *ParcelDoc
	if p := aggregate.Parcel(); p != nil {
		parcel = &ParcelDoc{
			Weight:   p.Weight(),
			Length:   p.Length(),
			Width:    p.Width(),
			Height:   p.Height(),
			Declared: p.Value(),
			Contents: p.Contents(),
			Level:    p.Level().String(),
		}
	}

	var freight *FreightDoc
	if f := aggregate.Freight(); f != nil {
		freight = &FreightDoc{
			Mode:     f.Mode().String(),
			Pallets:  f.Pallets(),
			Length:   f.Length(),
			Width:    f.Width(),
			Height:   f.Height(),
			Weight:   f.Weight(),
			Incoterm: f.Incoterm(),
			Notes:    f.Notes(),
		}
	}

	timeline := make(TimelineDoc, 0, len(aggregate.Timeline()))
	for _, entry := range aggregate.Timeline() {
		timeline = append(timeline, TimelineEntryDoc{
			Status: entry.Status().String(),
			At:     entry.At(),
			Note:   entry.Note(),
		})
	}

	return ShipmentDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber().String(),
		UserID:         userID,
		ServiceType:    aggregate.ServiceType().String(),
		FromPlace:      aggregate.From().String(),
		ToPlace:        aggregate.To().String(),
		Shipper: ContactDTO{
			Name:  aggregate.Shipper().Name(),
			Email: aggregate.Shipper().Email().String(),
			Phone: aggregate.Shipper().Phone().String(),
		},
		Recipient: ContactDTO{
			Name:  aggregate.Recipient().Name(),
			Email: aggregate.Recipient().Email().String(),
			Phone: aggregate.Recipient().Phone().String(),
		},
		RecipientAddress: aggregate.RecipientAddress(),
		Parcel:           parcel,
		Freight:          freight,
		Quote: QuoteDTO{
			Currency: aggregate.Quote().Currency(),
			Price:    aggregate.Quote().Price(),
			ETA:      aggregate.Quote().ETA(),
			Billable: aggregate.Quote().Billable(),
		},
		ETAText:      aggregate.ETAText(),
		ETAAt:        aggregate.ETAAt(),
		Status:       aggregate.Status().String(),
		LastLocation: aggregate.LastLocation(),
		Timeline:     timeline,
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs value objects through their constructors so stored data passes
// through the same normalization as fresh input.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		ownerID, ownerErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if ownerErr != nil {
			return nil, ownerErr
		}
		userID = &ownerID
	}

	from, err := kernel.NewPlace(dto.FromPlace)
	if err != nil {
		return nil, err
	}
	to, err := kernel.NewPlace(dto.ToPlace)
	if err != nil {
		return nil, err
	}

	shipper, err := shipment.NewContact(dto.Shipper.Name, dto.Shipper.Email, dto.Shipper.Phone)
	if err != nil {
		return nil, err
	}
	recipient, err := shipment.NewContact(dto.Recipient.Name, dto.Recipient.Email, dto.Recipient.Phone)
	if err != nil {
		return nil, err
	}

	var parcel *shipment.Parcel
	if dto.Parcel != nil {
		p, parcelErr := shipment.NewParcel(
			dto.Parcel.Weight,
			dto.Parcel.Length,
			dto.Parcel.Width,
			dto.Parcel.Height,
			dto.Parcel.Declared,
			dto.Parcel.Contents,
			shipment.ParseServiceLevel(dto.Parcel.Level),
		)
		if parcelErr != nil {
			return nil, parcelErr
		}
		parcel = &p
	}

	var freight *shipment.Freight
	if dto.Freight != nil {
		mode, modeErr := shipment.ParseFreightMode(dto.Freight.Mode)
		if modeErr != nil {
			return nil, modeErr
		}

		f, freightErr := shipment.NewFreight(
			mode,
			dto.Freight.Pallets,
			dto.Freight.Length,
			dto.Freight.Width,
			dto.Freight.Height,
			dto.Freight.Weight,
			dto.Freight.Incoterm,
			dto.Freight.Notes,
		)
		if freightErr != nil {
			return nil, freightErr
		}
		freight = &f
	}

	quote, err := shipment.NewQuote(dto.Quote.Currency, dto.Quote.Price, dto.Quote.ETA, dto.Quote.Billable)
	if err != nil {
		return nil, err
	}

	timeline := make([]shipment.TimelineEntry, 0, len(dto.Timeline))
	for _, entryDoc := range dto.Timeline {
		entry, entryErr := shipment.NewTimelineEntry(
			shipment.Status(entryDoc.Status),
			entryDoc.At,
			entryDoc.Note,
		)
		if entryErr != nil {
			return nil, entryErr
		}
		timeline = append(timeline, entry)
	}

	return shipment.RestoreShipment(
		id,
		trackingNumber,
		userID,
		shipment.ServiceType(dto.ServiceType),
		from,
		to,
		shipper,
		recipient,
		dto.RecipientAddress,
		parcel,
		freight,
		quote,
		dto.ETAText,
		dto.ETAAt,
		shipment.Status(dto.Status),
		dto.LastLocation,
		timeline,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
