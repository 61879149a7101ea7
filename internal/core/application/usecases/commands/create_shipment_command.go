package commands

import (
	"errors"
	"strings"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrOriginIsRequired      = errors.New("origin is required")
	ErrDestinationIsRequired = errors.New("destination is required")
	ErrDetailIsRequired      = errors.New("parcel or freight detail is required")
)

// ContactInput carries raw contact fields from a booking request.
// Normalization and validation happen when the domain contact is built.
type ContactInput struct {
	Name  string
	Email string
	Phone string
}

// ParcelInput carries raw parcel fields from a booking request.
// Dimensions are centimetres, weight is kilograms, value is EUR.
type ParcelInput struct {
	Weight   float64
	Length   float64
	Width    float64
	Height   float64
	Value    float64
	Contents string
	Level    string
}

// FreightInput carries raw freight fields from a booking request.
// Dimensions are per pallet; mode defaults to air, incoterm to DAP.
type FreightInput struct {
	Mode     string
	Pallets  int
	Length   float64
	Width    float64
	Height   float64
	Weight   float64
	Incoterm string
	Notes    string
}

// CreateShipmentCommand represents a request to book a new shipment.
// Carries the raw booking payload; the handler prices it, assigns a
// tracking number, and resolves the booking party to an account.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(
//	    shipmentID, nil, "parcel", "London", "Paris",
//	    ContactInput{Name: "Ada", Email: "ada@example.com"},
//	    ContactInput{Name: "Bob", Email: "bob@example.com"},
//	    "10 Rue de Rivoli, 75001 Paris",
//	    &ParcelInput{Weight: 5, Length: 30, Width: 20, Height: 10},
//	    nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, rateCalculator, resolver)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to book shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID       kernel.UUID
	ownerID          *kernel.UUID
	serviceType      string
	from             string
	to               string
	shipper          ContactInput
	recipient        ContactInput
	recipientAddress string
	parcel           *ParcelInput
	freight          *FreightInput

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to book a new shipment.
// Validates that the shipment ID is valid, route endpoints are present,
// and at least one of parcel or freight detail is supplied. The rest of
// the booking rules are enforced by the domain when the handler runs.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	ownerID *kernel.UUID,
	serviceType string,
	from string,
	to string,
	shipper ContactInput,
	recipient ContactInput,
	recipientAddress string,
	parcel *ParcelInput,
	freight *FreightInput,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setShipmentID(shipmentID),
		shipmentCommand.setOwnerID(ownerID),
		shipmentCommand.setRoute(from, to),
		shipmentCommand.setDetail(parcel, freight),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	shipmentCommand.serviceType = strings.TrimSpace(serviceType)
	shipmentCommand.shipper = shipper
	shipmentCommand.recipient = recipient
	shipmentCommand.recipientAddress = recipientAddress

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OwnerID returns the authenticated booking party, nil for guest bookings.
func (c CreateShipmentCommand) OwnerID() *kernel.UUID {
	return c.ownerID
}

// ServiceType returns the declared service type, possibly empty.
func (c CreateShipmentCommand) ServiceType() string {
	return c.serviceType
}

// From returns the origin as supplied by the client.
func (c CreateShipmentCommand) From() string {
	return c.from
}

// To returns the destination as supplied by the client.
func (c CreateShipmentCommand) To() string {
	return c.to
}

// Shipper returns the raw shipper contact.
func (c CreateShipmentCommand) Shipper() ContactInput {
	return c.shipper
}

// Recipient returns the raw recipient contact.
func (c CreateShipmentCommand) Recipient() ContactInput {
	return c.recipient
}

// RecipientAddress returns the raw delivery address.
func (c CreateShipmentCommand) RecipientAddress() string {
	return c.recipientAddress
}

// Parcel returns the parcel detail, nil for freight-only bookings.
func (c CreateShipmentCommand) Parcel() *ParcelInput {
	return c.parcel
}

// Freight returns the freight detail, nil for parcel bookings.
func (c CreateShipmentCommand) Freight() *FreightInput {
	return c.freight
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOwnerID(ownerID *kernel.UUID) error {
	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return err
		}
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateShipmentCommand) setRoute(from, to string) error {
	if strings.TrimSpace(from) == "" {
		return ErrOriginIsRequired
	}
	if strings.TrimSpace(to) == "" {
		return ErrDestinationIsRequired
	}

	c.from = from
	c.to = to
	return nil
}

func (c *CreateShipmentCommand) setDetail(parcel *ParcelInput, freight *FreightInput) error {
	if parcel == nil && freight == nil {
		return ErrDetailIsRequired
	}

	c.parcel = parcel
	c.freight = freight
	return nil
}
