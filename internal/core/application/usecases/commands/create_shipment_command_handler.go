package commands

import (
	"context"
	"time"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/core/domain/model/shipment"
	"globaledge/internal/core/domain/services"
	"globaledge/internal/core/ports"
)

// trackingNumberAttempts bounds the random generate-and-check loop before
// falling back to a timestamp-derived tracking number.
const trackingNumberAttempts = 6

// CreateShipmentCommandHandler handles the business logic for booking shipments.
// Prices the booking, assigns a unique tracking number, resolves the booking
// party to an account, and persists the shipment in CREATED status.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, services.NewRateCalculator(), resolver)
//	cmd, _ := NewCreateShipmentCommand(...)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
//	// Shipment is now created with a seeded timeline entry
type CreateShipmentCommandHandler struct {
	uowFactory     UoWFactory
	rateCalculator services.RateCalculator
	identity       IdentityResolver
}

// NewCreateShipmentCommandHandler creates a handler for shipment booking operations.
// Requires a UoWFactory for transactional persistence across shipments and users.
func NewCreateShipmentCommandHandler(
	uowFactory UoWFactory,
	rateCalculator services.RateCalculator,
	identity IdentityResolver,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:     uowFactory,
		rateCalculator: rateCalculator,
		identity:       identity,
	}
}

// Handle processes the booking command.
// Builds the domain shipment from the raw payload, quotes it, assigns a
// collision-checked tracking number, and attaches an owner: the authenticated
// party when the command carries one, otherwise whatever account the booking
// contact resolves to (the shipper, or the recipient when only the recipient
// carries an email). Identity resolution failures never fail the booking.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	serviceType, err := shipment.ParseServiceType(cmd.ServiceType(), cmd.Freight() != nil)
	if err != nil {
		return err
	}

	from, err := kernel.NewPlace(cmd.From())
	if err != nil {
		return err
	}
	to, err := kernel.NewPlace(cmd.To())
	if err != nil {
		return err
	}

	shipper, err := shipment.NewContact(cmd.Shipper().Name, cmd.Shipper().Email, cmd.Shipper().Phone)
	if err != nil {
		return err
	}
	recipient, err := shipment.NewContact(cmd.Recipient().Name, cmd.Recipient().Email, cmd.Recipient().Phone)
	if err != nil {
		return err
	}

	parcel, freight, err := buildDetail(cmd.Parcel(), cmd.Freight())
	if err != nil {
		return err
	}

	quote, err := h.rateCalculator.Quote(serviceType, parcel, freight)
	if err != nil {
		return err
	}

	// Identity runs outside the booking transaction: a duplicate-key loss in
	// the find-or-create race must not poison the transaction the shipment
	// insert runs in.
	ownerID := cmd.OwnerID()
	if ownerID == nil {
		ownerID = h.identity.Resolve(ctx, h.uowFactory.Create().UserRepository(), bookingParty(shipper, recipient))
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipments := uow.ShipmentRepository()

	trackingNumber, err := h.assignTrackingNumber(ctx, shipments)
	if err != nil {
		return err
	}

	booked, err := shipment.NewShipment(
		cmd.ShipmentID(),
		trackingNumber,
		ownerID,
		serviceType,
		from,
		to,
		shipper,
		recipient,
		cmd.RecipientAddress(),
		parcel,
		freight,
		quote,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = shipments.Add(ctx, booked); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// assignTrackingNumber generates random candidates and checks each against
// the repository. After trackingNumberAttempts collisions it falls back to a
// timestamp-derived number, which is unique enough at booking rates.
func (h CreateShipmentCommandHandler) assignTrackingNumber(
	ctx context.Context,
	shipments ports.ShipmentRepository,
) (kernel.TrackingNumber, error) {
	for range trackingNumberAttempts {
		candidate := kernel.NewTrackingNumber()

		exists, err := shipments.ExistsWithTrackingNumber(ctx, candidate)
		if err != nil {
			return kernel.TrackingNumber{}, err
		}
		if !exists {
			return candidate, nil
		}
	}

	return kernel.FallbackTrackingNumber(time.Now()), nil
}

// bookingParty picks the contact whose email and phone drive identity
// resolution. The shipper is the booking party, but a guest booking often
// carries only the recipient's email; that address still identifies an
// account.
func bookingParty(shipper, recipient shipment.Contact) shipment.Contact {
	if !shipper.HasEmail() && recipient.HasEmail() {
		return recipient
	}
	return shipper
}

func buildDetail(parcelIn *ParcelInput, freightIn *FreightInput) (*shipment.Parcel, *shipment.Freight, error) {
	var parcel *shipment.Parcel
	var freight *shipment.Freight

	if parcelIn != nil {
		p, err := shipment.NewParcel(
			parcelIn.Weight,
			parcelIn.Length,
			parcelIn.Width,
			parcelIn.Height,
			parcelIn.Value,
			parcelIn.Contents,
			shipment.ParseServiceLevel(parcelIn.Level),
		)
		if err != nil {
			return nil, nil, err
		}
		parcel = &p
	}

	if freightIn != nil {
		mode, err := shipment.ParseFreightMode(freightIn.Mode)
		if err != nil {
			return nil, nil, err
		}

		f, err := shipment.NewFreight(
			mode,
			freightIn.Pallets,
			freightIn.Length,
			freightIn.Width,
			freightIn.Height,
			freightIn.Weight,
			freightIn.Incoterm,
			freightIn.Notes,
		)
		if err != nil {
			return nil, nil, err
		}
		freight = &f
	}

	return parcel, freight, nil
}
