package commands

import (
	"errors"
	"strings"
	"time"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/core/domain/model/shipment"
	"globaledge/internal/pkg/errs"
	"globaledge/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentPatch carries the raw optional fields of an update request.
// A nil pointer means the field was absent; the command constructor
// normalizes and validates whatever is present.
type UpdateShipmentPatch struct {
	Status       *string
	ETAAt        *string // RFC 3339
	ETAText      *string
	Note         *string
	LastLocation *string
	From         *string
	To           *string
}

// UpdateShipmentCommand represents an operator update to a shipment.
// Every update, however small, produces exactly one timeline entry.
//
// Example:
//
//	status := "in transit"
//	location := "Rotterdam hub"
//	cmd, err := NewUpdateShipmentCommand(shipmentID, UpdateShipmentPatch{
//	    Status:       &status,
//	    LastLocation: &location,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid update: %w", err)
//	}
//
//	handler := NewUpdateShipmentCommandHandler(uowFactory, trigger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("update failed: %w", err)
//	}
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	status       *shipment.Status
	etaAt        *time.Time
	etaText      *string
	note         *string
	lastLocation *string
	from         *string
	to           *string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a shipment update command.
// Status input is normalized (code or label form, any casing); etaAt must be
// RFC 3339. An empty patch is still a valid update and records "Updated".
func NewUpdateShipmentCommand(shipmentID kernel.UUID, patch UpdateShipmentPatch) (UpdateShipmentCommand, error) {
	updateCommand := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setShipmentID(shipmentID),
		updateCommand.setStatus(patch.Status),
		updateCommand.setETAAt(patch.ETAAt),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	updateCommand.etaText = patch.ETAText
	updateCommand.note = patch.Note
	updateCommand.lastLocation = patch.LastLocation
	updateCommand.from = patch.From
	updateCommand.to = patch.To

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentCommandIsNotConstructed if validation fails.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being updated.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Status returns the normalized target status, nil when absent.
func (c UpdateShipmentCommand) Status() *shipment.Status {
	return c.status
}

// ETAAt returns the parsed ETA deadline, nil when absent.
func (c UpdateShipmentCommand) ETAAt() *time.Time {
	return c.etaAt
}

// ETAText returns the replacement ETA display text, nil when absent.
func (c UpdateShipmentCommand) ETAText() *string {
	return c.etaText
}

// Note returns the explicit timeline note, nil when absent.
func (c UpdateShipmentCommand) Note() *string {
	return c.note
}

// LastLocation returns the new last known location, nil when absent.
func (c UpdateShipmentCommand) LastLocation() *string {
	return c.lastLocation
}

// From returns the new origin, nil when absent.
func (c UpdateShipmentCommand) From() *string {
	return c.from
}

// To returns the new destination, nil when absent.
func (c UpdateShipmentCommand) To() *string {
	return c.to
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setStatus(raw *string) error {
	if raw == nil {
		return nil
	}

	status, err := shipment.NormalizeStatus(*raw)
	if err != nil {
		return err
	}

	c.status = &status
	return nil
}

func (c *UpdateShipmentCommand) setETAAt(raw *string) error {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}

	at, err := time.Parse(time.RFC3339, strings.TrimSpace(*raw))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("etaAt", err)
	}

	c.etaAt = &at
	return nil
}
