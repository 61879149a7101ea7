package commands

import (
	"context"
	"strings"
	"time"

	"globaledge/internal/core/domain/model/kernel"
)

// UpdateShipmentCommandHandler applies operator updates to a shipment.
// Loads the aggregate, applies the patch, records exactly one timeline
// entry, and persists atomically. Every successful commit fires a
// background notification; whether an email actually goes out is the
// trigger's concern.
//
// Example:
//
//	handler := NewUpdateShipmentCommandHandler(uowFactory, trigger)
//	cmd, _ := NewUpdateShipmentCommand(shipmentID, patch)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown shipment
//	}
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	trigger    NotificationTrigger
}

// NewUpdateShipmentCommandHandler creates a handler for shipment update operations.
// Requires a ShipmentUoWFactory for transactional persistence and a trigger
// for post-commit notifications.
func NewUpdateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	trigger NotificationTrigger,
) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		trigger:    trigger,
	}
}

// Handle processes the update command.
// Field changes are applied in one read-modify-write transaction; the
// timeline note is chosen by precedence: explicit note, then location,
// then route change diffs, then a plain "Updated".
func (h UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipments := uow.ShipmentRepository()

	aggregate, err := shipments.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if cmd.Status() != nil {
		if err = aggregate.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}
	}

	var routeNotes []string
	if cmd.From() != nil || cmd.To() != nil {
		var fromPlace, toPlace *kernel.Place

		if cmd.From() != nil {
			place, placeErr := kernel.NewPlace(*cmd.From())
			if placeErr != nil {
				return placeErr
			}
			fromPlace = &place
		}
		if cmd.To() != nil {
			place, placeErr := kernel.NewPlace(*cmd.To())
			if placeErr != nil {
				return placeErr
			}
			toPlace = &place
		}

		routeNotes = aggregate.ChangeRoute(fromPlace, toPlace)
	}

	if cmd.ETAText() != nil {
		aggregate.SetETAText(*cmd.ETAText())
	}
	if cmd.ETAAt() != nil {
		aggregate.SetETAAt(*cmd.ETAAt())
	}
	if cmd.LastLocation() != nil {
		aggregate.SetLastLocation(*cmd.LastLocation())
	}

	if err = aggregate.RecordUpdate(timelineNote(cmd, routeNotes), time.Now()); err != nil {
		return err
	}

	if err = shipments.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.trigger.Fire(aggregate)

	return nil
}

func timelineNote(cmd UpdateShipmentCommand, routeNotes []string) string {
	if cmd.Note() != nil && strings.TrimSpace(*cmd.Note()) != "" {
		return strings.TrimSpace(*cmd.Note())
	}

	if cmd.LastLocation() != nil && strings.TrimSpace(*cmd.LastLocation()) != "" {
		return "Location: " + strings.TrimSpace(*cmd.LastLocation())
	}

	if len(routeNotes) > 0 {
		return strings.Join(routeNotes, " | ")
	}

	return "Updated"
}
