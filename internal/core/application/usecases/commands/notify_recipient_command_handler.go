package commands

import (
	"context"

	"globaledge/internal/core/ports"
	"globaledge/internal/pkg/errs"
)

// NotifyRecipientCommandHandler sends an on-demand status notification.
// Unlike the post-update trigger, the send is synchronous and its failure
// is reported to the caller.
type NotifyRecipientCommandHandler struct {
	uowFactory ShipmentUoWFactory
	notifier   ports.Notifier
}

// NewNotifyRecipientCommandHandler creates a handler for explicit notifications.
func NewNotifyRecipientCommandHandler(
	uowFactory ShipmentUoWFactory,
	notifier ports.Notifier,
) NotifyRecipientCommandHandler {
	return NotifyRecipientCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the shipment and sends the current status to the recipient.
// Returns errs.ErrObjectNotFound for unknown shipments, errs.ErrValueIsRequired
// when no destination email can be resolved, and the mailer error when the
// send fails.
func (h NotifyRecipientCommandHandler) Handle(ctx context.Context, cmd NotifyRecipientCommand) error {
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

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notification := NotificationFromShipment(aggregate)
	if cmd.ToOverride() != "" {
		notification.RecipientEmail = cmd.ToOverride()
	}
	if cmd.Subject() != "" {
		notification.Subject = cmd.Subject()
	}
	if cmd.Message() != "" {
		notification.Note = cmd.Message()
	}
	if notification.RecipientEmail == "" {
		return errs.NewValueIsRequiredError("recipient email")
	}

	return h.notifier.SendShipmentUpdate(ctx, notification)
}
