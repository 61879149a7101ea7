package commands

import (
	"errors"
	"strings"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/pkg/guard"
)

var ErrNotifyRecipientCommandIsNotConstructed = errors.New(
	"NotifyRecipientCommand must be created via NewNotifyRecipientCommand constructor",
)

// NotifyRecipientCommand requests an explicit status notification for a
// shipment, regardless of the auto-notify setting. The caller may override
// the destination address, the subject line, and the message body; empty
// overrides fall back to the recipient's stored email, the standard subject,
// and the latest timeline note.
type NotifyRecipientCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	toOverride string
	subject    string
	message    string

	guard guard.ConstructorGuard
}

// NewNotifyRecipientCommand creates a command to notify a shipment's recipient.
// toOverride, when non-empty, must be a well-formed email address.
func NewNotifyRecipientCommand(
	shipmentID kernel.UUID,
	toOverride, subject, message string,
) (NotifyRecipientCommand, error) {
	notifyCommand := NotifyRecipientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := shipmentID.Validate(); err != nil {
		return NotifyRecipientCommand{}, err
	}
	notifyCommand.shipmentID = shipmentID

	if strings.TrimSpace(toOverride) != "" {
		email, err := kernel.NewEmail(toOverride)
		if err != nil {
			return NotifyRecipientCommand{}, err
		}
		notifyCommand.toOverride = email.String()
	}
	notifyCommand.subject = strings.TrimSpace(subject)
	notifyCommand.message = strings.TrimSpace(message)

	return notifyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrNotifyRecipientCommandIsNotConstructed if validation fails.
func (c NotifyRecipientCommand) Validate() error {
	return c.guard.Validate(ErrNotifyRecipientCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to notify about.
func (c NotifyRecipientCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ToOverride returns the normalized destination override, empty when the
// stored recipient email should be used.
func (c NotifyRecipientCommand) ToOverride() string {
	return c.toOverride
}

// Subject returns the custom subject line, empty when the standard
// tracking-number subject should be used.
func (c NotifyRecipientCommand) Subject() string {
	return c.subject
}

// Message returns the custom message body, empty when the latest timeline
// note should be used.
func (c NotifyRecipientCommand) Message() string {
	return c.message
}
