package ports

import (
	"context"
)

// ShipmentNotification carries everything a mailer needs to render a
// status update message without reaching back into the domain.
type ShipmentNotification struct {
	RecipientEmail string
	RecipientName  string
	TrackingNumber string
	StatusLabel    string
	// Subject, when set, replaces the standard tracking-number subject line.
	Subject      string
	ETAText      string
	LastLocation string
	Note         string
}

// Notifier sends shipment status notifications to recipients.
// Implementations must not block shipment processing: send failures are
// reported as errors and logged by callers, never propagated to clients.
type Notifier interface {
	SendShipmentUpdate(ctx context.Context, notification ShipmentNotification) error
}
