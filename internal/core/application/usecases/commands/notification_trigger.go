package commands

import (
	"context"
	"log/slog"
	"time"

	"globaledge/internal/core/domain/model/shipment"
	"globaledge/internal/core/ports"
)

// notifySendTimeout bounds a single background notification send.
const notifySendTimeout = 15 * time.Second

// NotificationTrigger fires recipient notifications after shipment updates.
// Sends happen on a background goroutine after the transaction commits, so
// a slow or failing mailer never delays or fails the update itself.
type NotificationTrigger struct {
	notifier ports.Notifier
	enabled  bool
	log      *slog.Logger
}

// NewNotificationTrigger creates a trigger. When enabled is false the
// trigger is a no-op; explicit notify commands bypass it and send directly.
func NewNotificationTrigger(notifier ports.Notifier, enabled bool, log *slog.Logger) NotificationTrigger {
	return NotificationTrigger{
		notifier: notifier,
		enabled:  enabled,
		log:      log.With("component", "notification-trigger"),
	}
}

// Fire sends a status notification for the shipment in the background.
// Skips silently when disabled or when the recipient has no email.
func (t NotificationTrigger) Fire(aggregate *shipment.Shipment) {
	if !t.enabled || t.notifier == nil {
		return
	}
	if !aggregate.Recipient().HasEmail() {
		return
	}

	notification := NotificationFromShipment(aggregate)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifySendTimeout)
		defer cancel()

		if err := t.notifier.SendShipmentUpdate(ctx, notification); err != nil {
			t.log.Warn("shipment notification failed",
				"trackingNumber", notification.TrackingNumber,
				"error", err,
			)
		}
	}()
}

// NotificationFromShipment builds the mailer payload from the current
// shipment state, using the latest timeline note as the message note.
func NotificationFromShipment(aggregate *shipment.Shipment) ports.ShipmentNotification {
	var note string
	if timeline := aggregate.Timeline(); len(timeline) > 0 {
		note = timeline[len(timeline)-1].Note()
	}

	return ports.ShipmentNotification{
		RecipientEmail: aggregate.RecipientEmail().String(),
		RecipientName:  aggregate.Recipient().Name(),
		TrackingNumber: aggregate.TrackingNumber().String(),
		StatusLabel:    aggregate.Status().Label(),
		ETAText:        aggregate.ETAText(),
		LastLocation:   aggregate.LastLocation(),
		Note:           note,
	}
}
