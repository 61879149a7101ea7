// Package mail provides the Notifier implementations: a real SMTP sender
// and a preview variant that logs instead of sending.
package mail

import (
	"fmt"
	"strings"

	"globaledge/internal/core/ports"
)

// buildSubject renders the notification subject line. An explicit Subject
// override wins over the standard tracking-number form.
func buildSubject(notification ports.ShipmentNotification) string {
	if notification.Subject != "" {
		return notification.Subject
	}
	return fmt.Sprintf("Shipment %s — %s", notification.TrackingNumber, notification.StatusLabel)
}

// buildBody renders the plain-text notification body.
func buildBody(notification ports.ShipmentNotification) string {
	var b strings.Builder

	name := strings.TrimSpace(notification.RecipientName)
	if name == "" {
		name = "there"
	}
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	fmt.Fprintf(&b, "Update on your shipment %s:\n", notification.TrackingNumber)
	fmt.Fprintf(&b, "Status: %s\n", notification.StatusLabel)

	if notification.LastLocation != "" {
		fmt.Fprintf(&b, "Last known location: %s\n", notification.LastLocation)
	}
	if notification.ETAText != "" {
		fmt.Fprintf(&b, "Estimated delivery: %s\n", notification.ETAText)
	}
	if notification.Note != "" {
		fmt.Fprintf(&b, "\n%s\n", notification.Note)
	}

	return b.String()
}
