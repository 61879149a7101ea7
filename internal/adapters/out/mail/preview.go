package mail

import (
	"context"
	"log/slog"

	"globaledge/internal/core/ports"
)

// PreviewNotifier logs notifications instead of sending them. Used in
// development so booking flows can be exercised without an SMTP account.
// Logging is always treated as a successful send.
type PreviewNotifier struct {
	log *slog.Logger
}

// NewPreviewNotifier creates a notifier that only logs.
func NewPreviewNotifier(log *slog.Logger) *PreviewNotifier {
	return &PreviewNotifier{
		log: log.With("component", "mail-preview"),
	}
}

// SendShipmentUpdate logs the rendered notification and reports success.
func (n *PreviewNotifier) SendShipmentUpdate(ctx context.Context, notification ports.ShipmentNotification) error {
	n.log.InfoContext(ctx, "Email preview (not actually sent)",
		"to", notification.RecipientEmail,
		"subject", buildSubject(notification),
		"body", buildBody(notification),
	)
	return nil
}
