package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"globaledge/internal/core/ports"
)

// SMTPConfig holds the connection settings for the SMTP notifier.
// The port is expected to speak implicit TLS (typically 465).
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPNotifier delivers shipment notifications over SMTP. Each send opens
// a fresh connection; notification volume is low enough that connection
// reuse is not worth the session management.
type SMTPNotifier struct {
	config SMTPConfig
}

// NewSMTPNotifier creates a notifier that sends through the given server.
func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	if config.From == "" {
		config.From = config.Username
	}
	return &SMTPNotifier{config: config}
}

// SendShipmentUpdate renders and delivers the notification email.
func (n *SMTPNotifier) SendShipmentUpdate(_ context.Context, notification ports.ShipmentNotification) error {
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", n.config.From) +
			fmt.Sprintf("To: %s\r\n", notification.RecipientEmail) +
			fmt.Sprintf("Subject: %s\r\n", buildSubject(notification)) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			buildBody(notification),
	)

	serverAddr := n.config.Host + ":" + n.config.Port
	conn, err := tls.Dial("tcp", serverAddr, &tls.Config{ServerName: n.config.Host})
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, n.config.Host)
	if err != nil {
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err = client.Mail(n.config.From); err != nil {
		return err
	}
	if err = client.Rcpt(notification.RecipientEmail); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
