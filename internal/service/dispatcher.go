package service

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/ssapio/inferencegate-web/internal/domain"
	"github.com/ssapio/inferencegate-web/internal/shared/config"
)

// Dispatcher sends a single outbound notification message. Implementations
// attempt exactly one send; there are no retries at this layer.
type Dispatcher interface {
	Configured() bool
	Send(ctx context.Context, msg *domain.NotificationMessage) error
}

// SMTPMailer sends mail over a per-call SMTP connection. Each send dials,
// delivers and releases its own connection; nothing is shared between
// concurrent requests.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer creates a mailer for the given transport configuration
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Configured reports whether host, user and password are all present
func (m *SMTPMailer) Configured() bool {
	return m.cfg.Configured()
}

// Send delivers one message. Port 465 gets an implicit TLS connection;
// every other port uses smtp.SendMail with its opportunistic STARTTLS
// upgrade.
func (m *SMTPMailer) Send(_ context.Context, msg *domain.NotificationMessage) error {
	payload := buildPayload(msg)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)

	if m.cfg.ImplicitTLS() {
		return m.sendTLS(auth, msg, payload)
	}
	return smtp.SendMail(m.cfg.Addr(), auth, msg.From, []string{msg.To}, payload)
}

// sendTLS speaks SMTPS: TLS from the first byte, then the usual
// MAIL/RCPT/DATA sequence.
func (m *SMTPMailer) sendTLS(auth smtp.Auth, msg *domain.NotificationMessage, payload []byte) error {
	tlsConfig := &tls.Config{
		ServerName: m.cfg.Host,
	}

	conn, err := tls.Dial("tcp", m.cfg.Addr(), tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err = client.Mail(msg.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err = client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err = w.Write(payload); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return w.Close()
}

// buildPayload renders the RFC 822 wire form of a message. All bodies are
// plain text.
func buildPayload(msg *domain.NotificationMessage) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return []byte(b.String())
}
