// Package notification delivers alert digests to operators over email and
// webhooks.
package notification

import (
	"fmt"
	"net/smtp"
	"strings"

	"NetSentry/internal/config"
)

// EmailNotifier sends HTML digests over SMTP.
type EmailNotifier struct {
	addr string
	from string
	to   []string
	auth smtp.Auth
}

// NewEmailNotifier creates an EmailNotifier from the SMTP config. The
// recipient list is a comma-separated string in the config file.
func NewEmailNotifier(cfg config.SMTPConfig) *EmailNotifier {
	recipients := strings.Split(cfg.To, ",")
	for i := range recipients {
		recipients[i] = strings.TrimSpace(recipients[i])
	}
	// PlainAuth will not send credentials until the server identifies itself as a trusted one.
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	return &EmailNotifier{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from: cfg.From,
		to:   recipients,
		auth: auth,
	}
}

// Send sends an email to the configured recipients.
func (n *EmailNotifier) Send(subject, body string) error {
	var msg strings.Builder
	msg.WriteString("To: " + strings.Join(n.to, ", ") + "\r\n")
	msg.WriteString("From: " + n.from + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(n.addr, n.auth, n.from, n.to, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
