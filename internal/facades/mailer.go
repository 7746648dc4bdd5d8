package facades

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/cambiove/exchange-api/internal/logger"
)

// SMTPMailer sends plain-text notification emails. A collaborator, not a
// decision-maker: callers treat failures as log-and-continue.
type SMTPMailer struct {
	addr string // host:port
	from string
	auth smtp.Auth
}

// NewSMTPMailer creates a mailer. auth may be nil for unauthenticated relays.
func NewSMTPMailer(addr, from string, auth smtp.Auth) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from, auth: auth}
}

// Send delivers a single plain-text email.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))

	if err != nil {
		logger.Log.Errorw("failed to send email", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("send mail: %w", err)
	}

	logger.Log.Infow("email sent", "to", to, "subject", subject)
	return nil
}
