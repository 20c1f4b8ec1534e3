// Package mailer delivers one-time verification codes to users.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
)

// Mailer dispatches an OTP to a recipient address. Implementations must be
// safe for concurrent use.
type Mailer interface {
	SendOtp(ctx context.Context, email string, code int, firstname string) error
}

// SMTPMailer sends OTP mail through a plain SMTP relay.
type SMTPMailer struct {
	addr string // host:port
	from string
	auth smtp.Auth
}

// NewSMTPMailer returns a Mailer backed by the given SMTP relay. Username may
// be empty for relays that accept unauthenticated submission (e.g. a local
// mailhog in development).
func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	m := &SMTPMailer{
		addr: host + ":" + port,
		from: from,
	}
	if username != "" {
		m.auth = smtp.PlainAuth("", username, password, host)
	}
	return m
}

func (m *SMTPMailer) SendOtp(_ context.Context, email string, code int, firstname string) error {
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Your LinkUp verification code\r\n\r\n"+
			"Hi %s,\r\n\r\nYour verification code is %06d.\r\n",
		m.from, email, firstname, code)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{email}, []byte(body)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", email, err)
	}
	return nil
}

// LogMailer logs codes instead of sending them. Used in development and tests.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer returns a Mailer that writes codes to the given logger.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendOtp(ctx context.Context, email string, code int, firstname string) error {
	m.logger.InfoContext(ctx, "OTP dispatch (log mailer)",
		slog.String("email", email),
		slog.String("firstname", firstname),
		slog.Int("code", code),
	)
	return nil
}
