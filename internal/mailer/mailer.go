// Package mailer delivers transactional emails (account confirmation and
// password reset) over SMTP.
package mailer

import (
	"context"

	"cashtrackr/internal/config"
)

// Message is a single outbound HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends messages. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New returns an SMTP mailer when SMTP_HOST is configured and a logging
// mailer otherwise.
func New(cfg *config.Config) (Mailer, error) {
	if cfg.SMTPHost == "" {
		return NewLogMailer(), nil
	}
	return NewSMTPMailer(SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
}
