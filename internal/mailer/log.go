package mailer

import (
	"context"

	"cashtrackr/internal/logger"
)

// LogMailer writes messages to the application log instead of sending them.
// It is used in development when no SMTP host is configured.
type LogMailer struct{}

// NewLogMailer creates a LogMailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs msg and never fails.
func (m *LogMailer) Send(_ context.Context, msg Message) error {
	logger.Get().Infow("mail not sent, no SMTP host configured",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.HTML,
	)
	return nil
}
