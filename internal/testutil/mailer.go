package testutil

import (
	"context"
	"sync"

	"cashtrackr/internal/mailer"
)

// MailRecorder is a mailer.Mailer that keeps sent messages in memory.
// Setting Err makes every Send fail with it.
type MailRecorder struct {
	mu   sync.Mutex
	sent []mailer.Message
	Err  error
}

// Send records msg or returns Err.
func (r *MailRecorder) Send(_ context.Context, msg mailer.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.sent = append(r.sent, msg)
	return nil
}

// Sent returns a copy of the recorded messages.
func (r *MailRecorder) Sent() []mailer.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mailer.Message(nil), r.sent...)
}

// Last returns the most recent message, or false if none was sent.
func (r *MailRecorder) Last() (mailer.Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return mailer.Message{}, false
	}
	return r.sent[len(r.sent)-1], true
}
