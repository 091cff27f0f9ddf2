package pubsub

import (
	"context"

	"github.com/google/uuid"
)

// SessionPublisher stamps every message with one session id. A nil
// SessionPublisher, or one without an underlying publisher, drops messages.
type SessionPublisher struct {
	next Publisher
	id   string
}

var _ Publisher = (*SessionPublisher)(nil)

// NewSessionPublisher wraps next with a fresh random session id.
func NewSessionPublisher(next Publisher) *SessionPublisher {
	return &SessionPublisher{next: next, id: uuid.NewString()}
}

// SessionID returns the id stamped on outgoing messages.
func (s *SessionPublisher) SessionID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Publish implements Publisher.
func (s *SessionPublisher) Publish(ctx context.Context, msg Message) error {
	if s == nil || s.next == nil {
		return nil
	}
	msg.SessionID = s.id
	return s.next.Publish(ctx, msg)
}

// Close implements Publisher.
func (s *SessionPublisher) Close() error {
	if s == nil || s.next == nil {
		return nil
	}
	return s.next.Close()
}
