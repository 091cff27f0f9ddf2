package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nfrund/esperanca/internal/domain"
)

// Event[T] pairs a topic name with its payload type.
type Event[T any] struct {
	topicName string
}

// NewEvent creates a typed event for the given topic.
func NewEvent[T any](name string) Event[T] {
	return Event[T]{topicName: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// PageRenderedPayload is published after a page has been loaded into the
// content container and its hooks have run.
type PageRenderedPayload struct {
	Page string `json:"page"`
}

var (
	// PageRendered fires after every page swap.
	PageRendered = NewEvent[PageRenderedPayload]("page.rendered")
	// VolunteerRegistered fires after a registration has been persisted.
	VolunteerRegistered = NewEvent[domain.VolunteerRecord]("volunteer.registered")
)

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], payload T, metadata map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", event.Name(), err)
	}
	return p.Publish(ctx, Message{
		Topic:    event.Name(),
		Payload:  data,
		Metadata: metadata,
	})
}

// Decode unmarshals msg's payload as the event's type.
func Decode[T any](event Event[T], msg Message) (T, error) {
	var payload T
	if msg.Topic != "" && msg.Topic != event.Name() {
		return payload, fmt.Errorf("message on %q decoded as %q", msg.Topic, event.Name())
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("decoding %s payload: %w", event.Name(), err)
	}
	return payload, nil
}
