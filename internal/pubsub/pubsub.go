package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "page.rendered").
	Topic string
	// SessionID identifies the page session that produced the message.
	SessionID string
	// Payload contains the raw message data, usually JSON.
	Payload []byte
	// Metadata carries small string attributes such as the page key.
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the bus.
type Subscriber interface {
	// Subscribe starts listening to the given topic, processing messages with
	// the handler in the background until ctx is cancelled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
