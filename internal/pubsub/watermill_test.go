package pubsub

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/esperanca/internal/domain"
)

func receive(t *testing.T, ch <-chan Message) Message {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}
	}
}

func TestWatermillBridge_RoundTrip(t *testing.T) {
	bus := NewWatermillBridge(nil)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Message, 1)
	require.NoError(t, bus.Subscribe(ctx, "page.rendered", func(_ context.Context, msg Message) error {
		got <- msg
		return nil
	}))

	err := bus.Publish(ctx, Message{
		Topic:     "page.rendered",
		SessionID: "s-1",
		Payload:   []byte(`{"page":"home"}`),
		Metadata:  map[string]string{"page": "home"},
	})
	require.NoError(t, err)

	msg := receive(t, got)
	assert.Equal(t, "page.rendered", msg.Topic)
	assert.Equal(t, "s-1", msg.SessionID)
	assert.JSONEq(t, `{"page":"home"}`, string(msg.Payload))
	assert.Equal(t, map[string]string{"page": "home"}, msg.Metadata)
}

func TestWatermillBridge_HandlerErrorDoesNotStall(t *testing.T) {
	bus := NewWatermillBridge(nil)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan Message, 2)
	require.NoError(t, bus.Subscribe(ctx, "volunteer.registered", func(_ context.Context, msg Message) error {
		calls <- msg
		return errors.New("handler failed")
	}))

	require.NoError(t, bus.Publish(ctx, Message{Topic: "volunteer.registered", Payload: []byte(`{}`)}))
	require.NoError(t, bus.Publish(ctx, Message{Topic: "volunteer.registered", Payload: []byte(`{}`)}))

	receive(t, calls)
	receive(t, calls)
}

func TestTypedEvents(t *testing.T) {
	bus := NewWatermillBridge(nil)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Message, 1)
	require.NoError(t, bus.Subscribe(ctx, VolunteerRegistered.Name(), func(_ context.Context, msg Message) error {
		got <- msg
		return nil
	}))

	session := NewSessionPublisher(bus)
	_, err := uuid.Parse(session.SessionID())
	require.NoError(t, err)

	at := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	rec := domain.NewVolunteerRecord(map[string]string{"name": "Ana"}, at)
	require.NoError(t, Publish(ctx, session, VolunteerRegistered, rec, nil))

	msg := receive(t, got)
	assert.Equal(t, session.SessionID(), msg.SessionID)

	back, err := Decode(VolunteerRegistered, msg)
	require.NoError(t, err)
	assert.Equal(t, rec.Fields, back.Fields)
	assert.True(t, rec.SavedAt.Equal(back.SavedAt))

	_, err = Decode(PageRendered, msg)
	assert.Error(t, err)
}

func TestSessionPublisher_NilSafe(t *testing.T) {
	var nilSession *SessionPublisher
	assert.NoError(t, nilSession.Publish(context.Background(), Message{Topic: "x"}))
	assert.NoError(t, nilSession.Close())
	assert.Empty(t, nilSession.SessionID())

	detached := NewSessionPublisher(nil)
	assert.NoError(t, detached.Publish(context.Background(), Message{Topic: "x"}))
}
