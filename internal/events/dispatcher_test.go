package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherPublishesToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventBlogPublished, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})
	dispatcher.Subscribe(EventMessageReceived, func(_ context.Context, _ Event) error {
		t.Fatal("handler for a different event type must not fire")
		return nil
	})

	event := Event{
		ID:        "evt-1",
		Type:      EventBlogPublished,
		Timestamp: time.Now(),
		Payload:   BlogPublishedPayload{BlogID: "blog-1", Title: "Title", Slug: "title"},
	}
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, received, 1)
	assert.Equal(t, "evt-1", received[0].ID)
}

func TestDispatcherFailingHandlerDoesNotBlockOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var secondFired bool
	dispatcher.Subscribe(EventMessageReceived, func(_ context.Context, _ Event) error {
		return errors.New("handler failure")
	})
	dispatcher.Subscribe(EventMessageReceived, func(_ context.Context, _ Event) error {
		secondFired = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventMessageReceived}))
	assert.True(t, secondFired)
}

func TestDispatcherNoSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	assert.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventBulletinPublished}))
}
