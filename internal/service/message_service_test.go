package service

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/events"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

type fakeMessageRepo struct {
	messages []domain.Message
	nextID   int
}

func (r *fakeMessageRepo) Create(_ context.Context, message *domain.Message) error {
	r.nextID++
	message.ID = "msg-" + strconv.Itoa(r.nextID)
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepo) List(_ context.Context) ([]domain.Message, error) {
	out := make([]domain.Message, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(_ context.Context, id string) (*domain.Message, error) {
	for i := range r.messages {
		if r.messages[i].ID == id {
			r.messages[i].Read = true
			copied := r.messages[i]
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeMessageRepo) Delete(_ context.Context, id string) error {
	for i := range r.messages {
		if r.messages[i].ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func TestMessageSubmit(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := NewMessageService(repo, events.NewInMemoryDispatcher())

	t.Run("stores a valid submission", func(t *testing.T) {
		message, err := svc.Submit(context.Background(), MessageInput{
			Name:    "  Sam Visitor ",
			Email:   "Sam@Example.COM",
			Subject: "Service times",
			Message: "What time is the Sunday service?",
		})
		require.NoError(t, err)
		assert.Equal(t, "Sam Visitor", message.Name)
		assert.Equal(t, "sam@example.com", message.Email, "email is lowercased")
		assert.False(t, message.Read)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), MessageInput{
			Name:    "Sam",
			Email:   "not-an-email",
			Message: "hello",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), MessageInput{Email: "sam@example.com"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
	})
}

func TestMessageEventPreviewTruncation(t *testing.T) {
	repo := &fakeMessageRepo{}
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewMessageService(repo, dispatcher)

	var payload events.MessageReceivedPayload
	dispatcher.Subscribe(events.EventMessageReceived, func(_ context.Context, event events.Event) error {
		payload = event.Payload.(events.MessageReceivedPayload)
		return nil
	})

	body := strings.Repeat("λ", 200)
	_, err := svc.Submit(context.Background(), MessageInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: body,
	})
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(payload.Preview))
	assert.Equal(t, 120, utf8.RuneCountInString(payload.Preview))
	assert.True(t, strings.HasPrefix(body, payload.Preview))
}

func TestMessageInboxStats(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := NewMessageService(repo, events.NewInMemoryDispatcher())

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(context.Background(), MessageInput{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Message: "hello " + strconv.Itoa(i),
		})
		require.NoError(t, err)
	}

	_, err := svc.MarkRead(context.Background(), "msg-1")
	require.NoError(t, err)

	inbox, err := svc.Inbox(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.MessageStats{Total: 3, Unread: 2, Read: 1}, inbox.Stats)
}

func TestMessageMarkReadAndDelete(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := NewMessageService(repo, events.NewInMemoryDispatcher())

	t.Run("unknown ids are 404", func(t *testing.T) {
		_, err := svc.MarkRead(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)

		err = svc.Delete(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
	})

	t.Run("delete removes the message", func(t *testing.T) {
		message, err := svc.Submit(context.Background(), MessageInput{
			Name: "Visitor", Email: "v@example.com", Message: "hi",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), message.ID))

		inbox, err := svc.Inbox(context.Background())
		require.NoError(t, err)
		assert.Empty(t, inbox.Messages)
	})
}
