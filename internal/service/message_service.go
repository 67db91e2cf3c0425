package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/events"
	"github.com/spec-kit/church-cms/internal/repository"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// MessageInbox bundles messages with read/unread counts for the admin view.
type MessageInbox struct {
	Messages []domain.Message    `json:"messages"`
	Stats    domain.MessageStats `json:"stats"`
}

// MessageService handles contact-form submissions and the admin inbox.
type MessageService struct {
	messages   repository.MessageRepository
	dispatcher events.Dispatcher
}

// MessageInput is a contact-form submission.
type MessageInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// NewMessageService constructs the service.
func NewMessageService(messages repository.MessageRepository, dispatcher events.Dispatcher) *MessageService {
	return &MessageService{messages: messages, dispatcher: dispatcher}
}

// Submit validates and stores a contact-form message.
func (s *MessageService) Submit(ctx context.Context, input MessageInput) (*domain.Message, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	body := strings.TrimSpace(input.Message)

	if name == "" || email == "" || body == "" {
		return nil, apperrors.NewValidationError("please provide name, email, and message", nil)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.NewValidationError("please provide a valid email address", nil)
	}

	message := &domain.Message{
		Name:    name,
		Email:   email,
		Subject: strings.TrimSpace(input.Subject),
		Message: body,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventMessageReceived,
			Timestamp: time.Now(),
			Payload: events.MessageReceivedPayload{
				MessageID: message.ID,
				Name:      message.Name,
				Email:     message.Email,
				Preview:   preview(message.Message, 120),
			},
		})
	}
	return message, nil
}

// Inbox returns all messages, newest first, with counts.
func (s *MessageService) Inbox(ctx context.Context) (*MessageInbox, error) {
	messages, err := s.messages.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	stats := domain.MessageStats{Total: len(messages)}
	for _, m := range messages {
		if m.Read {
			stats.Read++
		} else {
			stats.Unread++
		}
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return &MessageInbox{Messages: messages, Stats: stats}, nil
}

// MarkRead flags a message as read.
func (s *MessageService) MarkRead(ctx context.Context, id string) (*domain.Message, error) {
	message, err := s.messages.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("message", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return message, nil
}

// Delete removes a message.
func (s *MessageService) Delete(ctx context.Context, id string) error {
	if err := s.messages.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("message", nil)
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}

func preview(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
