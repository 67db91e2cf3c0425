package dto

import (
	"time"

	"github.com/spec-kit/church-cms/internal/domain"
)

// MessageRequest is a contact-form submission.
type MessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// MessageView is the admin inbox projection.
type MessageView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewMessageView converts the domain model.
func NewMessageView(m *domain.Message) MessageView {
	return MessageView{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

// NewMessageViews converts a slice of messages.
func NewMessageViews(messages []domain.Message) []MessageView {
	views := make([]MessageView, 0, len(messages))
	for i := range messages {
		views = append(views, NewMessageView(&messages[i]))
	}
	return views
}
