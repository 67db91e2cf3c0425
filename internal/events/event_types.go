package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMessageReceived   EventType = "message_received"
	EventBlogPublished     EventType = "blog_published"
	EventBulletinPublished EventType = "bulletin_published"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MessageReceivedPayload carries contact-form submission details.
type MessageReceivedPayload struct {
	MessageID string `json:"message_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Preview   string `json:"preview"`
}

// BlogPublishedPayload carries new blog post details.
type BlogPublishedPayload struct {
	BlogID string `json:"blog_id"`
	Title  string `json:"title"`
	Slug   string `json:"slug"`
}

// BulletinPublishedPayload carries new bulletin details.
type BulletinPublishedPayload struct {
	BulletinID string `json:"bulletin_id"`
	Title      string `json:"title"`
}
