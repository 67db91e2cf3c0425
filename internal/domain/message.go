package domain

import "time"

// Message is a contact-form submission viewable by the admin.
type Message struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Read      bool
	CreatedAt time.Time
}

// MessageStats summarizes the admin inbox.
type MessageStats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
	Read   int `json:"read"`
}
