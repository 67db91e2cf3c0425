package domain

import "time"

// Admin is the single administrator account that manages site content.
// The password hash never leaves the server.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
