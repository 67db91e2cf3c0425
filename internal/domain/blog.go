package domain

import "time"

// Blog is a published blog post. Slug is derived from the title and unique.
type Blog struct {
	ID        string
	Title     string
	Slug      string
	Content   string
	Author    string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
