package domain

import "time"

// ContentSection is a static site section (about, mission, etc.).
// Section names are lowercased and unique.
type ContentSection struct {
	ID        string
	Section   string
	Title     string
	Body      string
	UpdatedAt time.Time
}
