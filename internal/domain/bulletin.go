package domain

import "time"

// Bulletin is a downloadable church bulletin (PDF or Word document).
type Bulletin struct {
	ID          string
	Title       string
	Description string
	File        string
	CreatedAt   time.Time
}
