package domain

import "time"

// GalleryImage is a photo shown in the public gallery.
type GalleryImage struct {
	ID        string
	URL       string
	Caption   string
	CreatedAt time.Time
}
