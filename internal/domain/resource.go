package domain

import "time"

// ResourceType distinguishes uploaded files from external links.
type ResourceType string

const (
	ResourceTypeFile ResourceType = "file"
	ResourceTypeLink ResourceType = "link"
)

// ResourceStats summarizes the resource library by type.
type ResourceStats struct {
	Total int `json:"total"`
	Files int `json:"files"`
	Links int `json:"links"`
}

// Resource is a downloadable document or an external link.
type Resource struct {
	ID          string
	Title       string
	Description string
	Link        string
	Type        ResourceType
	CreatedAt   time.Time
}
