package dto

import (
	"time"

	"github.com/spec-kit/church-cms/internal/domain"
)

// BlogRequest payload for creating or updating a post.
type BlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Image   string `json:"image"`
}

// BlogView is the public post projection.
type BlogView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBlogView converts the domain model.
func NewBlogView(b *domain.Blog) BlogView {
	return BlogView{
		ID:        b.ID,
		Title:     b.Title,
		Slug:      b.Slug,
		Content:   b.Content,
		Author:    b.Author,
		Image:     b.Image,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// NewBlogViews converts a slice of posts.
func NewBlogViews(blogs []domain.Blog) []BlogView {
	views := make([]BlogView, 0, len(blogs))
	for i := range blogs {
		views = append(views, NewBlogView(&blogs[i]))
	}
	return views
}

// MinistryRequest payload for creating or updating a ministry.
type MinistryRequest struct {
	Name        string `json:"name"`
	Leader      string `json:"leader"`
	Description string `json:"description"`
}

// MinistryView is the public ministry projection.
type MinistryView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Leader      string    `json:"leader"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewMinistryView converts the domain model.
func NewMinistryView(m *domain.Ministry) MinistryView {
	return MinistryView{
		ID:          m.ID,
		Name:        m.Name,
		Leader:      m.Leader,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// NewMinistryViews converts a slice of ministries.
func NewMinistryViews(ministries []domain.Ministry) []MinistryView {
	views := make([]MinistryView, 0, len(ministries))
	for i := range ministries {
		views = append(views, NewMinistryView(&ministries[i]))
	}
	return views
}

// BulletinView is the public bulletin projection.
type BulletinView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	File        string    `json:"file,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewBulletinView converts the domain model.
func NewBulletinView(b *domain.Bulletin) BulletinView {
	return BulletinView{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		File:        b.File,
		CreatedAt:   b.CreatedAt,
	}
}

// NewBulletinViews converts a slice of bulletins.
func NewBulletinViews(bulletins []domain.Bulletin) []BulletinView {
	views := make([]BulletinView, 0, len(bulletins))
	for i := range bulletins {
		views = append(views, NewBulletinView(&bulletins[i]))
	}
	return views
}

// GalleryImageView is the public gallery projection.
type GalleryImageView struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewGalleryImageView converts the domain model.
func NewGalleryImageView(g *domain.GalleryImage) GalleryImageView {
	return GalleryImageView{
		ID:        g.ID,
		URL:       g.URL,
		Caption:   g.Caption,
		CreatedAt: g.CreatedAt,
	}
}

// NewGalleryImageViews converts a slice of images.
func NewGalleryImageViews(images []domain.GalleryImage) []GalleryImageView {
	views := make([]GalleryImageView, 0, len(images))
	for i := range images {
		views = append(views, NewGalleryImageView(&images[i]))
	}
	return views
}

// ResourceView is the public resource projection.
type ResourceView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewResourceView converts the domain model.
func NewResourceView(r *domain.Resource) ResourceView {
	return ResourceView{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Link:        r.Link,
		Type:        string(r.Type),
		CreatedAt:   r.CreatedAt,
	}
}

// NewResourceViews converts a slice of resources.
func NewResourceViews(resources []domain.Resource) []ResourceView {
	views := make([]ResourceView, 0, len(resources))
	for i := range resources {
		views = append(views, NewResourceView(&resources[i]))
	}
	return views
}

// ContentSectionRequest payload for upserting a section.
type ContentSectionRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ContentSectionView is the public section projection.
type ContentSectionView struct {
	ID        string    `json:"id"`
	Section   string    `json:"section"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewContentSectionView converts the domain model.
func NewContentSectionView(c *domain.ContentSection) ContentSectionView {
	return ContentSectionView{
		ID:        c.ID,
		Section:   c.Section,
		Title:     c.Title,
		Body:      c.Body,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewContentSectionViews converts a slice of sections.
func NewContentSectionViews(sections []domain.ContentSection) []ContentSectionView {
	views := make([]ContentSectionView, 0, len(sections))
	for i := range sections {
		views = append(views, NewContentSectionView(&sections[i]))
	}
	return views
}
