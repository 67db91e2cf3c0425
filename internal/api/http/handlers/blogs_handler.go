package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/api/dto"
	"github.com/spec-kit/church-cms/internal/service"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// BlogsHandler exposes blog post endpoints.
type BlogsHandler struct {
	blogs *service.BlogService
}

// NewBlogsHandler constructs handler.
func NewBlogsHandler(blogService *service.BlogService) *BlogsHandler {
	return &BlogsHandler{blogs: blogService}
}

// List GET /api/blogs.
func (h *BlogsHandler) List(c *fiber.Ctx) error {
	blogs, err := h.blogs.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBlogViews(blogs))
}

// Get GET /api/blogs/:slug.
func (h *BlogsHandler) Get(c *fiber.Ctx) error {
	blog, err := h.blogs.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBlogView(blog))
}

// Create POST /api/blogs.
func (h *BlogsHandler) Create(c *fiber.Ctx) error {
	var req dto.BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	blog, err := h.blogs.Create(c.Context(), service.BlogInput{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Image:   req.Image,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Blog created",
		"blog":    dto.NewBlogView(blog),
	})
}

// Update PUT /api/blogs/:slug.
func (h *BlogsHandler) Update(c *fiber.Ctx) error {
	var req dto.BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	blog, err := h.blogs.Update(c.Context(), c.Params("slug"), service.BlogInput{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Image:   req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Blog updated",
		"blog":    dto.NewBlogView(blog),
	})
}

// Delete DELETE /api/blogs/:slug.
func (h *BlogsHandler) Delete(c *fiber.Ctx) error {
	if err := h.blogs.Delete(c.Context(), c.Params("slug")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Blog deleted"})
}
