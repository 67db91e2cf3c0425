package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/api/dto"
	"github.com/spec-kit/church-cms/internal/service"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// ContentHandler exposes editable page-section endpoints.
type ContentHandler struct {
	content *service.ContentService
}

// NewContentHandler constructs handler.
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{content: contentService}
}

// List GET /api/content.
func (h *ContentHandler) List(c *fiber.Ctx) error {
	sections, err := h.content.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewContentSectionViews(sections))
}

// Get GET /api/content/:section.
func (h *ContentHandler) Get(c *fiber.Ctx) error {
	section, err := h.content.Get(c.Context(), c.Params("section"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewContentSectionView(section))
}

// Upsert PUT /api/content/:section.
func (h *ContentHandler) Upsert(c *fiber.Ctx) error {
	var req dto.ContentSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	section, err := h.content.Upsert(c.Context(), c.Params("section"), req.Title, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Content saved",
		"data":    dto.NewContentSectionView(section),
	})
}
