package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/api/dto"
	"github.com/spec-kit/church-cms/internal/service"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// GalleryHandler exposes gallery endpoints.
type GalleryHandler struct {
	gallery *service.GalleryService
}

// NewGalleryHandler constructs handler.
func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: galleryService}
}

// List GET /api/gallery.
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	images, err := h.gallery.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewGalleryImageViews(images))
}

// Upload POST /api/gallery with a multipart "image" part.
func (h *GalleryHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return apperrors.NewValidationError("no image uploaded", nil)
	}

	image, err := h.gallery.Upload(c.Context(), c.FormValue("caption"), file)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewGalleryImageView(image))
}

// Delete DELETE /api/gallery/:id.
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	if err := h.gallery.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Deleted"})
}
