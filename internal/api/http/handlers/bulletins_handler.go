package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/api/dto"
	"github.com/spec-kit/church-cms/internal/service"
)

// BulletinsHandler exposes bulletin endpoints.
type BulletinsHandler struct {
	bulletins *service.BulletinService
}

// NewBulletinsHandler constructs handler.
func NewBulletinsHandler(bulletinService *service.BulletinService) *BulletinsHandler {
	return &BulletinsHandler{bulletins: bulletinService}
}

// List GET /api/bulletins.
func (h *BulletinsHandler) List(c *fiber.Ctx) error {
	bulletins, err := h.bulletins.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBulletinViews(bulletins))
}

// Create POST /api/bulletins with an optional multipart "file" part.
func (h *BulletinsHandler) Create(c *fiber.Ctx) error {
	var file *multipart.FileHeader
	if fh, err := c.FormFile("file"); err == nil {
		file = fh
	}

	bulletin, err := h.bulletins.Create(c.Context(), c.FormValue("title"), c.FormValue("description"), file)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewBulletinView(bulletin))
}

// Delete DELETE /api/bulletins/:id.
func (h *BulletinsHandler) Delete(c *fiber.Ctx) error {
	if err := h.bulletins.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Bulletin deleted"})
}
