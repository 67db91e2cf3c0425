package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/api/dto"
	"github.com/spec-kit/church-cms/internal/service"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// MinistriesHandler exposes ministry endpoints.
type MinistriesHandler struct {
	ministries *service.MinistryService
}

// NewMinistriesHandler constructs handler.
func NewMinistriesHandler(ministryService *service.MinistryService) *MinistriesHandler {
	return &MinistriesHandler{ministries: ministryService}
}

// List GET /api/ministries.
func (h *MinistriesHandler) List(c *fiber.Ctx) error {
	ministries, err := h.ministries.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMinistryViews(ministries))
}

// Create POST /api/ministries.
func (h *MinistriesHandler) Create(c *fiber.Ctx) error {
	var req dto.MinistryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ministry, err := h.ministries.Create(c.Context(), service.MinistryInput{
		Name:        req.Name,
		Leader:      req.Leader,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Ministry created",
		"data":    dto.NewMinistryView(ministry),
	})
}

// Update PUT /api/ministries/:id.
func (h *MinistriesHandler) Update(c *fiber.Ctx) error {
	var req dto.MinistryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ministry, err := h.ministries.Update(c.Context(), c.Params("id"), service.MinistryInput{
		Name:        req.Name,
		Leader:      req.Leader,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Ministry updated",
		"data":    dto.NewMinistryView(ministry),
	})
}

// Delete DELETE /api/ministries/:id.
func (h *MinistriesHandler) Delete(c *fiber.Ctx) error {
	if err := h.ministries.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Ministry deleted"})
}
