package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/api/dto"
	"github.com/spec-kit/church-cms/internal/service"
)

// ResourcesHandler exposes resource endpoints.
type ResourcesHandler struct {
	resources *service.ResourceService
}

// NewResourcesHandler constructs handler.
func NewResourcesHandler(resourceService *service.ResourceService) *ResourcesHandler {
	return &ResourcesHandler{resources: resourceService}
}

func resourceInputFromForm(c *fiber.Ctx) service.ResourceInput {
	input := service.ResourceInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Type:        c.FormValue("type"),
		Link:        c.FormValue("link"),
	}
	if file, err := c.FormFile("file"); err == nil {
		input.File = file
	}
	return input
}

// List GET /api/resources.
func (h *ResourcesHandler) List(c *fiber.Ctx) error {
	list, err := h.resources.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"resources": dto.NewResourceViews(list.Resources),
		"stats":     list.Stats,
	})
}

// Create POST /api/resources (multipart form).
func (h *ResourcesHandler) Create(c *fiber.Ctx) error {
	resource, err := h.resources.Create(c.Context(), resourceInputFromForm(c))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Resource created",
		"data":    dto.NewResourceView(resource),
	})
}

// Update PUT /api/resources/:id (multipart form).
func (h *ResourcesHandler) Update(c *fiber.Ctx) error {
	resource, err := h.resources.Update(c.Context(), c.Params("id"), resourceInputFromForm(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Resource updated",
		"data":    dto.NewResourceView(resource),
	})
}

// Delete DELETE /api/resources/:id.
func (h *ResourcesHandler) Delete(c *fiber.Ctx) error {
	if err := h.resources.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Resource deleted"})
}
