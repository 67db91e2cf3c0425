package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/api/dto"
	"github.com/spec-kit/church-cms/internal/service"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// MessagesHandler exposes contact-message endpoints.
type MessagesHandler struct {
	messages *service.MessageService
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(messageService *service.MessageService) *MessagesHandler {
	return &MessagesHandler{messages: messageService}
}

// Submit POST /api/messages, public.
func (h *MessagesHandler) Submit(c *fiber.Ctx) error {
	var req dto.MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	message, err := h.messages.Submit(c.Context(), service.MessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Message received",
		"data":    dto.NewMessageView(message),
	})
}

// Inbox GET /api/messages, admin only.
func (h *MessagesHandler) Inbox(c *fiber.Ctx) error {
	inbox, err := h.messages.Inbox(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"messages": dto.NewMessageViews(inbox.Messages),
		"stats":    inbox.Stats,
	})
}

// MarkRead PUT /api/messages/:id/read.
func (h *MessagesHandler) MarkRead(c *fiber.Ctx) error {
	message, err := h.messages.MarkRead(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Marked as read",
		"data":    dto.NewMessageView(message),
	})
}

// Delete DELETE /api/messages/:id.
func (h *MessagesHandler) Delete(c *fiber.Ctx) error {
	if err := h.messages.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Message deleted"})
}
