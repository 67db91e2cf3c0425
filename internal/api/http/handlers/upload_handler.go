package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/storage"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// UploadHandler exposes raw file upload endpoints for the admin editor.
type UploadHandler struct {
	store         *storage.LocalStore
	maxImageBytes int64
	maxBatchFiles int
}

// NewUploadHandler constructs handler.
func NewUploadHandler(store *storage.LocalStore, maxImageBytes int64, maxBatchFiles int) *UploadHandler {
	return &UploadHandler{store: store, maxImageBytes: maxImageBytes, maxBatchFiles: maxBatchFiles}
}

// Single POST /api/upload with a multipart "image" part.
func (h *UploadHandler) Single(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return apperrors.NewValidationError("no image uploaded", nil)
	}

	stored, err := h.store.SaveImage(file, h.maxImageBytes)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Upload successful",
		"url":     stored.URL,
		"name":    stored.Filename,
	})
}

// Multiple POST /api/upload/multiple with repeated "images" parts.
func (h *UploadHandler) Multiple(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return apperrors.NewValidationError("invalid multipart form", nil)
	}

	files := form.File["images"]
	if len(files) == 0 {
		return apperrors.NewValidationError("no images uploaded", nil)
	}
	if len(files) > h.maxBatchFiles {
		return apperrors.NewValidationError(
			fmt.Sprintf("at most %d images per request", h.maxBatchFiles), nil)
	}

	urls := make([]string, 0, len(files))
	saved := make([]string, 0, len(files))
	for _, file := range files {
		stored, err := h.store.SaveImage(file, h.maxImageBytes)
		if err != nil {
			for _, name := range saved {
				_ = h.store.Delete(name)
			}
			return err
		}
		urls = append(urls, stored.URL)
		saved = append(saved, stored.Filename)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Upload successful",
		"urls":    urls,
	})
}

// Delete DELETE /api/upload/:filename.
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.Delete(c.Params("filename")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "File deleted"})
}
