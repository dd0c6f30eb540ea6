package handlers

import (
	"errors"
	"log"

	"contactboard/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler handles image upload requests.
type UploadHandler struct {
	service *services.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{
		service: service,
	}
}

// RegisterRoutes registers the upload route with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/upload", h.HandleUpload)
}

// HandleUpload accepts a single multipart file under the "file" field,
// validates it, and stores it for static serving.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to upload file")
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := h.service.Store(fileHeader.Filename, contentType, fileHeader.Size, src)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFileType):
			return respondError(c, fiber.StatusBadRequest, "Invalid file type. Only JPEG, PNG, GIF, and WebP are allowed.")
		case errors.Is(err, services.ErrFileTooLarge):
			return respondError(c, fiber.StatusBadRequest, "File too large. Maximum size is 5MB.")
		}
		log.Printf("Error storing uploaded file: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"imageUrl": result.ImageURL,
		"filename": result.Filename,
	})
}
