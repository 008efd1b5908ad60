package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5 MiB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageUploadResponse is the API response after uploading an image.
type ImageUploadResponse struct {
	ImageURL string `json:"image_url"`
}

// UploadImage handles POST /api/images. The returned URL can be attached
// to a post via its image_url field.
func (s *Server) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("No file uploaded"))
	}

	if file.Size > maxImageSize {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Image exceeds the 5 MiB limit"))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Unsupported image type"))
	}

	if err := os.MkdirAll(s.config.MediaDir, 0o755); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	// Random filename prevents collisions and path traversal via the
	// client-supplied name.
	name := uuid.NewString() + ext
	if err := c.SaveFile(file, filepath.Join(s.config.MediaDir, name)); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(ImageUploadResponse{
		ImageURL: fmt.Sprintf("/media/%s", name),
	})
}
