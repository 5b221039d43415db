package controllers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inkwell-backend/config"
	"inkwell-backend/dto"
	"inkwell-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UploadHandler struct {
	Cfg config.Config
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Upload godoc
// @Summary      Upload an image
// @Description  Stores the file under the upload dir with a generated name and returns its public URL
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file (jpeg, png, gif or webp)"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "file is required"})
	}

	ctype := strings.ToLower(file.Header.Get("Content-Type"))
	if !allowedImageTypes[ctype] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "unsupported file type"})
	}

	if err := os.MkdirAll(h.Cfg.UploadDir, 0o755); err != nil {
		log.Println("create upload dir:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "upload failed"})
	}

	ext := filepath.Ext(utils.SanitizeFilename(file.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	if err := c.SaveFile(file, filepath.Join(h.Cfg.UploadDir, name)); err != nil {
		log.Println("save upload:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "upload failed"})
	}

	return c.JSON(dto.UploadResponse{URL: "/uploads/" + name, Success: true})
}
