package routes

import (
	"inkwell-backend/config"
	"inkwell-backend/internal/controllers"
	"inkwell-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App, cfg config.Config) {
	handler := &controllers.UploadHandler{Cfg: cfg}

	app.Post("/api/upload", middleware.RequireAuth(), handler.Upload)
}
