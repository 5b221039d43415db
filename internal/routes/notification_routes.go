package routes

import (
	"inkwell-backend/internal/controllers"
	"inkwell-backend/internal/middleware"
	"inkwell-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func NotificationRoutes(app *fiber.App, db *mongo.Database) {
	handler := &controllers.NotificationHandler{
		Notifications: &repository.NotificationRepository{Col: db.Collection("notifications")},
	}

	group := app.Group("/api/notifications", middleware.RequireAuth())
	group.Get("/", handler.List)
	group.Post("/read", handler.MarkRead)
}
