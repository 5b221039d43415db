package routes

import (
	"inkwell-backend/internal/controllers"
	"inkwell-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func AuthRoutes(app *fiber.App, db *mongo.Database, secret string) {
	handler := &controllers.AuthHandler{
		Users:  &repository.UserRepository{Col: db.Collection("auth_app")},
		Secret: secret,
	}

	auth := app.Group("/api/auth")
	auth.Post("/signup", handler.Signup)
	auth.Post("/login", handler.Login)
}
