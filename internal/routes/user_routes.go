package routes

import (
	"inkwell-backend/internal/controllers"
	"inkwell-backend/internal/middleware"
	"inkwell-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func UserRoutes(app *fiber.App, db *mongo.Database) {
	handler := &controllers.UserHandler{
		Users:         &repository.UserRepository{Col: db.Collection("auth_app")},
		Posts:         &repository.PostRepository{Col: db.Collection("posts")},
		FollowsCol:    db.Collection("follows"),
		Notifications: &repository.NotificationRepository{Col: db.Collection("notifications")},
	}

	users := app.Group("/api/users")
	users.Get("/:id", handler.Profile)
	users.Put("/:id", middleware.RequireAuth(), handler.UpdateProfile)
	users.Post("/:id/follow", middleware.RequireAuth(), handler.Follow)
	users.Get("/:id/is-following", handler.IsFollowing)
}
