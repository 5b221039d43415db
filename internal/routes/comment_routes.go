package routes

import (
	"inkwell-backend/internal/controllers"
	"inkwell-backend/internal/middleware"
	"inkwell-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func CommentRoutes(app *fiber.App, db *mongo.Database) {
	likesCol := db.Collection("likes")
	comments := &repository.CommentRepository{Col: db.Collection("comments"), LikesCol: likesCol}
	users := &repository.UserRepository{Col: db.Collection("auth_app")}
	notifications := &repository.NotificationRepository{Col: db.Collection("notifications")}

	handler := &controllers.CommentHandler{
		Comments:      comments,
		Posts:         &repository.PostRepository{Col: db.Collection("posts")},
		Users:         users,
		Notifications: notifications,
	}
	likeHandler := &controllers.LikeHandler{
		LikesCol:      likesCol,
		Posts:         handler.Posts,
		Comments:      comments,
		Users:         users,
		Notifications: notifications,
	}

	// Comment creation and listing hang off the post they belong to.
	app.Get("/api/posts/:id/comments", handler.List)
	app.Post("/api/posts/:id/comments", middleware.RequireAuth(), handler.Create)

	group := app.Group("/api/comments")
	group.Put("/:id", middleware.RequireAuth(), handler.Update)
	group.Delete("/:id", middleware.RequireAuth(), handler.Delete)
	group.Post("/:id/like", middleware.RequireAuth(), likeHandler.LikeComment)
}
