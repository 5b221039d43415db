package routes

import (
	"inkwell-backend/internal/controllers"
	"inkwell-backend/internal/middleware"
	"inkwell-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func PostRoutes(app *fiber.App, db *mongo.Database) {
	likesCol := db.Collection("likes")
	handler := &controllers.PostHandler{
		Posts:    &repository.PostRepository{Col: db.Collection("posts")},
		Users:    &repository.UserRepository{Col: db.Collection("auth_app")},
		LikesCol: likesCol,
	}
	likeHandler := &controllers.LikeHandler{
		LikesCol:      likesCol,
		Posts:         handler.Posts,
		Comments:      &repository.CommentRepository{Col: db.Collection("comments"), LikesCol: likesCol},
		Users:         handler.Users,
		Notifications: &repository.NotificationRepository{Col: db.Collection("notifications")},
	}

	app.Get("/api/tags", handler.Tags)

	posts := app.Group("/api/posts")

	posts.Get("/", handler.List)
	posts.Post("/", middleware.RequireAuth(), handler.Create)

	// Fixed paths before the :id wildcard, or "search" parses as an id.
	posts.Get("/search", handler.Search)
	posts.Get("/popular", handler.Popular)
	posts.Get("/recommended", handler.Recommended)
	posts.Get("/slug/:slug", handler.GetBySlug)
	posts.Get("/tag/:tag", handler.ListByTag)

	posts.Get("/:id", handler.Get)
	posts.Put("/:id", middleware.RequireAuth(), handler.Update)
	posts.Delete("/:id", middleware.RequireAuth(), handler.Delete)
	posts.Post("/:id/views", handler.IncViews)

	posts.Post("/:id/like", middleware.RequireAuth(), likeHandler.LikePost)
	posts.Get("/:id/has-liked", middleware.RequireAuth(), likeHandler.HasLiked)
}
