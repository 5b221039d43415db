// @title Inkwell API
// @version 1.0
// @description Publishing platform backend: articles, comments, likes, follows.
// @host localhost:8000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"os"

	_ "inkwell-backend/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"inkwell-backend/bootstrap"
	"inkwell-backend/config"
	"inkwell-backend/database"
	"inkwell-backend/internal/middleware"
	"inkwell-backend/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET is required")
	}

	cfg := config.LoadConfig()

	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)

	// Unique slug/email/edge constraints live in the database, not the app.
	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// Serve uploaded images back out under the same public path they were
	// stored with.
	app.Static("/uploads", cfg.UploadDir)

	app.Use(middleware.JWTUidOnly(secret))

	routes.AuthRoutes(app, db, secret)
	routes.PostRoutes(app, db)
	routes.CommentRoutes(app, db)
	routes.UserRoutes(app, db)
	routes.NotificationRoutes(app, db)
	routes.UploadRoutes(app, cfg)

	log.Fatal(app.Listen(":" + cfg.Port))
}
