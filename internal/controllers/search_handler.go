package controllers

import (
	"log"
	"sort"

	"inkwell-backend/config"
	"inkwell-backend/dto"
	"inkwell-backend/internal/middleware"
	"inkwell-backend/internal/models"
	"inkwell-backend/internal/services"
	"inkwell-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Search godoc
// @Summary      Search published posts
// @Description  Case-insensitive substring match over title, excerpt, body text, tags and author name; listing order, no relevance ranking
// @Tags         posts
// @Produce      json
// @Param        q  query  string  true  "Search term"
// @Success      200  {array}  dto.PostResponse
// @Router       /posts/search [get]
func (h *PostHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")

	posts, err := h.Posts.List(c.Context(), models.PostQuery{Status: models.PostStatusPublished})
	if err != nil {
		log.Println("search posts:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "search failed"})
	}
	return c.JSON(h.withLikesAll(c, services.SearchPosts(posts, term)))
}

// Popular godoc
// @Summary      Most-viewed published posts
// @Tags         posts
// @Produce      json
// @Param        limit  query  int  false  "Max items"  default(6)
// @Success      200  {array}  dto.PostResponse
// @Router       /posts/popular [get]
func (h *PostHandler) Popular(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", config.DefaultLimitPopular))
	if limit <= 0 || limit > config.MaxLimitPosts {
		limit = config.DefaultLimitPopular
	}

	posts, err := h.Posts.Popular(c.Context(), limit)
	if err != nil {
		log.Println("popular posts:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch posts"})
	}
	return c.JSON(h.withLikesAll(c, posts))
}

// Recommended godoc
// @Summary      Random published posts
// @Description  Uniform random sample, optionally excluding one post
// @Tags         posts
// @Produce      json
// @Param        exclude  query  string  false  "Post ID to exclude"
// @Param        limit    query  int     false  "Max items"  default(3)
// @Success      200  {array}  dto.PostResponse
// @Router       /posts/recommended [get]
func (h *PostHandler) Recommended(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", config.DefaultLimitRecommended))
	if limit <= 0 || limit > config.MaxLimitPosts {
		limit = config.DefaultLimitRecommended
	}

	exclude := bson.NilObjectID
	if hex := c.Query("exclude"); hex != "" {
		oid, err := utils.Oid(hex)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
		}
		exclude = oid
	}

	posts, err := h.Posts.Recommended(c.Context(), exclude, limit)
	if err != nil {
		log.Println("recommended posts:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch posts"})
	}
	return c.JSON(h.withLikesAll(c, posts))
}

// ListByTag godoc
// @Summary      Published posts carrying a tag
// @Description  Case-insensitive tag match, newest first
// @Tags         posts
// @Produce      json
// @Param        tag  path  string  true  "Tag"
// @Success      200  {array}  dto.PostResponse
// @Router       /posts/tag/{tag} [get]
func (h *PostHandler) ListByTag(c *fiber.Ctx) error {
	posts, err := h.Posts.List(c.Context(), models.PostQuery{
		Status: models.PostStatusPublished,
		Tag:    c.Params("tag"),
	})
	if err != nil {
		log.Println("list posts by tag:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch posts"})
	}
	return c.JSON(h.withLikesAll(c, posts))
}

// Tags godoc
// @Summary      All tags of published posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  string
// @Router       /tags [get]
func (h *PostHandler) Tags(c *fiber.Ctx) error {
	tags, err := h.Posts.DistinctTags(c.Context())
	if err != nil {
		log.Println("distinct tags:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch tags"})
	}
	sort.Strings(tags)
	return c.JSON(tags)
}

// IncViews godoc
// @Summary      Count a view
// @Description  Atomic increment; no auth required
// @Tags         posts
// @Produce      json
// @Param        id  path  string  true  "Post ID (hex ObjectID)"
// @Success      200  {object}  dto.PostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/views [post]
func (h *PostHandler) IncViews(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	// Same visibility rule as Get: a draft is invisible to everyone but
	// its author, so it neither counts views nor leaks its content here.
	post, err := h.Posts.GetByID(c.Context(), id)
	if err != nil {
		log.Println("get post:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to increment views"})
	}
	if post == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}
	uid, _ := middleware.UIDObjectID(c)
	if !services.VisibleTo(*post, uid) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}

	post, err = h.Posts.IncViews(c.Context(), id)
	if err != nil {
		log.Println("inc views:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to increment views"})
	}
	if post == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}
	return c.JSON(h.withLikes(c, *post))
}
