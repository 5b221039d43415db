package controllers

import (
	"context"
	"log"
	"time"

	"inkwell-backend/dto"
	"inkwell-backend/internal/middleware"
	"inkwell-backend/internal/models"
	"inkwell-backend/internal/repository"
	"inkwell-backend/internal/services"
	"inkwell-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type PostHandler struct {
	Posts    *repository.PostRepository
	Users    *repository.UserRepository
	LikesCol *mongo.Collection
}

func (h *PostHandler) withLikes(c *fiber.Ctx, p models.Post) dto.PostResponse {
	likes, err := repository.CountLikes(c.Context(), h.LikesCol, p.ID, repository.TargetPost)
	if err != nil {
		log.Println("count likes:", err)
	}
	return dto.PostResponse{Post: p, Likes: likes}
}

func (h *PostHandler) withLikesAll(c *fiber.Ctx, posts []models.Post) []dto.PostResponse {
	out := make([]dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, h.withLikes(c, p))
	}
	return out
}

// List godoc
// @Summary      List posts
// @Description  Published posts, newest first; filterable by author, status and tag. status=draft requires auth and only returns the caller's drafts.
// @Tags         posts
// @Produce      json
// @Param        authorId  query  string  false  "Author ID (hex ObjectID)"
// @Param        status    query  string  false  "published|draft"  default(published)
// @Param        tag       query  string  false  "Tag filter"
// @Success      200  {array}   dto.PostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	q := models.PostQuery{
		Status: c.Query("status", models.PostStatusPublished),
		Tag:    c.Query("tag"),
	}
	if hex := c.Query("authorId"); hex != "" {
		oid, err := utils.Oid(hex)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid author id"})
		}
		q.AuthorID = oid
	}

	// Drafts are private: only the author may list their own.
	if q.Status != models.PostStatusPublished {
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "authentication required"})
		}
		q.AuthorID = uid
	}

	posts, err := h.Posts.List(c.Context(), q)
	if err != nil {
		log.Println("list posts:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch posts"})
	}
	return c.JSON(h.withLikesAll(c, posts))
}

// Create godoc
// @Summary      Create a post
// @Description  Publish or draft an article; the slug is derived from the title and disambiguated on collision
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreatePostRequest  true  "Post payload"
// @Success      201   {object}  dto.PostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	if req.Title == "" || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "title and content are required"})
	}

	status := req.Status
	if status == "" {
		status = models.PostStatusPublished
	}
	if status != models.PostStatusPublished && status != models.PostStatusDraft {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "status must be published or draft"})
	}

	author, err := h.Users.GetByID(c.Context(), uid)
	if err != nil || author == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unknown user"})
	}

	slug, err := services.UniqueSlug(c.Context(), req.Title, func(ctx context.Context, slug string) (bool, error) {
		return h.Posts.SlugExists(ctx, slug, bson.NilObjectID)
	})
	if err != nil {
		log.Println("unique slug:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to create post"})
	}

	now := time.Now().UTC()
	post := &models.Post{
		ID:            bson.NewObjectID(),
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       services.Excerpt(req.Excerpt, req.Content),
		Slug:          slug,
		AuthorID:      author.ID,
		AuthorName:    author.Name,
		AuthorEmail:   author.Email,
		Tags:          utils.NormalizeTags(req.Tags),
		FeaturedImage: req.FeaturedImage,
		CreatedAt:     now,
		UpdatedAt:     now,
		Status:        status,
		Views:         0,
	}
	if status == models.PostStatusPublished {
		post.PublishedAt = now
	}

	if err := h.Posts.Create(c.Context(), post); err != nil {
		log.Println("create post:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to create post"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.withLikes(c, *post))
}

// Get godoc
// @Summary      Get a post by ID
// @Description  Drafts are only returned to their author
// @Tags         posts
// @Produce      json
// @Param        id  path  string  true  "Post ID (hex ObjectID)"
// @Success      200  {object}  dto.PostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	post, err := h.Posts.GetByID(c.Context(), id)
	if err != nil {
		log.Println("get post:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch post"})
	}
	if post == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}

	uid, _ := middleware.UIDObjectID(c)
	if !services.VisibleTo(*post, uid) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}
	return c.JSON(h.withLikes(c, *post))
}

// GetBySlug godoc
// @Summary      Get a published post by slug
// @Tags         posts
// @Produce      json
// @Param        slug  path  string  true  "Post slug"
// @Success      200  {object}  dto.PostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/slug/{slug} [get]
func (h *PostHandler) GetBySlug(c *fiber.Ctx) error {
	post, err := h.Posts.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		log.Println("get post by slug:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch post"})
	}
	if post == nil || post.Status != models.PostStatusPublished {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}
	return c.JSON(h.withLikes(c, *post))
}

// Update godoc
// @Summary      Update a post
// @Description  Partial update by the owner; a title change re-derives the slug
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "Post ID (hex ObjectID)"
// @Param        body  body  dto.UpdatePostRequest  true  "Fields to update"
// @Success      200  {object}  dto.PostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	post, err := h.Posts.GetByID(c.Context(), id)
	if err != nil {
		log.Println("get post:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch post"})
	}
	if post == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}
	if post.AuthorID != uid {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "forbidden"})
	}

	set := bson.M{}
	if req.Title != nil && *req.Title != "" {
		set["title"] = *req.Title
		slug, serr := services.UniqueSlug(c.Context(), *req.Title, func(ctx context.Context, slug string) (bool, error) {
			return h.Posts.SlugExists(ctx, slug, id)
		})
		if serr != nil {
			log.Println("unique slug:", serr)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to update post"})
		}
		set["slug"] = slug
	}
	if req.Content != nil {
		set["content"] = *req.Content
	}
	if req.Excerpt != nil {
		set["excerpt"] = *req.Excerpt
	}
	if req.Tags != nil {
		set["tags"] = utils.NormalizeTags(*req.Tags)
	}
	if req.FeaturedImage != nil {
		set["featured_image"] = *req.FeaturedImage
	}
	if req.Status != nil {
		if *req.Status != models.PostStatusPublished && *req.Status != models.PostStatusDraft {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "status must be published or draft"})
		}
		set["status"] = *req.Status
		if *req.Status == models.PostStatusPublished && post.PublishedAt.IsZero() {
			set["published_at"] = time.Now().UTC()
		}
	}

	updated, err := h.Posts.Update(c.Context(), id, set)
	if err != nil {
		log.Println("update post:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to update post"})
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}
	return c.JSON(h.withLikes(c, *updated))
}

// Delete godoc
// @Summary      Soft-delete a post
// @Description  Transitions the post to draft; the record stays addressable by its author
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID (hex ObjectID)"
// @Success      200  {object}  dto.PostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	post, err := h.Posts.GetByID(c.Context(), id)
	if err != nil {
		log.Println("get post:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch post"})
	}
	if post == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}
	if post.AuthorID != uid {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "forbidden"})
	}

	updated, err := h.Posts.Update(c.Context(), id, bson.M{"status": models.PostStatusDraft})
	if err != nil {
		log.Println("soft delete post:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to delete post"})
	}
	return c.JSON(h.withLikes(c, *updated))
}
