package controllers

import (
	"log"
	"strings"

	"inkwell-backend/config"
	"inkwell-backend/dto"
	"inkwell-backend/internal/middleware"
	"inkwell-backend/internal/models"
	"inkwell-backend/internal/repository"
	"inkwell-backend/internal/services"
	"inkwell-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type CommentHandler struct {
	Comments      *repository.CommentRepository
	Posts         *repository.PostRepository
	Users         *repository.UserRepository
	Notifications *repository.NotificationRepository
}

// Create godoc
// @Summary      Comment on a post
// @Description  Pass parentId to reply to an existing comment on the same post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                    true  "Post ID (hex ObjectID)"
// @Param        payload  body  dto.CreateCommentRequest  true  "Comment body"
// @Success      201  {object}  models.Comment
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	postID, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "text is required"})
	}

	post, err := h.Posts.GetByID(c.Context(), postID)
	if err != nil {
		log.Println("get post:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to create comment"})
	}
	if post == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}

	var parent *models.Comment
	var parentID *bson.ObjectID
	if req.ParentID != "" {
		pid, err := utils.Oid(req.ParentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid parent id"})
		}
		parent, err = h.Comments.GetByID(c.Context(), pid)
		if err != nil {
			log.Println("get parent comment:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to create comment"})
		}
		// The parent must live on the same post, otherwise the reply
		// would be orphaned from the thread it renders under.
		if parent == nil || parent.PostID != postID {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "parent comment not found on this post"})
		}
		parentID = &pid
	}

	author, err := h.Users.GetByID(c.Context(), uid)
	if err != nil || author == nil {
		log.Println("get author:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to create comment"})
	}

	comment := models.Comment{
		PostID:      postID,
		AuthorID:    uid,
		AuthorName:  author.Name,
		AuthorEmail: author.Email,
		Text:        req.Text,
		ParentID:    parentID,
	}
	if err := h.Comments.Create(c.Context(), &comment); err != nil {
		log.Println("create comment:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to create comment"})
	}

	h.notifyComment(c, post, parent, &comment, author)

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// notifyComment tells the post author (or the parent comment's author, for
// replies) about the new comment. Best-effort.
func (h *CommentHandler) notifyComment(c *fiber.Ctx, post *models.Post, parent, comment *models.Comment, actor *models.User) {
	ref := models.Ref{PostID: &post.ID, CommentID: &comment.ID}
	params := services.NotiParams{ActorName: actor.Name, PostTitle: post.Title}

	if parent != nil {
		if err := services.NotifyOne(c.Context(), h.Notifications, parent.AuthorID, actor.ID,
			services.NotiCommentReply, ref, params); err != nil {
			log.Println("notify reply:", err)
		}
		return
	}
	if err := services.NotifyOne(c.Context(), h.Notifications, post.AuthorID, actor.ID,
		services.NotiNewComment, ref, params); err != nil {
		log.Println("notify comment:", err)
	}
}

// List godoc
// @Summary      List comments of a post
// @Description  Root comments newest first with their replies attached; cursor pagination over the roots
// @Tags         comments
// @Produce      json
// @Param        id      path   string  true   "Post ID (hex ObjectID)"
// @Param        cursor  query  string  false  "Opaque cursor from a previous page"
// @Param        limit   query  int     false  "Max root comments"  default(20)
// @Success      200  {object}  dto.ListCommentsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	limit := int64(c.QueryInt("limit", config.DefaultLimitComments))
	if limit <= 0 || limit > config.MaxLimitComments {
		limit = config.DefaultLimitComments
	}

	roots, next, err := h.Comments.ListRoots(c.Context(), postID, c.Query("cursor"), limit)
	if err != nil {
		if strings.Contains(err.Error(), "invalid cursor") {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid cursor"})
		}
		log.Println("list comments:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to list comments"})
	}

	nodes := make([]dto.CommentNode, 0, len(roots))
	for _, root := range roots {
		replies, err := h.Comments.ListReplies(c.Context(), root.ID)
		if err != nil {
			log.Println("list replies:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to list comments"})
		}
		if replies == nil {
			replies = []models.Comment{}
		}
		likes, err := repository.CountLikes(c.Context(), h.Comments.LikesCol, root.ID, repository.TargetComment)
		if err != nil {
			log.Println("count comment likes:", err)
		}
		nodes = append(nodes, dto.CommentNode{Comment: root, Likes: likes, Replies: replies})
	}

	return c.JSON(dto.ListCommentsResponse{
		Comments:   nodes,
		NextCursor: next,
		HasMore:    next != nil,
	})
}

// Update godoc
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                    true  "Comment ID (hex ObjectID)"
// @Param        payload  body  dto.UpdateCommentRequest  true  "New text"
// @Success      200  {object}  models.Comment
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /comments/{id} [put]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid comment id"})
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "text is required"})
	}

	updated, err := h.Comments.Update(c.Context(), id, uid, req.Text)
	if err != nil {
		log.Println("update comment:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to update comment"})
	}
	if updated == nil {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "not your comment"})
	}
	return c.JSON(updated)
}

// Delete godoc
// @Summary      Delete a comment and its replies
// @Description  Removes the comment, every reply under it and their like edges
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  string  true  "Comment ID (hex ObjectID)"
// @Success      204  "deleted"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid comment id"})
	}

	n, err := h.Comments.DeleteCascade(c.Context(), id, uid)
	if err != nil {
		log.Println("delete comment:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to delete comment"})
	}
	if n == 0 {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "not your comment"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
