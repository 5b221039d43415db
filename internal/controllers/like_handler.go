package controllers

import (
	"log"

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

type LikeHandler struct {
	LikesCol      *mongo.Collection
	Posts         *repository.PostRepository
	Comments      *repository.CommentRepository
	Users         *repository.UserRepository
	Notifications *repository.NotificationRepository
}

// LikePost godoc
// @Summary      Toggle like on a post
// @Description  Adds the like edge, or removes it if already present; the returned count is the edge-set size
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID (hex ObjectID)"
// @Success      200  {object}  dto.LikeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/like [post]
func (h *LikeHandler) LikePost(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	post, err := h.Posts.GetByID(c.Context(), id)
	if err != nil {
		log.Println("get post:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to toggle like"})
	}
	if post == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}

	liked, err := repository.ToggleLike(c.Context(), h.LikesCol, uid, id, repository.TargetPost)
	if err != nil {
		log.Println("toggle like:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to toggle like"})
	}

	if liked {
		h.notifyLike(c, post.AuthorID, uid, services.NotiPostLiked, models.Ref{PostID: &post.ID}, post.Title)
	}

	likes, err := repository.CountLikes(c.Context(), h.LikesCol, id, repository.TargetPost)
	if err != nil {
		log.Println("count likes:", err)
	}
	return c.JSON(dto.LikeResponse{Liked: liked, Likes: likes})
}

// HasLiked godoc
// @Summary      Whether the caller has liked a post
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID (hex ObjectID)"
// @Success      200  {object}  dto.HasLikedResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /posts/{id}/has-liked [get]
func (h *LikeHandler) HasLiked(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	liked, err := repository.CheckIsLiked(c.Context(), h.LikesCol, uid, id, repository.TargetPost)
	if err != nil {
		log.Println("check liked:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to check like"})
	}
	return c.JSON(dto.HasLikedResponse{HasLiked: liked})
}

// LikeComment godoc
// @Summary      Toggle like on a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Comment ID (hex ObjectID)"
// @Success      200  {object}  dto.LikeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /comments/{id}/like [post]
func (h *LikeHandler) LikeComment(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid comment id"})
	}

	comment, err := h.Comments.GetByID(c.Context(), id)
	if err != nil {
		log.Println("get comment:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to toggle like"})
	}
	if comment == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "comment not found"})
	}

	liked, err := repository.ToggleLike(c.Context(), h.LikesCol, uid, id, repository.TargetComment)
	if err != nil {
		log.Println("toggle like:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to toggle like"})
	}

	if liked {
		h.notifyLike(c, comment.AuthorID, uid, services.NotiCommentLiked, models.Ref{CommentID: &comment.ID, PostID: &comment.PostID}, "")
	}

	likes, err := repository.CountLikes(c.Context(), h.LikesCol, id, repository.TargetComment)
	if err != nil {
		log.Println("count likes:", err)
	}
	return c.JSON(dto.LikeResponse{Liked: liked, Likes: likes})
}

// notifyLike is best-effort: a failed notification never fails the toggle.
func (h *LikeHandler) notifyLike(c *fiber.Ctx, targetUser, actor bson.ObjectID, typ models.NotiType, ref models.Ref, postTitle string) {
	actorUser, err := h.Users.GetByID(c.Context(), actor)
	if err != nil || actorUser == nil {
		return
	}
	err = services.NotifyOne(c.Context(), h.Notifications, targetUser, actor, typ, ref,
		services.NotiParams{ActorName: actorUser.Name, PostTitle: postTitle})
	if err != nil {
		log.Println("notify like:", err)
	}
}
