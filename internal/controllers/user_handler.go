package controllers

import (
	"log"
	"strings"

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

type UserHandler struct {
	Users         *repository.UserRepository
	Posts         *repository.PostRepository
	FollowsCol    *mongo.Collection
	Notifications *repository.NotificationRepository
}

// Profile godoc
// @Summary      Public profile of a user
// @Description  Follower, following and published-post counts are derived on read
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User ID (hex ObjectID)"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid user id"})
	}

	user, err := h.Users.GetByID(c.Context(), id)
	if err != nil {
		log.Println("get user:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to fetch profile"})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "user not found"})
	}

	followers, err := repository.CountFollowers(c.Context(), h.FollowsCol, id)
	if err != nil {
		log.Println("count followers:", err)
	}
	following, err := repository.CountFollowing(c.Context(), h.FollowsCol, id)
	if err != nil {
		log.Println("count following:", err)
	}
	posts, err := h.Posts.CountPublishedByAuthor(c.Context(), id)
	if err != nil {
		log.Println("count posts:", err)
	}

	return c.JSON(dto.ProfileResponse{
		User:      *user,
		Followers: followers,
		Following: following,
		Posts:     posts,
	})
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                    true  "User ID (hex ObjectID)"
// @Param        payload  body  dto.UpdateProfileRequest  true  "Fields to change"
// @Success      200  {object}  models.User
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid user id"})
	}
	if id != uid {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "not your profile"})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	set := bson.M{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "name cannot be empty"})
		}
		set["name"] = name
	}
	if req.Bio != nil {
		set["bio"] = strings.TrimSpace(*req.Bio)
	}
	if req.Avatar != nil {
		set["avatar"] = strings.TrimSpace(*req.Avatar)
	}
	if len(set) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nothing to update"})
	}

	user, err := h.Users.UpdateProfile(c.Context(), uid, set)
	if err != nil {
		log.Println("update profile:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to update profile"})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "user not found"})
	}
	return c.JSON(user)
}

// Follow godoc
// @Summary      Toggle following a user
// @Description  Follows the target, or unfollows if already following; the returned count is derived
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID (hex ObjectID)"
// @Success      200  {object}  dto.FollowResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{id}/follow [post]
func (h *UserHandler) Follow(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	target, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid user id"})
	}
	if target == uid {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cannot follow yourself"})
	}

	targetUser, err := h.Users.GetByID(c.Context(), target)
	if err != nil {
		log.Println("get user:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to toggle follow"})
	}
	if targetUser == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "user not found"})
	}

	following, err := repository.ToggleFollow(c.Context(), h.FollowsCol, uid, target)
	if err != nil {
		log.Println("toggle follow:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to toggle follow"})
	}

	if following {
		h.notifyFollow(c, target, uid)
	}

	followers, err := repository.CountFollowers(c.Context(), h.FollowsCol, target)
	if err != nil {
		log.Println("count followers:", err)
	}
	return c.JSON(dto.FollowResponse{IsFollowing: following, Followers: followers})
}

// notifyFollow is best-effort, a failed notification never fails the toggle.
func (h *UserHandler) notifyFollow(c *fiber.Ctx, target, actor bson.ObjectID) {
	actorUser, err := h.Users.GetByID(c.Context(), actor)
	if err != nil || actorUser == nil {
		return
	}
	err = services.NotifyOne(c.Context(), h.Notifications, target, actor,
		services.NotiNewFollower, models.Ref{UserID: &actor}, services.NotiParams{ActorName: actorUser.Name})
	if err != nil {
		log.Println("notify follow:", err)
	}
}

// IsFollowing godoc
// @Summary      Whether one user follows another
// @Description  Unknown or malformed ids answer false rather than an error
// @Tags         users
// @Produce      json
// @Param        id           path   string  true  "Follower user ID (hex ObjectID)"
// @Param        followingId  query  string  true  "Followee user ID (hex ObjectID)"
// @Success      200  {object}  dto.IsFollowingResponse
// @Router       /users/{id}/is-following [get]
func (h *UserHandler) IsFollowing(c *fiber.Ctx) error {
	follower, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.JSON(dto.IsFollowingResponse{IsFollowing: false})
	}
	followee, err := utils.Oid(c.Query("followingId"))
	if err != nil {
		return c.JSON(dto.IsFollowingResponse{IsFollowing: false})
	}

	following, err := repository.IsFollowing(c.Context(), h.FollowsCol, follower, followee)
	if err != nil {
		log.Println("check following:", err)
		return c.JSON(dto.IsFollowingResponse{IsFollowing: false})
	}
	return c.JSON(dto.IsFollowingResponse{IsFollowing: following})
}
