package controllers

import (
	"log"
	"strings"

	"inkwell-backend/config"
	"inkwell-backend/dto"
	"inkwell-backend/internal/middleware"
	"inkwell-backend/internal/models"
	"inkwell-backend/internal/repository"
	"inkwell-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type NotificationHandler struct {
	Notifications *repository.NotificationRepository
}

// List godoc
// @Summary      List own notifications
// @Description  Newest first, cursor-paginated
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        cursor  query  string  false  "Opaque cursor from a previous page"
// @Param        limit   query  int     false  "Max items"  default(20)
// @Success      200  {object}  dto.ListNotificationsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	limit := int64(c.QueryInt("limit", config.DefaultLimitNotifications))
	if limit <= 0 || limit > config.MaxLimitNotifications {
		limit = config.DefaultLimitNotifications
	}

	items, next, err := h.Notifications.List(c.Context(), uid, c.Query("cursor"), limit)
	if err != nil {
		if strings.Contains(err.Error(), "invalid cursor") {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid cursor"})
		}
		log.Println("list notifications:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to list notifications"})
	}
	if items == nil {
		items = []models.Notification{}
	}

	return c.JSON(dto.ListNotificationsResponse{
		Notifications: items,
		NextCursor:    next,
		HasMore:       next != nil,
	})
}

// MarkRead godoc
// @Summary      Mark notifications read
// @Description  Only the caller's own notifications are touched
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  dto.MarkReadRequest  true  "Notification ids"
// @Success      200  {object}  map[string]int64
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /notifications/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	var req dto.MarkReadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	ids := make([]bson.ObjectID, 0, len(req.IDs))
	for _, hex := range req.IDs {
		id, err := utils.Oid(hex)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid notification id"})
		}
		ids = append(ids, id)
	}

	n, err := h.Notifications.MarkRead(c.Context(), uid, ids)
	if err != nil {
		log.Println("mark read:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to mark read"})
	}
	return c.JSON(fiber.Map{"updated": n})
}
