package dto

import "inkwell-backend/internal/models"

type ListNotificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
	NextCursor    *string               `json:"nextCursor"`
	HasMore       bool                  `json:"hasMore"`
}

type MarkReadRequest struct {
	IDs []string `json:"ids"`
}
