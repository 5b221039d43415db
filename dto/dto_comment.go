package dto

import "inkwell-backend/internal/models"

type CreateCommentRequest struct {
	Text     string `json:"text"`
	ParentID string `json:"parentId"`
}

type UpdateCommentRequest struct {
	Text string `json:"text"`
}

// CommentNode is a root comment with its direct replies and derived like
// counts attached.
type CommentNode struct {
	models.Comment
	Likes   int64            `json:"likes"`
	Replies []models.Comment `json:"replies"`
}

type ListCommentsResponse struct {
	Comments   []CommentNode `json:"comments"`
	NextCursor *string       `json:"nextCursor"`
	HasMore    bool          `json:"hasMore"`
}
