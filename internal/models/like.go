package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Like is an edge: exactly one of PostID / CommentID is set. The unique
// index on (user_id, post_id, comment_id) makes the edge exist at most once
// per pair, so toggles are race-safe.
type Like struct {
	ID        bson.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID    bson.ObjectID  `json:"userId" bson:"user_id"`
	PostID    *bson.ObjectID `json:"postId,omitempty" bson:"post_id,omitempty"`
	CommentID *bson.ObjectID `json:"commentId,omitempty" bson:"comment_id,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"created_at"`
}
