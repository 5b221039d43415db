package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type NotiType string

// Ref points a notification at the entities it is about.
type Ref struct {
	PostID    *bson.ObjectID `json:"postId,omitempty" bson:"post_id,omitempty"`
	CommentID *bson.ObjectID `json:"commentId,omitempty" bson:"comment_id,omitempty"`
	UserID    *bson.ObjectID `json:"userId,omitempty" bson:"user_id,omitempty"`
}

type Notification struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId" bson:"user_id"`
	Type      NotiType      `json:"type" bson:"type"`
	Title     string        `json:"title" bson:"title"`
	Body      string        `json:"body" bson:"body"`
	Ref       Ref           `json:"ref" bson:"ref"`
	Read      bool          `json:"read" bson:"read"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
