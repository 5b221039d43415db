package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment is stored flat; ParentID links a reply to another comment on the
// same post. The chain may be arbitrarily deep, deletion cascades over it.
type Comment struct {
	ID          bson.ObjectID  `json:"id" bson:"_id,omitempty"`
	PostID      bson.ObjectID  `json:"postId" bson:"post_id"`
	AuthorID    bson.ObjectID  `json:"authorId" bson:"author_id"`
	AuthorName  string         `json:"authorName" bson:"author_name"`
	AuthorEmail string         `json:"authorEmail" bson:"author_email"`
	Text        string         `json:"text" bson:"text"`
	ParentID    *bson.ObjectID `json:"parentId,omitempty" bson:"parent_id,omitempty"`
	CreatedAt   time.Time      `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updated_at"`
}
