package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	PostStatusPublished = "published"
	PostStatusDraft     = "draft"
)

// Post is an article. A "deleted" post is a draft (soft delete): it drops
// out of every public listing but stays addressable by ID for its author.
// Like count is derived from the likes collection at read time.
type Post struct {
	ID            bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string        `json:"title" bson:"title"`
	Content       string        `json:"content" bson:"content"`
	Excerpt       string        `json:"excerpt" bson:"excerpt"`
	Slug          string        `json:"slug" bson:"slug"`
	AuthorID      bson.ObjectID `json:"authorId" bson:"author_id"`
	AuthorName    string        `json:"authorName" bson:"author_name"`
	AuthorEmail   string        `json:"authorEmail" bson:"author_email"`
	Tags          []string      `json:"tags" bson:"tags"`
	FeaturedImage string        `json:"featuredImage,omitempty" bson:"featured_image,omitempty"`
	PublishedAt   time.Time     `json:"publishedAt" bson:"published_at"`
	CreatedAt     time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" bson:"updated_at"`
	Status        string        `json:"status" bson:"status"`
	Views         int64         `json:"views" bson:"views"`
}

// PostQuery collects the optional filters of the post list endpoints.
type PostQuery struct {
	AuthorID bson.ObjectID
	Status   string
	Tag      string
	Limit    int64
}
