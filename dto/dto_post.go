package dto

import "inkwell-backend/internal/models"

type CreatePostRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	Tags          []string `json:"tags"`
	FeaturedImage string   `json:"featuredImage"`
	Status        string   `json:"status"`
}

// UpdatePostRequest is a partial update: nil means "leave alone".
type UpdatePostRequest struct {
	Title         *string   `json:"title"`
	Content       *string   `json:"content"`
	Excerpt       *string   `json:"excerpt"`
	Tags          *[]string `json:"tags"`
	FeaturedImage *string   `json:"featuredImage"`
	Status        *string   `json:"status"`
}

// PostResponse is a post plus its derived like count.
type PostResponse struct {
	models.Post
	Likes int64 `json:"likes"`
}

type LikeResponse struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

type HasLikedResponse struct {
	HasLiked bool `json:"hasLiked"`
}
