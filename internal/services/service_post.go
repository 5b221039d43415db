package services

import (
	"context"
	"fmt"

	"inkwell-backend/internal/models"
	"inkwell-backend/internal/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SlugExistsFunc reports whether a slug is already taken.
type SlugExistsFunc func(ctx context.Context, slug string) (bool, error)

// UniqueSlug slugifies the title and, on collision, appends -1, -2, …
// until a free slug is found.
func UniqueSlug(ctx context.Context, title string, exists SlugExistsFunc) (string, error) {
	base := utils.Slugify(title)
	slug := base
	for counter := 1; ; counter++ {
		taken, err := exists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

// VisibleTo reports whether a post may be shown to the given user.
// Drafts are private: only their author sees them.
func VisibleTo(p models.Post, uid bson.ObjectID) bool {
	return p.Status == models.PostStatusPublished || p.AuthorID == uid
}

// Excerpt falls back to a content prefix when the author left it empty.
func Excerpt(excerpt, content string) string {
	if excerpt != "" {
		return excerpt
	}
	text := utils.StripHTML(content)
	runes := []rune(text)
	if len(runes) <= 150 {
		return text
	}
	return string(runes[:150]) + "..."
}
