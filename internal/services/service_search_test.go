package services

import (
	"testing"

	"inkwell-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

var searchPost = models.Post{
	Title:      "Understanding Goroutines",
	Excerpt:    "A short tour of concurrency",
	Content:    "<p>Channels make <b>pipelines</b> composable.</p>",
	Tags:       []string{"go", "concurrency"},
	AuthorName: "Ada Lovelace",
}

func TestMatchesQueryFields(t *testing.T) {
	assert.True(t, MatchesQuery(searchPost, "goroutines"), "title")
	assert.True(t, MatchesQuery(searchPost, "SHORT TOUR"), "excerpt, case-insensitive")
	assert.True(t, MatchesQuery(searchPost, "pipelines"), "stripped content")
	assert.True(t, MatchesQuery(searchPost, "concurren"), "tag substring")
	assert.True(t, MatchesQuery(searchPost, "lovelace"), "author name")
}

func TestMatchesQueryMisses(t *testing.T) {
	assert.False(t, MatchesQuery(searchPost, "rustaceans"))
	assert.False(t, MatchesQuery(searchPost, ""))
	assert.False(t, MatchesQuery(searchPost, "   "))
	// markup never matches: "<b>" is stripped before comparing
	assert.False(t, MatchesQuery(searchPost, "<b>"))
}

func TestSearchPostsPreservesOrder(t *testing.T) {
	a := models.Post{Title: "alpha go"}
	b := models.Post{Title: "beta rust"}
	c := models.Post{Title: "gamma go"}

	got := SearchPosts([]models.Post{a, b, c}, "go")
	assert.Equal(t, []models.Post{a, c}, got)

	assert.Empty(t, SearchPosts([]models.Post{a, b, c}, " "))
}
