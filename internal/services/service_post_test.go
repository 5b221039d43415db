package services

import (
	"context"
	"strings"
	"testing"

	"inkwell-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func takenSet(slugs ...string) SlugExistsFunc {
	set := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		set[s] = true
	}
	return func(_ context.Context, slug string) (bool, error) {
		return set[slug], nil
	}
}

func TestUniqueSlugNoCollision(t *testing.T) {
	slug, err := UniqueSlug(context.Background(), "Hello, World!", takenSet())
	require.NoError(t, err)
	assert.Equal(t, "hello-world", slug)
}

func TestUniqueSlugCollisionSuffixes(t *testing.T) {
	// second post with the same title gets -1, third gets -2
	slug, err := UniqueSlug(context.Background(), "Hello, World!", takenSet("hello-world"))
	require.NoError(t, err)
	assert.Equal(t, "hello-world-1", slug)

	slug, err = UniqueSlug(context.Background(), "Hello, World!", takenSet("hello-world", "hello-world-1"))
	require.NoError(t, err)
	assert.Equal(t, "hello-world-2", slug)
}

func TestUniqueSlugEmptyTitle(t *testing.T) {
	slug, err := UniqueSlug(context.Background(), "!!!", takenSet())
	require.NoError(t, err)
	assert.Equal(t, "untitled", slug)

	slug, err = UniqueSlug(context.Background(), "???", takenSet("untitled"))
	require.NoError(t, err)
	assert.Equal(t, "untitled-1", slug)
}

func TestVisibleTo(t *testing.T) {
	author := bson.NewObjectID()
	stranger := bson.NewObjectID()

	published := models.Post{Status: models.PostStatusPublished, AuthorID: author}
	draft := models.Post{Status: models.PostStatusDraft, AuthorID: author}

	assert.True(t, VisibleTo(published, stranger))
	assert.True(t, VisibleTo(published, bson.NilObjectID), "anonymous readers see published posts")

	// drafts stay private on every read path, including the view counter
	assert.True(t, VisibleTo(draft, author))
	assert.False(t, VisibleTo(draft, stranger))
	assert.False(t, VisibleTo(draft, bson.NilObjectID))
}

func TestExcerptFallback(t *testing.T) {
	assert.Equal(t, "given", Excerpt("given", "<p>ignored</p>"))

	long := "<p>" + strings.Repeat("abcde ", 50) + "</p>"
	got := Excerpt("", long)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Len(t, []rune(got), 153)

	assert.Equal(t, "short body", Excerpt("", "<p>short body</p>"))
}
