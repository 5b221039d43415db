package repository

import (
	"context"
	"errors"
	"testing"

	"inkwell-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func dupKeyErr() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

// edgeSet fakes a collection with a unique index over one edge: insert
// fails with a duplicate-key error when the edge exists, like Mongo does.
type edgeSet struct {
	present bool
}

func (s *edgeSet) insert(context.Context) error {
	if s.present {
		return dupKeyErr()
	}
	s.present = true
	return nil
}

func (s *edgeSet) remove(context.Context) error {
	s.present = false
	return nil
}

func TestIsDupKey(t *testing.T) {
	assert.True(t, IsDupKey(dupKeyErr()))
	assert.False(t, IsDupKey(errors.New("network down")))
	assert.False(t, IsDupKey(nil))
	assert.False(t, IsDupKey(mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 121}}}))
}

func TestToggleEdgeDoubleToggleRestoresState(t *testing.T) {
	ctx := context.Background()
	set := &edgeSet{}

	added, err := toggleEdge(ctx, set.insert, set.remove)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, set.present)

	added, err = toggleEdge(ctx, set.insert, set.remove)
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, set.present, "toggling twice must remove the edge again")

	// and a third toggle re-adds it
	added, err = toggleEdge(ctx, set.insert, set.remove)
	require.NoError(t, err)
	assert.True(t, added)
}

func TestToggleEdgePropagatesOtherErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("socket closed")

	_, err := toggleEdge(ctx,
		func(context.Context) error { return boom },
		func(context.Context) error { t.Fatal("remove must not run"); return nil },
	)
	assert.ErrorIs(t, err, boom)

	_, err = toggleEdge(ctx,
		func(context.Context) error { return dupKeyErr() },
		func(context.Context) error { return boom },
	)
	assert.ErrorIs(t, err, boom)
}

// Both follower and followee counts derive from the same edge document, so
// toggling twice restores both sides at once.
func TestFollowEdgeCountsBothSides(t *testing.T) {
	ctx := context.Background()
	alice := bson.NewObjectID()
	bob := bson.NewObjectID()

	edges := map[models.Follow]struct{}{}
	key := models.Follow{FollowerID: alice, FolloweeID: bob}
	toggle := func() (bool, error) {
		return toggleEdge(ctx,
			func(context.Context) error {
				if _, ok := edges[key]; ok {
					return dupKeyErr()
				}
				edges[key] = struct{}{}
				return nil
			},
			func(context.Context) error {
				delete(edges, key)
				return nil
			},
		)
	}
	countFollowers := func(u bson.ObjectID) int {
		n := 0
		for e := range edges {
			if e.FolloweeID == u {
				n++
			}
		}
		return n
	}
	countFollowing := func(u bson.ObjectID) int {
		n := 0
		for e := range edges {
			if e.FollowerID == u {
				n++
			}
		}
		return n
	}

	following, err := toggle()
	require.NoError(t, err)
	assert.True(t, following)
	assert.Equal(t, 1, countFollowers(bob))
	assert.Equal(t, 1, countFollowing(alice))

	following, err = toggle()
	require.NoError(t, err)
	assert.False(t, following)
	assert.Equal(t, 0, countFollowers(bob))
	assert.Equal(t, 0, countFollowing(alice))
}

func TestListFilterExcludesDrafts(t *testing.T) {
	// the public listing filter pins status, so a soft-deleted (draft)
	// post cannot match it
	filter := listFilter(models.PostQuery{Status: models.PostStatusPublished})
	assert.Equal(t, models.PostStatusPublished, filter["status"])

	draft := models.Post{Status: models.PostStatusDraft}
	assert.NotEqual(t, draft.Status, filter["status"])

	// no status constraint only when explicitly asked for
	assert.NotContains(t, listFilter(models.PostQuery{}), "status")
}

func TestListFilterQuotesTagMetacharacters(t *testing.T) {
	filter := listFilter(models.PostQuery{Tag: "c++"})
	tag, ok := filter["tags"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, `^c\+\+$`, tag["$regex"])
	assert.Equal(t, "i", tag["$options"])
}
