package repository

import (
	"context"
	"time"

	"inkwell-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ToggleFollow inserts the follow edge, or removes it if already present.
// Same contract as ToggleLike: idempotent per pair, counts always derived.
func ToggleFollow(ctx context.Context, followsCol *mongo.Collection, followerID, followeeID bson.ObjectID) (following bool, err error) {
	doc := models.Follow{
		ID:         bson.NewObjectID(),
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now().UTC(),
	}
	filter := bson.M{
		"follower_id": followerID,
		"followee_id": followeeID,
	}

	return toggleEdge(ctx,
		func(ctx context.Context) error {
			_, err := followsCol.InsertOne(ctx, doc)
			return err
		},
		func(ctx context.Context) error {
			_, err := followsCol.DeleteOne(ctx, filter)
			return err
		},
	)
}

func IsFollowing(ctx context.Context, followsCol *mongo.Collection, followerID, followeeID bson.ObjectID) (bool, error) {
	n, err := followsCol.CountDocuments(ctx, bson.M{
		"follower_id": followerID,
		"followee_id": followeeID,
	})
	return n > 0, err
}

func CountFollowers(ctx context.Context, followsCol *mongo.Collection, userID bson.ObjectID) (int64, error) {
	return followsCol.CountDocuments(ctx, bson.M{"followee_id": userID})
}

func CountFollowing(ctx context.Context, followsCol *mongo.Collection, userID bson.ObjectID) (int64, error) {
	return followsCol.CountDocuments(ctx, bson.M{"follower_id": userID})
}
