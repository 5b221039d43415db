package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates every index the application relies on. The unique
// ones back invariants (one account per email, one slug per post, at most
// one like/follow edge per pair); the rest back the hot list queries.
func EnsureIndexes(db *mongo.Database) error {
	ctx := context.Background()

	_, err := db.Collection("auth_app").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("posts").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_slug"),
		},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "published_at", Value: -1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "views", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("likes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "post_id", Value: 1},
			{Key: "comment_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_user_post_comment"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("follows").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "follower_id", Value: 1},
			{Key: "followee_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_follower_followee"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("comments").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "parent_id", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("notifications").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
