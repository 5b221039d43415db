package repository

import (
	"context"
	"fmt"
	"time"

	"inkwell-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	TargetPost    = "post"
	TargetComment = "comment"
)

func likeFilter(userID, targetID bson.ObjectID, targetType string) (bson.M, error) {
	switch targetType {
	case TargetPost:
		return bson.M{"user_id": userID, "post_id": targetID}, nil
	case TargetComment:
		return bson.M{"user_id": userID, "comment_id": targetID}, nil
	default:
		return nil, fmt.Errorf("invalid target type %q", targetType)
	}
}

// toggleEdge is the shared toggle protocol: try the insert; a duplicate-key
// error means the edge exists, so delete it instead. The unique index
// arbitrates concurrent double-submission, which makes a toggle idempotent
// per pair and keeps derived counts from drifting.
func toggleEdge(ctx context.Context, insert, remove func(context.Context) error) (added bool, err error) {
	err = insert(ctx)
	if err == nil {
		return true, nil
	}
	if !IsDupKey(err) {
		return false, err
	}
	return false, remove(ctx)
}

// ToggleLike inserts the like edge, or removes it if already present.
func ToggleLike(ctx context.Context, likesCol *mongo.Collection, userID, targetID bson.ObjectID, targetType string) (liked bool, err error) {
	doc := models.Like{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	switch targetType {
	case TargetPost:
		doc.PostID = &targetID
	case TargetComment:
		doc.CommentID = &targetID
	default:
		return false, fmt.Errorf("invalid target type %q", targetType)
	}

	filter, err := likeFilter(userID, targetID, targetType)
	if err != nil {
		return false, err
	}

	return toggleEdge(ctx,
		func(ctx context.Context) error {
			_, err := likesCol.InsertOne(ctx, doc)
			return err
		},
		func(ctx context.Context) error {
			_, err := likesCol.DeleteOne(ctx, filter)
			return err
		},
	)
}

func CheckIsLiked(ctx context.Context, likesCol *mongo.Collection, userID, targetID bson.ObjectID, targetType string) (bool, error) {
	filter, err := likeFilter(userID, targetID, targetType)
	if err != nil {
		return false, err
	}
	n, err := likesCol.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return n > 0, nil
}

// CountLikes is the like counter: cardinality of the edge set.
func CountLikes(ctx context.Context, likesCol *mongo.Collection, targetID bson.ObjectID, targetType string) (int64, error) {
	switch targetType {
	case TargetPost:
		return likesCol.CountDocuments(ctx, bson.M{"post_id": targetID})
	case TargetComment:
		return likesCol.CountDocuments(ctx, bson.M{"comment_id": targetID})
	default:
		return 0, fmt.Errorf("invalid target type %q", targetType)
	}
}

// DeleteLikesForComments drops like edges pointing at deleted comments.
func DeleteLikesForComments(ctx context.Context, likesCol *mongo.Collection, commentIDs []bson.ObjectID) error {
	if len(commentIDs) == 0 {
		return nil
	}
	_, err := likesCol.DeleteMany(ctx, bson.M{"comment_id": bson.M{"$in": commentIDs}})
	return err
}
