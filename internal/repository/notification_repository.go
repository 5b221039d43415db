package repository

import (
	"context"
	"fmt"

	"inkwell-backend/internal/cursor"
	"inkwell-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type NotificationRepository struct {
	Col *mongo.Collection
}

func (r *NotificationRepository) Insert(ctx context.Context, n *models.Notification) error {
	_, err := r.Col.InsertOne(ctx, n)
	return err
}

// List returns a user's notifications newest first, cursor-paginated.
func (r *NotificationRepository) List(ctx context.Context, userID bson.ObjectID, cursorStr string, limit int64) (items []models.Notification, next *string, err error) {
	filter := bson.M{"user_id": userID}

	if cursorStr != "" {
		t, oid, derr := cursor.Decode(cursorStr)
		if derr != nil {
			err = fmt.Errorf("invalid cursor: %w", derr)
			return
		}
		filter["$or"] = []bson.M{
			{"created_at": bson.M{"$lt": t}},
			{"created_at": t, "_id": bson.M{"$lt": oid}},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit + 1)

	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return
	}
	defer cur.Close(ctx)

	var all []models.Notification
	if err = cur.All(ctx, &all); err != nil {
		return
	}

	if int64(len(all)) > limit {
		items = all[:limit]
		last := items[len(items)-1]
		s := cursor.Encode(last.CreatedAt, last.ID)
		next = &s
	} else {
		items = all
	}
	return
}

// MarkRead flags the given notifications read, scoped to the owner.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID bson.ObjectID, ids []bson.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.Col.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}, "user_id": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
