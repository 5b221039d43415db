package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"inkwell-backend/internal/cursor"
	"inkwell-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type CommentRepository struct {
	Col      *mongo.Collection
	LikesCol *mongo.Collection
}

func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) error {
	now := time.Now().UTC()
	c.ID = bson.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.Col.InsertOne(ctx, c)
	return err
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.Comment, error) {
	var c models.Comment
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// ListRoots returns top-level comments of a post, newest first, with
// (created_at, _id) cursor pagination.
func (r *CommentRepository) ListRoots(ctx context.Context, postID bson.ObjectID, cursorStr string, limit int64) (items []models.Comment, next *string, err error) {
	filter := bson.M{"post_id": postID, "parent_id": nil}

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

	var all []models.Comment
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

// ListReplies returns the direct replies of a comment, oldest first.
func (r *CommentRepository) ListReplies(ctx context.Context, parentID bson.ObjectID) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"parent_id": parentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Comment
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Update edits the text. Only the owner may edit; a nil result means
// not-found-or-forbidden.
func (r *CommentRepository) Update(ctx context.Context, commentID, userID bson.ObjectID, text string) (*models.Comment, error) {
	var c models.Comment
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"_id": commentID, "author_id": userID},
		bson.M{"$set": bson.M{"text": text, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// DeleteCascade removes a comment and its whole reply closure, plus any
// like edges pointed at the removed comments. Returns the number of
// comments removed; 0 means not-found-or-forbidden.
func (r *CommentRepository) DeleteCascade(ctx context.Context, commentID, userID bson.ObjectID) (int64, error) {
	root, err := r.GetByID(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if root == nil || root.AuthorID != userID {
		return 0, nil
	}

	// Reply chains are short; walking the post's comments in memory is
	// simpler than an aggregation and covers arbitrary depth.
	cur, err := r.Col.Find(ctx, bson.M{"post_id": root.PostID})
	if err != nil {
		return 0, err
	}
	var all []models.Comment
	if err := cur.All(ctx, &all); err != nil {
		return 0, err
	}

	ids := DescendantIDs(all, commentID)

	res, err := r.Col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	// The comments are gone at this point; failing the call now would make
	// a retry land on the not-found branch. Edge cleanup is best-effort.
	if err := DeleteLikesForComments(ctx, r.LikesCol, ids); err != nil {
		log.Println("delete comment likes:", err)
	}
	return res.DeletedCount, nil
}

// DescendantIDs returns root plus every comment transitively parented on
// it, given the flat comment list of a post.
func DescendantIDs(all []models.Comment, root bson.ObjectID) []bson.ObjectID {
	children := make(map[bson.ObjectID][]bson.ObjectID, len(all))
	for _, c := range all {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	ids := []bson.ObjectID{root}
	for i := 0; i < len(ids); i++ {
		ids = append(ids, children[ids[i]]...)
	}
	return ids
}
