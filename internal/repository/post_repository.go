package repository

import (
	"context"
	"regexp"
	"time"

	"inkwell-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PostRepository struct {
	Col *mongo.Collection
}

func (r *PostRepository) Create(ctx context.Context, p *models.Post) error {
	_, err := r.Col.InsertOne(ctx, p)
	return err
}

// SlugExists checks whether any post other than exclude already owns slug.
// Slug uniqueness spans drafts too; the unique index is the backstop for
// concurrent creates.
func (r *PostRepository) SlugExists(ctx context.Context, slug string, exclude bson.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if !exclude.IsZero() {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	n, err := r.Col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *PostRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	var p models.Post
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var p models.Post
	if err := r.Col.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// listFilter translates a PostQuery into the Mongo filter document. The
// tag match is case-insensitive with the tag quoted, so metacharacters in
// user input cannot widen the match.
func listFilter(q models.PostQuery) bson.M {
	filter := bson.M{}
	if !q.AuthorID.IsZero() {
		filter["author_id"] = q.AuthorID
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Tag != "" {
		filter["tags"] = bson.M{"$regex": "^" + regexp.QuoteMeta(q.Tag) + "$", "$options": "i"}
	}
	return filter
}

// List returns posts matching q, newest published first.
func (r *PostRepository) List(ctx context.Context, q models.PostQuery) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := r.Col.Find(ctx, listFilter(q), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Post
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// IncViews bumps the view counter atomically and returns the new document.
func (r *PostRepository) IncViews(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	var p models.Post
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Update applies $set fields and returns the fresh document, or nil when
// the post does not exist.
func (r *PostRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Post, error) {
	set["updated_at"] = time.Now().UTC()
	var p models.Post
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Popular returns published posts by descending view count.
func (r *PostRepository) Popular(ctx context.Context, limit int64) ([]models.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "views", Value: -1}}).
		SetLimit(limit)
	cur, err := r.Col.Find(ctx, bson.M{"status": models.PostStatusPublished}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Post
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Recommended samples published posts uniformly at random, excluding one.
func (r *PostRepository) Recommended(ctx context.Context, exclude bson.ObjectID, limit int64) ([]models.Post, error) {
	match := bson.M{"status": models.PostStatusPublished}
	if !exclude.IsZero() {
		match["_id"] = bson.M{"$ne": exclude}
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sample", Value: bson.M{"size": limit}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Post
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// DistinctTags lists every tag used by a published post.
func (r *PostRepository) DistinctTags(ctx context.Context) ([]string, error) {
	res := r.Col.Distinct(ctx, "tags", bson.M{"status": models.PostStatusPublished})
	var tags []string
	if err := res.Decode(&tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *PostRepository) CountPublishedByAuthor(ctx context.Context, authorID bson.ObjectID) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{
		"author_id": authorID,
		"status":    models.PostStatusPublished,
	})
}
