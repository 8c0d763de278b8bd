package posts

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/xyz-asif/dashboard/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PostStore is the persistence contract for posts. Every mutation is scoped
// by (id, owner): an id that exists but belongs to someone else behaves
// exactly like a missing id.
type PostStore interface {
	Create(ctx context.Context, post *Post) error
	Feed(ctx context.Context, limit int) ([]FeedPost, error)
	ByUser(ctx context.Context, userID primitive.ObjectID) ([]FeedPost, error)
	GetByID(ctx context.Context, id, ownerID string) (*Post, error)
	UpdateContent(ctx context.Context, id, ownerID, content string) error
	Delete(ctx context.Context, id, ownerID string) error
	Count(ctx context.Context) (int64, error)
}

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("posts")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, post *Post) error {
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt

	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return err
	}

	post.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// feedPipeline joins each post with its author's display fields. match may be
// nil for the global feed.
func feedPipeline(match bson.M, limit int) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	)
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(limit)}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "userId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "author"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$author"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "userId", Value: 1},
			{Key: "content", Value: 1},
			{Key: "image", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "updatedAt", Value: 1},
			{Key: "author.name", Value: 1},
			{Key: "author.photo", Value: 1},
		}}},
	)

	return pipeline
}

func (r *Repository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]FeedPost, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []FeedPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []FeedPost{}
	}

	return posts, nil
}

// Feed returns the global feed, newest first.
func (r *Repository) Feed(ctx context.Context, limit int) ([]FeedPost, error) {
	return r.aggregate(ctx, feedPipeline(nil, limit))
}

// ByUser returns one user's posts, newest first.
func (r *Repository) ByUser(ctx context.Context, userID primitive.ObjectID) ([]FeedPost, error) {
	return r.aggregate(ctx, feedPipeline(bson.M{"userId": userID}, 0))
}

// GetByID fetches a post only if the given owner holds it.
func (r *Repository) GetByID(ctx context.Context, id, ownerID string) (*Post, error) {
	filter, err := ownerFilter(id, ownerID)
	if err != nil {
		return nil, err
	}

	var post Post
	err = r.collection.FindOne(ctx, filter).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &post, nil
}

// UpdateContent edits a post's content, owner-scoped.
func (r *Repository) UpdateContent(ctx context.Context, id, ownerID, content string) error {
	filter, err := ownerFilter(id, ownerID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"content":   content,
		"updatedAt": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete removes a post, owner-scoped.
func (r *Repository) Delete(ctx context.Context, id, ownerID string) error {
	filter, err := ownerFilter(id, ownerID)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// ownerFilter builds the compound (id, owner) filter every targeted operation
// goes through. Malformed ids collapse to not-found.
func ownerFilter(id, ownerID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	return bson.M{"_id": oid, "userId": owner}, nil
}
