package repository

import (
	"context"
	"fmt"
	"time"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoReviewRepository implements the ReviewRepository interface
type MongoReviewRepository struct {
	collection *mongo.Collection
}

// NewMongoReviewRepository creates a new MongoDB review repository
func NewMongoReviewRepository(ctx context.Context, db *mongo.Database) (repository.ReviewRepository, error) {
	collection := db.Collection(ReviewsCollection)

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "isApproved", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create review indexes: %w", err)
	}

	return &MongoReviewRepository{
		collection: collection,
	}, nil
}

// Create inserts a review
func (r *MongoReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, review)
	return translate(err)
}

// FindByID finds a review by id
func (r *MongoReviewRepository) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[entity.Review](ctx, r.collection, bson.M{"_id": oid})
}

// List returns reviews newest first
func (r *MongoReviewRepository) List(ctx context.Context, filter repository.ReviewFilter, page repository.Page) ([]*entity.Review, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Approved != nil {
		query["isApproved"] = *filter.Approved
	}

	return findPage[entity.Review](ctx, r.collection, query, newestFirst, page)
}

// UpdateStatus sets status and isApproved together
func (r *MongoReviewRepository) UpdateStatus(ctx context.Context, id, status string, approved bool, at time.Time) (*entity.Review, error) {
	return setAndReturn[entity.Review](ctx, r.collection, id, bson.M{
		"status":     status,
		"isApproved": approved,
		"updatedAt":  at,
	})
}

// Delete removes a review
func (r *MongoReviewRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}
