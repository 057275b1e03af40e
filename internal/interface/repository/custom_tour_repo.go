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

// MongoCustomTourRepository implements the CustomTourRepository interface
type MongoCustomTourRepository struct {
	collection *mongo.Collection
}

// NewMongoCustomTourRepository creates a new MongoDB custom tour request repository
func NewMongoCustomTourRepository(ctx context.Context, db *mongo.Database) (repository.CustomTourRepository, error) {
	collection := db.Collection(CustomToursCollection)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create custom tour indexes: %w", err)
	}

	return &MongoCustomTourRepository{
		collection: collection,
	}, nil
}

// Create inserts a custom tour request
func (r *MongoCustomTourRepository) Create(ctx context.Context, req *entity.CustomizeTourRequest) error {
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, req)
	return translate(err)
}

// FindByID finds a custom tour request by id
func (r *MongoCustomTourRepository) FindByID(ctx context.Context, id string) (*entity.CustomizeTourRequest, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[entity.CustomizeTourRequest](ctx, r.collection, bson.M{"_id": oid})
}

// List returns custom tour requests newest first
func (r *MongoCustomTourRepository) List(ctx context.Context, status string, page repository.Page) ([]*entity.CustomizeTourRequest, int64, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	return findPage[entity.CustomizeTourRequest](ctx, r.collection, query, newestFirst, page)
}

// UpdateStatus sets the status of a custom tour request
func (r *MongoCustomTourRepository) UpdateStatus(ctx context.Context, id, status string, at time.Time) (*entity.CustomizeTourRequest, error) {
	return setAndReturn[entity.CustomizeTourRequest](ctx, r.collection, id, bson.M{
		"status":    status,
		"updatedAt": at,
	})
}

// Delete removes a custom tour request
func (r *MongoCustomTourRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}
