package repository

import (
	"context"
	"fmt"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTourRepository implements the TourRepository interface
type MongoTourRepository struct {
	collection *mongo.Collection
}

// NewMongoTourRepository creates a new MongoDB tour repository
func NewMongoTourRepository(ctx context.Context, db *mongo.Database) (repository.TourRepository, error) {
	collection := db.Collection(ToursCollection)

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.M{"slug": 1},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "category", Value: 1},
				{Key: "createdAt", Value: 1},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tour indexes: %w", err)
	}

	return &MongoTourRepository{
		collection: collection,
	}, nil
}

// Create inserts a tour and assigns its id
func (r *MongoTourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	if tour.ID.IsZero() {
		tour.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, tour)
	return translate(err)
}

// FindByID finds a tour by id
func (r *MongoTourRepository) FindByID(ctx context.Context, id string) (*entity.Tour, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[entity.Tour](ctx, r.collection, bson.M{"_id": oid})
}

// FindBySlug finds a tour by slug
func (r *MongoTourRepository) FindBySlug(ctx context.Context, slug string) (*entity.Tour, error) {
	return findOne[entity.Tour](ctx, r.collection, bson.M{"slug": slug})
}

// List returns tours matching filter in creation order
func (r *MongoTourRepository) List(ctx context.Context, filter repository.TourFilter, page repository.Page) ([]*entity.Tour, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	return findPage[entity.Tour](ctx, r.collection, query, oldestFirst, page)
}

// Update replaces the stored tour with tour
func (r *MongoTourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": tour.ID}, tour)
	if err != nil {
		return translate(err)
	}

	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a tour
func (r *MongoTourRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}
