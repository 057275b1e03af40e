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

// MongoContactRepository implements the ContactRepository interface
type MongoContactRepository struct {
	collection *mongo.Collection
}

// NewMongoContactRepository creates a new MongoDB contact repository
func NewMongoContactRepository(ctx context.Context, db *mongo.Database) (repository.ContactRepository, error) {
	collection := db.Collection(ContactsCollection)

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.M{"email": 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create contact indexes: %w", err)
	}

	return &MongoContactRepository{
		collection: collection,
	}, nil
}

// Create inserts a contact message
func (r *MongoContactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	if contact.ID.IsZero() {
		contact.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, contact)
	return translate(err)
}

// FindByID finds a contact message by id
func (r *MongoContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[entity.Contact](ctx, r.collection, bson.M{"_id": oid})
}

// List returns contact messages newest first
func (r *MongoContactRepository) List(ctx context.Context, status string, page repository.Page) ([]*entity.Contact, int64, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	return findPage[entity.Contact](ctx, r.collection, query, newestFirst, page)
}

// UpdateStatus sets the status of a contact message
func (r *MongoContactRepository) UpdateStatus(ctx context.Context, id, status string, at time.Time) (*entity.Contact, error) {
	return setAndReturn[entity.Contact](ctx, r.collection, id, bson.M{
		"status":    status,
		"updatedAt": at,
	})
}

// Delete removes a contact message
func (r *MongoContactRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}
