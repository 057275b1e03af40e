// internal/interface/repository/email_repo.go
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

// MongoEmailRepository implements the EmailRepository interface
type MongoEmailRepository struct {
	collection *mongo.Collection
}

// NewMongoEmailRepository creates a new MongoDB email log repository
func NewMongoEmailRepository(ctx context.Context, db *mongo.Database) (repository.EmailRepository, error) {
	collection := db.Collection(EmailLogsCollection)

	// Index on relatedId for looking up the mails of one submission
	relatedIndex := mongo.IndexModel{
		Keys: bson.M{"relatedId": 1},
	}

	// Compound index for finding failed deliveries efficiently
	statusIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "sentAt", Value: -1},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{relatedIndex, statusIndex}); err != nil {
		return nil, fmt.Errorf("failed to create email log indexes: %w", err)
	}

	return &MongoEmailRepository{
		collection: collection,
	}, nil
}

// Save records one dispatch attempt
func (r *MongoEmailRepository) Save(ctx context.Context, log *entity.EmailLog) error {
	if log.ID.IsZero() {
		log.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, log)
	return translate(err)
}

// FindByRelatedID returns the dispatch attempts of one submission, oldest first
func (r *MongoEmailRepository) FindByRelatedID(ctx context.Context, relatedID string) ([]*entity.EmailLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sentAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"relatedId": relatedID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := make([]*entity.EmailLog, 0)
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}
