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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAdminRepository implements the AdminRepository interface
type MongoAdminRepository struct {
	collection *mongo.Collection
}

// NewMongoAdminRepository creates a new MongoDB admin repository
func NewMongoAdminRepository(ctx context.Context, db *mongo.Database) (repository.AdminRepository, error) {
	collection := db.Collection(AdminsCollection)

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"username": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"email": 1}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create admin indexes: %w", err)
	}

	return &MongoAdminRepository{
		collection: collection,
	}, nil
}

// Create inserts an admin. The password must already be hashed.
func (r *MongoAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, admin)
	return translate(err)
}

// FindByID finds an admin by id regardless of isActive
func (r *MongoAdminRepository) FindByID(ctx context.Context, id string) (*entity.Admin, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[entity.Admin](ctx, r.collection, bson.M{"_id": oid})
}

// FindActiveByUsername finds an active admin by username
func (r *MongoAdminRepository) FindActiveByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	return findOne[entity.Admin](ctx, r.collection, bson.M{"username": username, "isActive": true})
}

// ExistsByUsernameOrEmail reports whether either identifier is taken
func (r *MongoAdminRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"$or": []bson.M{
			{"username": username},
			{"email": email},
		},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateLastLogin stamps a successful login
func (r *MongoAdminRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"lastLogin": at},
	})
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}
