package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medbridge/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSupplierRepository is a MongoDB-backed implementation of SupplierRepository.
type MongoSupplierRepository struct {
	collection *mongo.Collection
}

// NewMongoSupplierRepository creates a new MongoSupplierRepository on
// the "suppliers" collection.
func NewMongoSupplierRepository(db *mongo.Database) *MongoSupplierRepository {
	return &MongoSupplierRepository{collection: db.Collection("suppliers")}
}

// GetAll returns all suppliers, unfiltered.
func (r *MongoSupplierRepository) GetAll(ctx context.Context) ([]models.Supplier, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer cursor.Close(ctx)

	suppliers := make([]models.Supplier, 0)
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, fmt.Errorf("failed to decode suppliers: %w", err)
	}
	return suppliers, nil
}

// GetByID returns the supplier with the given hex id, or ErrNotFound.
func (r *MongoSupplierRepository) GetByID(ctx context.Context, id string) (*models.Supplier, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var supplier models.Supplier
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&supplier)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier: %w", err)
	}
	return &supplier, nil
}

// Create inserts a new supplier, assigning its ID and timestamps.
func (r *MongoSupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	now := time.Now()
	supplier.ID = primitive.NewObjectID()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, supplier); err != nil {
		return fmt.Errorf("failed to insert supplier: %w", err)
	}
	return nil
}
