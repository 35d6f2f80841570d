package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/move-labels/internal/domain/model"
)

// BundleRepository implements BundleRepositoryInterface.
type BundleRepository struct {
	collection *mongo.Collection
}

// NewBundleRepository creates a new bundle repository.
func NewBundleRepository(db *MongoDB) *BundleRepository {
	return &BundleRepository{collection: db.Bundles}
}

// List returns bundles, most recently changed first.
func (r *BundleRepository) List(ctx context.Context) ([]model.Bundle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	bundles := make([]model.Bundle, 0)
	if err := cursor.All(ctx, &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

// Upsert replaces the items of the bundle called name, creating it if needed.
func (r *BundleRepository) Upsert(ctx context.Context, name string, items []model.BundleItem) (*model.Bundle, error) {
	now := time.Now().UTC()
	if items == nil {
		items = []model.BundleItem{}
	}
	update := bson.M{
		"$set":         bson.M{"items": items, "updated_at": now},
		"$setOnInsert": bson.M{"name": name, "created_at": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var bundle model.Bundle
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"name": name}, update, opts).Decode(&bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}
