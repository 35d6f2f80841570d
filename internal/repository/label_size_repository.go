package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/move-labels/internal/domain/model"
)

// LabelSizeRepository implements LabelSizeRepositoryInterface.
type LabelSizeRepository struct {
	collection *mongo.Collection
}

// NewLabelSizeRepository creates a new label size repository.
func NewLabelSizeRepository(db *MongoDB) *LabelSizeRepository {
	return &LabelSizeRepository{collection: db.LabelSizes}
}

// List returns presets first, then custom sizes, each group by name.
func (r *LabelSizeRepository) List(ctx context.Context) ([]model.LabelSize, error) {
	opts := options.Find().SetSort(bson.D{{Key: "is_preset", Value: -1}, {Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	sizes := make([]model.LabelSize, 0)
	if err := cursor.All(ctx, &sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}

// FindByID finds a size by its slug id.
func (r *LabelSizeRepository) FindByID(ctx context.Context, id string) (*model.LabelSize, error) {
	var size model.LabelSize
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&size)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &size, nil
}

// Create inserts a custom size.
func (r *LabelSizeRepository) Create(ctx context.Context, size *model.LabelSize) error {
	size.CreatedAt = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, size)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateLabelSize
	}
	return err
}

// SeedPresets inserts the presets that are missing and leaves existing
// documents alone. It returns how many were inserted.
func (r *LabelSizeRepository) SeedPresets(ctx context.Context, presets []model.LabelSize) (int64, error) {
	if len(presets) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	writes := make([]mongo.WriteModel, 0, len(presets))
	for _, p := range presets {
		p.CreatedAt = now
		doc, err := withoutID(p)
		if err != nil {
			return 0, err
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": p.ID}).
			SetUpdate(bson.M{"$setOnInsert": doc}).
			SetUpsert(true))
	}

	res, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}
	return res.UpsertedCount, nil
}

// withoutID marshals v and drops _id, which an upsert takes from its filter.
func withoutID(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")
	return doc, nil
}
